/*
Package rntable implements compact, binary-searchable lookup tables for
reserved names. A finalized list of reservations is encoded once, offline,
into a single immutable buffer; readers then answer point lookups in
O(log n) key comparisons without deserializing the buffer.

Two table variants share one record format: a name-keyed table whose index
stores the raw name bytes, and a hash-keyed table whose index stores a
fixed 32-byte name hash supplied by the caller.

Data Structure Documentation

Name-keyed table

All integers are little-endian. The index is fixed-width and sorted in
ascending byte order of the names, with a shorter name sorting before any
longer name it is a prefix of.

	Table layout:
	+--------+---------+---------+-----------+-----------+-----------+
	| header | entry 1 |   ...   | payload 1 |    ...    | payload n |
	+--------+---------+---------+-----------+-----------+-----------+

	Header:
	+--------------------------+---------------------+----------------------+----------------------+
	| record count (4 bytes)   | capacity (1 byte)   | name value (8 bytes) | root value (8 bytes) |
	+--------------------------+---------------------+----------------------+----------------------+

	Index entry:
	+----------------------+-------------------------------------+--------------------------+
	| name length (1 byte) | name (capacity bytes, zero padded)  | payload offset (4 bytes) |
	+----------------------+-------------------------------------+--------------------------+

Hash-keyed table

The index key is the 32-byte hash of the name, sorted in ascending byte
order, so the header carries no capacity and entries no length byte.

	Header:
	+--------------------------+----------------------+----------------------+
	| record count (4 bytes)   | name value (8 bytes) | root value (8 bytes) |
	+--------------------------+----------------------+----------------------+

	Index entry:
	+-----------------+--------------------------+
	| hash (32 bytes) |  payload offset (4 bytes) |
	+-----------------+--------------------------+

Payload

Payload offsets are absolute. The custom value is present only when its
flag bit is set; the label length is stored by the hash-keyed variant only
and recovers the name as the prefix of the target up to its first dot.

	+------------------------+------------------+-----------------+------------------------+--------------------------+
	| target length (1 byte) | target (varlen)  | flags (1 byte)  | label length (1 byte)  |  custom value (8 bytes)  |
	+------------------------+------------------+-----------------+------------------------+--------------------------+

	Flags:
	bit 0 - root reservation
	bit 1 - payout zeroed
	bit 2 - custom value present

The derived payout starts from the name value (or the root value for root
reservations), is zeroed by the zeroed flag and finally replaced by the
custom value when present, in that order.

Storage container

WriteTable and ReadTable frame a table for storage at rest; the in-memory
layout above is never compressed.

	+-----------------+-------------------------+----------------------+
	| magic (8 bytes) | compression (1 byte)    |  table (snappy/raw)  |
	+-----------------+-------------------------+----------------------+
*/
package rntable
