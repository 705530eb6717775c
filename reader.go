package rntable

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// NameTable answers point lookups keyed by raw name bytes. It is immutable
// once opened and safe for concurrent use without locking.
type NameTable struct {
	data []byte

	count     int
	capacity  int
	entryLen  int
	nameValue uint64
	rootValue uint64
}

// OpenNameTable opens a name-keyed table over an encoded buffer. The buffer
// is validated once; lookups on a successfully opened table cannot fail.
// The table retains data, the caller must not mutate it.
func OpenNameTable(data []byte) (*NameTable, error) {
	if len(data) < nameHeaderLen {
		return nil, fmt.Errorf("rntable: table header truncated at %d bytes", len(data))
	}

	t := &NameTable{
		data:      data,
		count:     int(binary.LittleEndian.Uint32(data)),
		capacity:  int(data[4]),
		nameValue: binary.LittleEndian.Uint64(data[5:]),
		rootValue: binary.LittleEndian.Uint64(data[13:]),
	}
	t.entryLen = 1 + t.capacity + 4

	indexEnd := nameHeaderLen + t.count*t.entryLen
	if indexEnd > len(data) {
		return nil, fmt.Errorf("rntable: index of %d records exceeds table size %d", t.count, len(data))
	}
	for i := 0; i < t.count; i++ {
		pos := nameHeaderLen + i*t.entryLen
		if n := int(data[pos]); n == 0 || n > t.capacity {
			return nil, fmt.Errorf("rntable: record %d: name length %d out of range", i, n)
		}
		off := int(binary.LittleEndian.Uint32(data[pos+1+t.capacity:]))
		if err := checkPayload(data, off, indexEnd, false); err != nil {
			return nil, fmt.Errorf("rntable: record %d: %v", i, err)
		}
	}
	return t, nil
}

// NumRecords returns the number of stored records.
func (t *NameTable) NumRecords() int { return t.count }

// NameCapacity returns the maximum name length present in this table.
func (t *NameTable) NameCapacity() int { return t.capacity }

// NameValue returns the default payout of non-root reservations.
func (t *NameTable) NameValue() uint64 { return t.nameValue }

// RootValue returns the default payout of root reservations.
func (t *NameTable) RootValue() uint64 { return t.rootValue }

// Lookup retrieves the reservation of a name. The second return value is
// false if the name is not reserved.
func (t *NameTable) Lookup(name string) (Reservation, bool) {
	if len(name) == 0 || len(name) > t.capacity {
		return Reservation{}, false
	}

	key := []byte(name)
	pos := sort.Search(t.count, func(i int) bool {
		return bytes.Compare(t.key(i), key) >= 0
	})
	if pos >= t.count || !bytes.Equal(t.key(pos), key) {
		return Reservation{}, false
	}
	return t.at(pos), true
}

// Iter returns a cursor over all records in name order.
func (t *NameTable) Iter() *Iterator {
	return &Iterator{at: t.at, count: t.count}
}

func (t *NameTable) key(i int) []byte {
	pos := nameHeaderLen + i*t.entryLen
	return t.data[pos+1 : pos+1+int(t.data[pos])]
}

func (t *NameTable) at(i int) Reservation {
	pos := nameHeaderLen + i*t.entryLen
	off := int(binary.LittleEndian.Uint32(t.data[pos+1+t.capacity:]))
	target, flags, _, value := decodePayload(t.data, off, t.nameValue, t.rootValue, false)
	return Reservation{
		Name:   string(t.data[pos+1 : pos+1+int(t.data[pos])]),
		Target: string(target),
		Value:  value,
		Root:   flags&flagRoot != 0,
	}
}

// --------------------------------------------------------------------

// HashTable answers point lookups keyed by fixed-width name hashes. It is
// immutable once opened and safe for concurrent use without locking.
type HashTable struct {
	data []byte
	fn   HashFunc

	count     int
	nameValue uint64
	rootValue uint64
}

// OpenHashTable opens a hash-keyed table over an encoded buffer. fn must
// match the function the table was encoded with; it is only used by
// LookupName and may be nil if names are always pre-hashed by the caller.
func OpenHashTable(data []byte, fn HashFunc) (*HashTable, error) {
	if len(data) < hashHeaderLen {
		return nil, fmt.Errorf("rntable: table header truncated at %d bytes", len(data))
	}

	t := &HashTable{
		data:      data,
		fn:        fn,
		count:     int(binary.LittleEndian.Uint32(data)),
		nameValue: binary.LittleEndian.Uint64(data[4:]),
		rootValue: binary.LittleEndian.Uint64(data[12:]),
	}

	indexEnd := hashHeaderLen + t.count*hashEntryLen
	if indexEnd > len(data) {
		return nil, fmt.Errorf("rntable: index of %d records exceeds table size %d", t.count, len(data))
	}
	for i := 0; i < t.count; i++ {
		pos := hashHeaderLen + i*hashEntryLen
		off := int(binary.LittleEndian.Uint32(data[pos+HashLen:]))
		if err := checkPayload(data, off, indexEnd, true); err != nil {
			return nil, fmt.Errorf("rntable: record %d: %v", i, err)
		}
	}
	return t, nil
}

// NumRecords returns the number of stored records.
func (t *HashTable) NumRecords() int { return t.count }

// NameValue returns the default payout of non-root reservations.
func (t *HashTable) NameValue() uint64 { return t.nameValue }

// RootValue returns the default payout of root reservations.
func (t *HashTable) RootValue() uint64 { return t.rootValue }

// Lookup retrieves the reservation of a name hash. The second return value
// is false if the hash is not reserved or not exactly HashLen bytes.
func (t *HashTable) Lookup(hash []byte) (Reservation, bool) {
	if len(hash) != HashLen {
		return Reservation{}, false
	}

	pos := sort.Search(t.count, func(i int) bool {
		return bytes.Compare(t.key(i), hash) >= 0
	})
	if pos >= t.count || !bytes.Equal(t.key(pos), hash) {
		return Reservation{}, false
	}
	return t.at(pos), true
}

// LookupName hashes a name and retrieves its reservation.
func (t *HashTable) LookupName(name string) (Reservation, bool) {
	if t.fn == nil || len(name) == 0 || len(name) > MaxNameLen {
		return Reservation{}, false
	}
	return t.Lookup(t.fn(name))
}

// Iter returns a cursor over all records in hash order.
func (t *HashTable) Iter() *Iterator {
	return &Iterator{at: t.at, count: t.count}
}

func (t *HashTable) key(i int) []byte {
	pos := hashHeaderLen + i*hashEntryLen
	return t.data[pos : pos+HashLen]
}

func (t *HashTable) at(i int) Reservation {
	pos := hashHeaderLen + i*hashEntryLen
	off := int(binary.LittleEndian.Uint32(t.data[pos+HashLen:]))
	target, flags, label, value := decodePayload(t.data, off, t.nameValue, t.rootValue, true)
	return Reservation{
		Name:   string(target[:label]),
		Target: string(target),
		Value:  value,
		Root:   flags&flagRoot != 0,
	}
}

// --------------------------------------------------------------------

// Iterator is a forward cursor over the records of a table.
type Iterator struct {
	at    func(i int) Reservation
	count int
	pos   int
	cur   Reservation
}

// More returns true if more records can be read.
func (i *Iterator) More() bool { return i.pos < i.count }

// Next advances the cursor to the next record and returns true if
// successful.
func (i *Iterator) Next() bool {
	if i.pos >= i.count {
		return false
	}
	i.cur = i.at(i.pos)
	i.pos++
	return true
}

// Reservation returns the current record.
func (i *Iterator) Reservation() Reservation { return i.cur }

// --------------------------------------------------------------------

func checkPayload(data []byte, off, indexEnd int, withLabel bool) error {
	if off < indexEnd || off >= len(data) {
		return fmt.Errorf("payload offset %d out of range", off)
	}

	tlen := int(data[off])
	if tlen == 0 {
		return fmt.Errorf("payload at offset %d has an empty target", off)
	}

	pos := off + 1 + tlen // flags position
	end := pos + 1
	if withLabel {
		end++
	}
	if end > len(data) {
		return fmt.Errorf("payload at offset %d truncated", off)
	}

	if withLabel && int(data[pos+1]) > tlen {
		return fmt.Errorf("label length %d exceeds target length %d", data[pos+1], tlen)
	}
	if data[pos]&flagCustom != 0 && end+8 > len(data) {
		return fmt.Errorf("payload at offset %d truncated", off)
	}
	return nil
}

func decodePayload(data []byte, off int, nameValue, rootValue uint64, withLabel bool) (target []byte, flags byte, label int, value uint64) {
	tlen := int(data[off])
	target = data[off+1 : off+1+tlen]

	pos := off + 1 + tlen
	flags = data[pos]
	pos++
	if withLabel {
		label = int(data[pos])
		pos++
	}

	var custom uint64
	if flags&flagCustom != 0 {
		custom = binary.LittleEndian.Uint64(data[pos:])
	}
	value = resolveValue(flags, custom, nameValue, rootValue)
	return
}
