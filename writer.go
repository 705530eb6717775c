package rntable

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
)

// EncodeByName serializes a finalized list of records into a name-keyed
// lookup table. Input order is irrelevant as the encoder sorts a private
// copy. The two values are the default payouts stored in the table header.
func EncodeByName(records []Record, nameValue, rootValue uint64) ([]byte, error) {
	if uint64(len(records)) > math.MaxUint32 {
		return nil, fmt.Errorf("rntable: too many records (%d)", len(records))
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	capacity, size := 0, 0
	for i := range sorted {
		r := &sorted[i]
		if err := r.validate(); err != nil {
			return nil, err
		}
		if i != 0 && sorted[i-1].Name == r.Name {
			return nil, fmt.Errorf("rntable: duplicate name %q", r.Name)
		}
		if n := len(r.Name); n > capacity {
			capacity = n
		}
		size += 2 + len(r.Target) // target length + target + flags
		if r.Custom != nil {
			size += 8
		}
	}

	entryLen := 1 + capacity + 4
	offset := nameHeaderLen + len(sorted)*entryLen

	buf := make([]byte, 0, offset+size)
	tmp := make([]byte, 8)
	pad := make([]byte, capacity)

	binary.LittleEndian.PutUint32(tmp, uint32(len(sorted)))
	buf = append(buf, tmp[:4]...)
	buf = append(buf, byte(capacity))
	binary.LittleEndian.PutUint64(tmp, nameValue)
	buf = append(buf, tmp...)
	binary.LittleEndian.PutUint64(tmp, rootValue)
	buf = append(buf, tmp...)

	for i := range sorted {
		r := &sorted[i]
		buf = append(buf, byte(len(r.Name)))
		buf = append(buf, r.Name...)
		buf = append(buf, pad[:capacity-len(r.Name)]...)
		binary.LittleEndian.PutUint32(tmp, uint32(offset))
		buf = append(buf, tmp[:4]...)

		offset += 2 + len(r.Target)
		if r.Custom != nil {
			offset += 8
		}
	}

	for i := range sorted {
		buf = appendPayload(buf, &sorted[i], tmp)
	}
	return buf, nil
}

// EncodeByHash serializes a finalized list of records into a hash-keyed
// lookup table, using fn to derive the fixed-width keys.
func EncodeByHash(records []Record, nameValue, rootValue uint64, fn HashFunc) ([]byte, error) {
	if fn == nil {
		return nil, errNoHashFunc
	}
	if uint64(len(records)) > math.MaxUint32 {
		return nil, fmt.Errorf("rntable: too many records (%d)", len(records))
	}

	type hashed struct {
		sum []byte
		rec Record
	}

	sorted := make([]hashed, len(records))
	size := 0
	for i := range records {
		r := records[i]
		if err := r.validate(); err != nil {
			return nil, err
		}

		sum := fn(r.Name)
		if len(sum) != HashLen {
			return nil, fmt.Errorf("rntable: hash of %q is %d bytes, expected %d", r.Name, len(sum), HashLen)
		}
		sorted[i] = hashed{sum: sum, rec: r}

		size += 3 + len(r.Target) // target length + target + flags + label length
		if r.Custom != nil {
			size += 8
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].sum, sorted[j].sum) < 0
	})

	offset := hashHeaderLen + len(sorted)*hashEntryLen

	buf := make([]byte, 0, offset+size)
	tmp := make([]byte, 8)

	binary.LittleEndian.PutUint32(tmp, uint32(len(sorted)))
	buf = append(buf, tmp[:4]...)
	binary.LittleEndian.PutUint64(tmp, nameValue)
	buf = append(buf, tmp...)
	binary.LittleEndian.PutUint64(tmp, rootValue)
	buf = append(buf, tmp...)

	for i := range sorted {
		h := &sorted[i]
		if i != 0 && bytes.Equal(sorted[i-1].sum, h.sum) {
			return nil, fmt.Errorf("rntable: duplicate hash for %q and %q", sorted[i-1].rec.Name, h.rec.Name)
		}
		buf = append(buf, h.sum...)
		binary.LittleEndian.PutUint32(tmp, uint32(offset))
		buf = append(buf, tmp[:4]...)

		offset += 3 + len(h.rec.Target)
		if h.rec.Custom != nil {
			offset += 8
		}
	}

	for i := range sorted {
		buf = appendHashPayload(buf, &sorted[i].rec, tmp)
	}
	return buf, nil
}

func appendPayload(buf []byte, r *Record, tmp []byte) []byte {
	buf = append(buf, byte(len(r.Target)))
	buf = append(buf, r.Target...)
	buf = append(buf, r.flags())
	if r.Custom != nil {
		binary.LittleEndian.PutUint64(tmp, *r.Custom)
		buf = append(buf, tmp...)
	}
	return buf
}

func appendHashPayload(buf []byte, r *Record, tmp []byte) []byte {
	buf = append(buf, byte(len(r.Target)))
	buf = append(buf, r.Target...)
	buf = append(buf, r.flags(), labelLen(r.Target))
	if r.Custom != nil {
		binary.LittleEndian.PutUint64(tmp, *r.Custom)
		buf = append(buf, tmp...)
	}
	return buf
}

// The length of the label prefix of a target, i.e. the position of the first
// dot. Hash-keyed payloads store it to recover the name which the key alone
// cannot reveal.
func labelLen(target string) byte {
	if i := strings.IndexByte(target, '.'); i >= 0 {
		return byte(i)
	}
	return byte(len(target))
}
