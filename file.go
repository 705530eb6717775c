package rntable

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/golang/snappy"
)

// WriteTable frames an encoded table for storage, prefixing it with the
// magic byte sequence and a compression indicator. Tables that do not
// compress well are stored raw regardless of the requested codec.
func WriteTable(w io.Writer, table []byte, c Compression) error {
	if !c.isValid() {
		c = SnappyCompression
	}

	body := table
	codec := byte(bodyNoCompression)
	switch c {
	case SnappyCompression:
		if snp := snappy.Encode(nil, table); len(snp) < len(table)-len(table)/4 {
			body, codec = snp, bodySnappyCompression
		}
	}

	if _, err := w.Write(magic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{codec}); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// ReadTable reads a framed table back into memory. The returned buffer can
// be passed to OpenNameTable or OpenHashTable.
func ReadTable(r io.Reader) ([]byte, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(magic)+1 || !bytes.Equal(raw[:len(magic)], magic) {
		return nil, errBadMagic
	}

	body := raw[len(magic)+1:]
	switch raw[len(magic)] {
	case bodyNoCompression:
		return body, nil
	case bodySnappyCompression:
		return snappy.Decode(nil, body)
	default:
		return nil, errBadCompression
	}
}
