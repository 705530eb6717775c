package rntable

import "errors"

var magic = []byte{84, 112, 201, 57, 143, 12, 88, 166}

const (
	bodyNoCompression     = 0
	bodySnappyCompression = 1
)

// Hard limits of the record format.
const (
	// MaxNameLen is the maximum length of a reserved name in bytes.
	MaxNameLen = 63

	// MaxTargetLen is the maximum length of a reservation target in bytes.
	MaxTargetLen = 255

	// HashLen is the fixed length of a name hash in bytes.
	HashLen = 32
)

// Payload flag bits.
const (
	flagRoot   = 1 << 0
	flagZeroed = 1 << 1
	flagCustom = 1 << 2
)

const (
	nameHeaderLen = 21 // count + capacity + two default values
	hashHeaderLen = 20 // count + two default values
	hashEntryLen  = HashLen + 4
)

var (
	errBadMagic       = errors.New("rntable: bad magic byte sequence")
	errBadCompression = errors.New("rntable: bad compression codec")
	errNoHashFunc     = errors.New("rntable: no hash function provided")
)

// --------------------------------------------------------------------

// Compression is the compression codec used by WriteTable.
type Compression byte

func (c Compression) isValid() bool {
	return c >= SnappyCompression && c <= unknownCompression
}

// Supported compression codecs
const (
	SnappyCompression Compression = iota
	NoCompression
	unknownCompression
)
