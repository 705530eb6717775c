package rntable

import "golang.org/x/crypto/sha3"

// HashFunc maps a name to its fixed-width table key. Implementations must be
// deterministic and return exactly HashLen bytes.
type HashFunc func(name string) []byte

// SHA3Name hashes a name with SHA3-256. It is the conventional HashFunc for
// reserved-name tables.
func SHA3Name(name string) []byte {
	sum := sha3.Sum256([]byte(name))
	return sum[:]
}
