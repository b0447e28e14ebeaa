package reqfreq

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// FingerprintFunc summarizes a key as a 64-bit value. Equal keys must have
// equal fingerprints; unequal keys may collide.
type FingerprintFunc func(Key) uint64

// Fingerprint is the default FingerprintFunc, an xxHash of the method, the
// endpoint and the status, in that order.
func Fingerprint(k Key) uint64 {
	b := make([]byte, 0, len(k.Method)+len(k.Endpoint)+10)
	b = append(b, k.Method...)
	b = append(b, 0)
	b = append(b, k.Endpoint...)
	b = append(b, 0)
	b = binary.LittleEndian.AppendUint64(b, uint64(k.Status))
	return xxhash.Sum64(b)
}
