// internal/daily/daily.go
//
// Deterministic date-keyed word selection.
// The same date and salt always map to the same index, so every player gets
// the same secret word on a given UTC day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date using a
// BLAKE2b-256 MAC keyed with salt. Returns 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		// blake2b keys are capped at 64 bytes; fold longer salts first.
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// unreachable: key length is bounded above
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
