package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// ShortHash returns the first prefixLen characters of SHA256(input).
// Used to correlate voters and IPs in logs without storing the raw
// value.
func ShortHash(input string, prefixLen int) string {
	full := SHA256Hex(input)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}

// IteratedSHA256 applies SHA256 iteratively n times to produce a
// derived hash.
func IteratedSHA256(input string, iterations int) string {
	data := []byte(input)
	for range iterations {
		h := sha256.Sum256(data)
		data = h[:]
	}
	return hex.EncodeToString(data)
}

// HashIP hashes a client IP with a salt using 5000 iterations of
// SHA256. Raw IPs are never persisted or logged.
func HashIP(ip, salt string) string {
	return IteratedSHA256(salt+ip, 5000)
}

// VoterAlias produces a stable anonymized alias for a voter address,
// safe to expose in rate-limit keys and structured logs.
func VoterAlias(voter string) string {
	return ShortHash(voter, 12)
}
