package stopwords

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ChecksumPrefix is the prefix for SHA-256 checksums.
const ChecksumPrefix = "sha256:"

// Checksum is a hex-encoded SHA-256 hash with the "sha256:" prefix.
type Checksum string

// ComputeChecksum computes SHA-256 over a byte slice.
func ComputeChecksum(data []byte) Checksum {
	sum := sha256.Sum256(data)
	return Checksum(ChecksumPrefix + hex.EncodeToString(sum[:]))
}

// ParseChecksum validates s and returns it as a Checksum.
func ParseChecksum(s string) (Checksum, error) {
	s = strings.TrimSpace(s)
	hexStr, ok := strings.CutPrefix(s, ChecksumPrefix)
	if !ok {
		return "", fmt.Errorf("%w: missing prefix %q", ErrInvalidChecksum, ChecksumPrefix)
	}
	if len(hexStr) != 2*sha256.Size {
		return "", fmt.Errorf("%w: expected %d hex chars, got %d", ErrInvalidChecksum, 2*sha256.Size, len(hexStr))
	}
	if _, err := hex.DecodeString(hexStr); err != nil {
		return "", fmt.Errorf("%w: invalid hex: %v", ErrInvalidChecksum, err)
	}
	return Checksum(s), nil
}
