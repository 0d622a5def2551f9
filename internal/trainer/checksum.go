package trainer

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// Checksum calculates the SHA256 hash of the file at path and returns its string representation.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// checksums returns the SHA256 checksums of all files.
func checksums(paths ...string) (map[string]string, error) {
	sums := make(map[string]string, len(paths))
	for _, path := range paths {
		sum, err := Checksum(path)
		if err != nil {
			return nil, err
		}
		sums[path] = sum
	}

	return sums, nil
}
