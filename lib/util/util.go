package util

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/crypto/sha3"
)

// GetFileHash streams the whole file through SHA3-256 with a progress bar.
// The handle is rewound before and after.
func GetFileHash(fhandle *os.File) ([]byte, error) {
	info, err := fhandle.Stat()
	if err != nil {
		return nil, err
	}

	fmt.Println("Generating SHA3-256 hash for file: ", fhandle.Name())
	start := time.Now()
	fhandle.Seek(0, io.SeekStart)

	hasher := sha3.New256()
	bar := pb.Full.Start64(info.Size())
	barReader := bar.NewProxyReader(fhandle)

	_, err = io.Copy(hasher, barReader)
	if err != nil {
		return nil, err
	}
	hash := hasher.Sum(nil)

	bar.Finish()
	fmt.Printf("Operation completed in: %s\n\n", time.Since(start))
	_, err = fhandle.Seek(0, io.SeekStart)
	return hash, err
}

func GetDataHash(data []byte) []byte {
	hasher := sha3.New256()
	hasher.Write(data)
	return hasher.Sum(nil)
}

func EncodeHash(hash []byte) string {
	return hex.EncodeToString(hash)
}

// HexBytes renders a context window the way the sequence reports print it,
// two lowercase digits per byte, space separated.
func HexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// ParseOffset accepts decimal or 0x-prefixed hex flag values.
func ParseOffset(value string) (int64, error) {
	off, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad offset %q: %w", value, err)
	}
	if off < 0 {
		return 0, fmt.Errorf("bad offset %q: must not be negative", value)
	}
	return off, nil
}
