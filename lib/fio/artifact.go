package fio

import (
	"os"
	"strings"

	"esprobe/lib/cnst"

	"github.com/klauspost/compress/zstd"
)

// WriteArtifact persists extracted bytes, optionally zstd compressed.
// Returns the path actually written, compression appends the .zst suffix.
func WriteArtifact(path string, data []byte, compress bool) (string, error) {
	if compress {
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return "", err
		}
		data = encoder.EncodeAll(data, nil)
		if err = encoder.Close(); err != nil {
			return "", err
		}
		path += cnst.ZstdExt
	}
	return path, os.WriteFile(path, data, os.ModePerm)
}

// ReadArtifact loads a previously written artifact, transparently
// decompressing .zst files.
func ReadArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, cnst.ZstdExt) {
		return data, nil
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, err
	}
	defer decoder.Close()
	return decoder.DecodeAll(data, nil)
}
