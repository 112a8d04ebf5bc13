package fio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"esprobe/lib/cnst"
)

func TestArtifactRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("esp32 factory app bytes "), 64)

	t.Run("plain artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "factory_app0.bin")
		written, err := WriteArtifact(path, data, false)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if written != path {
			t.Errorf("got path %q, want %q", written, path)
		}

		got, err := ReadArtifact(written)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Error("read bytes differ from written bytes")
		}
	})

	t.Run("zstd artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "factory_app0.bin")
		written, err := WriteArtifact(path, data, true)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if !strings.HasSuffix(written, cnst.ZstdExt) {
			t.Errorf("compressed artifact %q is missing the %s suffix", written, cnst.ZstdExt)
		}

		got, err := ReadArtifact(written)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Error("decompressed bytes differ from original")
		}
	})
}
