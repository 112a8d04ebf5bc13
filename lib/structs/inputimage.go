package structs

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// FlashImage wraps a fully loaded flash image. The backing bytes are either
// a read-only mmapped view or a plain in-memory copy, whichever the loader
// picked. Callers treat Bytes as immutable either way.
type FlashImage struct {
	handle *os.File
	mapped mmap.MMap
	data   []byte
	name   string
}

func NewMappedImage(handle *os.File, mapped mmap.MMap, name string) *FlashImage {
	return &FlashImage{handle: handle, mapped: mapped, data: mapped, name: name}
}

func NewBufferedImage(data []byte, name string) *FlashImage {
	return &FlashImage{data: data, name: name}
}

func (f *FlashImage) Bytes() []byte {
	return f.data
}

func (f *FlashImage) Size() int64 {
	return int64(len(f.data))
}

func (f *FlashImage) Name() string {
	return f.name
}

func (f *FlashImage) Close() error {
	if f.mapped != nil {
		if err := f.mapped.Unmap(); err != nil {
			return err
		}
		f.mapped = nil
	}
	if f.handle != nil {
		err := f.handle.Close()
		f.handle = nil
		return err
	}
	return nil
}
