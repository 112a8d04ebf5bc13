package fio

import (
	"os"

	"esprobe/lib/cnst"
	"esprobe/lib/structs"

	"github.com/edsrzf/mmap-go"
)

// LoadImage opens a flash image read-only. Images larger than the cache
// limit are mmapped instead of copied into memory.
func LoadImage(path string) (*structs.FlashImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, cnst.ErrEmptyImage
	}

	limit, err := cnst.GetCacheLimit()
	if err != nil {
		return nil, err
	}
	if info.Size() <= limit {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return structs.NewBufferedImage(data, info.Name()), nil
	}

	fhandle, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	mapped, err := mmap.Map(fhandle, mmap.RDONLY, 0)
	if err != nil {
		fhandle.Close()
		return nil, err
	}
	return structs.NewMappedImage(fhandle, mapped, info.Name()), nil
}
