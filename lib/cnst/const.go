package cnst

import (
	"errors"

	"github.com/shirou/gopsutil/v3/mem"
)

const (
	B  int64 = 1
	KB       = B << 10
	MB       = KB << 10
	GB       = MB << 10
)

const (
	// DefaultTableOffset is where ESP32 images keep the partition table
	DefaultTableOffset = 0x8000
	// DefaultTableSize is the 3KB window reserved for the table
	DefaultTableSize = 0xC00

	DefaultArtifactName = "factory_app0.bin"
	ZstdExt             = ".zst"
)

var MEMOPT bool

var (
	ErrNoPartition = errors.New("no partition matched the given selector")
	ErrOutOfRange  = errors.New("partition range exceeds flash image bounds")
	ErrTableRegion = errors.New("partition table region lies outside the flash image")
	ErrEmptyImage  = errors.New("flash image is empty")
)

const (
	CmdTable     = "table"
	CmdExtract   = "extract"
	CmdAnalyze   = "analyze"
	CmdSequences = "sequences"

	FlagTableOffset      = "tableoffset"
	FlagTableOffsetShort = 't'
	FlagTableSize        = "tablesize"
	FlagTableSizeShort   = 'w'
	FlagOut              = "out"
	FlagOutShort         = 'o'
	FlagZstd             = "zstd"
	FlagZstdShort        = 'z'
	FlagLabel            = "label"
	FlagLabelShort       = 'l'
	FlagSubtype          = "subtype"
	FlagSubtypeShort     = 's'
	FlagImage            = "image"
	FlagImageShort       = 'i'
	FlagReport           = "report"
	FlagReportShort      = 'r'
	FlagMax              = "max"
	FlagMaxShort         = 'm'
	FlagLowResource      = "low"
	FlagLowResourceShort = 'u'

	OperandFile = "FILE"
)

// GetCacheLimit reports how much of an image we are willing to read into
// memory at once. Larger images get mmapped instead.
func GetCacheLimit() (int64, error) {
	if MEMOPT {
		return 64 * KB, nil
	}
	vmemstat, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return int64(vmemstat.Available / 4), nil
}
