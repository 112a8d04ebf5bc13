package scan

import (
	"bytes"
	"strings"
)

// FindSignatures counts case-insensitive occurrences of each fixed byte
// signature anywhere in buf. Overlapping matches count independently at
// every start position. Signatures with zero occurrences are omitted.
func FindSignatures(buf []byte, signatures []string) map[string]int {
	low := bytes.ToLower(buf)

	found := make(map[string]int)
	for _, sig := range signatures {
		pat := []byte(strings.ToLower(sig))
		if len(pat) == 0 {
			continue
		}

		var count, off int
		for {
			i := bytes.Index(low[off:], pat)
			if i < 0 {
				break
			}
			count++
			off += i + 1
		}
		if count > 0 {
			found[sig] = count
		}
	}
	return found
}
