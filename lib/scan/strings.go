package scan

import "strings"

const (
	printableLow  = 0x20
	printableHigh = 0x7E
	minRunLength  = 4
)

// FindStrings collects maximal printable ASCII runs of at least four bytes
// and keeps the ones containing a keyword, case-insensitively. Results are
// deduplicated in scan order, callers sort for presentation.
func FindStrings(buf []byte, keywords []string) []string {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	seen := make(map[string]struct{})
	relevant := []string{}

	start := -1
	for i := 0; i <= len(buf); i++ {
		if i < len(buf) && buf[i] >= printableLow && buf[i] <= printableHigh {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}

		run := buf[start:i]
		start = -1
		if len(run) < minRunLength || !anyKeyword(run, lowered) {
			continue
		}
		s := string(run)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		relevant = append(relevant, s)
	}

	return relevant
}

func anyKeyword(run []byte, lowered []string) bool {
	low := strings.ToLower(string(run))
	for _, kw := range lowered {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}
