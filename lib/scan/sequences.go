package scan

import (
	"esprobe/lib/profile"
	"esprobe/lib/structs"
)

// FindSequences locates every occurrence of target in buf and keeps the
// ones that look like part of a controller init sequence: among the first
// win.Probe bytes after the occurrence, at least one is another known
// opcode or a value below win.ParamMax. Each kept site carries
// up to win.Before preceding and win.After following context bytes. Sites
// come back in ascending offset order.
//
// This is a density heuristic, not a decoder; false positives and negatives
// are expected and accepted.
func FindSequences(buf []byte, target byte, opset profile.OpcodeSet, win profile.SeqWindow) []structs.SequenceSite {
	sites := []structs.SequenceSite{}
	for i, b := range buf {
		if b != target {
			continue
		}

		end := i + 1 + win.After
		if end > len(buf) {
			end = len(buf)
		}
		after := buf[i+1 : end]
		if !looksLikeSequence(after, opset, win) {
			continue
		}

		begin := i - win.Before
		if begin < 0 {
			begin = 0
		}

		var site structs.SequenceSite
		site.Offset = i
		site.Before = append([]byte{}, buf[begin:i]...)
		site.After = append([]byte{}, after...)
		sites = append(sites, site)
	}
	return sites
}

func looksLikeSequence(after []byte, opset profile.OpcodeSet, win profile.SeqWindow) bool {
	probe := after
	if len(probe) > win.Probe {
		probe = probe[:win.Probe]
	}
	for _, b := range probe {
		if b < win.ParamMax || opset.Has(b) {
			return true
		}
	}
	return false
}
