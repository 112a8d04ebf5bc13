package scan

import (
	"reflect"
	"testing"

	"esprobe/lib/profile"
	"esprobe/lib/structs"
)

func TestFindSignatures(t *testing.T) {
	tests := []struct {
		name       string
		buf        []byte
		signatures []string
		want       map[string]int
	}{
		{
			name:       "case variations counted together",
			buf:        []byte("..ILI9341..garbage..ili9341.."),
			signatures: []string{"ILI9341", "ST7789"},
			want:       map[string]int{"ILI9341": 2},
		},
		{
			name:       "zero occurrences omitted",
			buf:        []byte("nothing here"),
			signatures: []string{"ILI9341"},
			want:       map[string]int{},
		},
		{
			name:       "overlapping matches counted at every start",
			buf:        []byte("aaa"),
			signatures: []string{"aa"},
			want:       map[string]int{"aa": 2},
		},
		{
			name:       "empty buffer",
			buf:        nil,
			signatures: []string{"ILI9341"},
			want:       map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSignatures(tt.buf, tt.signatures)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindStrings(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		keywords []string
		want     []string
	}{
		{
			name:     "keyword match is case-insensitive",
			buf:      []byte("junk\x00tft_driver_cfg\x00\x01\x02other\x00"),
			keywords: []string{"TFT"},
			want:     []string{"tft_driver_cfg"},
		},
		{
			name:     "runs shorter than four bytes dropped",
			buf:      []byte("TFT\x00TFT_OK\x00"),
			keywords: []string{"TFT"},
			want:     []string{"TFT_OK"},
		},
		{
			name:     "duplicates collapse",
			buf:      []byte("lcd_init\x00lcd_init\x00"),
			keywords: []string{"LCD"},
			want:     []string{"lcd_init"},
		},
		{
			name:     "run at end of buffer is flushed",
			buf:      []byte("\x00display_rotation"),
			keywords: []string{"display"},
			want:     []string{"display_rotation"},
		},
		{
			name:     "no keyword match",
			buf:      []byte("plain_text_here\x00"),
			keywords: []string{"TFT", "LCD"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindStrings(tt.buf, tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindOpcodes(t *testing.T) {
	table := profile.OpcodeTable{
		{Code: 0x11, Name: "Sleep Out"},
		{Code: 0x29, Name: "Display On"},
		{Code: 0xE0, Name: "Positive Gamma"},
	}

	t.Run("raw counts in table order, zero counts omitted", func(t *testing.T) {
		got := FindOpcodes([]byte{0x11, 0x11, 0x29}, table)
		want := []structs.OpcodeCount{
			{Opcode: 0x11, Name: "Sleep Out", Count: 2},
			{Opcode: 0x29, Name: "Display On", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty buffer yields empty result", func(t *testing.T) {
		got := FindOpcodes(nil, table)
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("no positional filtering", func(t *testing.T) {
		// 0x11 buried in arbitrary data still counts
		got := FindOpcodes([]byte{0xFE, 0x11, 0xFE}, table)
		want := []structs.OpcodeCount{{Opcode: 0x11, Name: "Sleep Out", Count: 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
