package profile

import "testing"

func TestNaming(t *testing.T) {
	naming := ESP32Naming()

	tests := []struct {
		name        string
		typeCode    byte
		subtypeCode byte
		wantType    string
		wantSubtype string
	}{
		{"factory app", 0x00, 0x00, "app", "factory"},
		{"ota_0 app", 0x00, 0x10, "app", "ota_0"},
		{"spiffs data", 0x01, 0x82, "data", "spiffs"},
		{"unknown subtype renders raw hex", 0x00, 0x42, "app", "0x42"},
		{"unknown type renders raw hex", 0x7F, 0x00, "0x7F", "0x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := naming.TypeName(tt.typeCode); got != tt.wantType {
				t.Errorf("TypeName: got %q, want %q", got, tt.wantType)
			}
			if got := naming.SubtypeName(tt.typeCode, tt.subtypeCode); got != tt.wantSubtype {
				t.Errorf("SubtypeName: got %q, want %q", got, tt.wantSubtype)
			}
		})
	}
}

func TestOpcodeTableSet(t *testing.T) {
	prof := CYD()
	set := prof.Opcodes.Set()

	if len(set) != len(prof.Opcodes) {
		t.Fatalf("set has %d entries, table has %d", len(set), len(prof.Opcodes))
	}
	for _, op := range prof.Opcodes {
		if !set.Has(op.Code) {
			t.Errorf("set is missing 0x%02X", op.Code)
		}
	}
	if set.Has(0x00) {
		t.Error("set should not contain 0x00")
	}
}
