package profile

// Partition type codes used by the ESP32 bootloader.
const (
	TypeApp  = 0x00
	TypeData = 0x01

	SubtypeFactory = 0x00
)

// SubtypeFactoryName is the selector the extract command defaults to.
const SubtypeFactoryName = "factory"

// ESP32Naming covers the partition subtypes the ESP32 IDF defines.
func ESP32Naming() Naming {
	return Naming{
		Types: map[byte]string{
			TypeApp:  "app",
			TypeData: "data",
		},
		Subtypes: map[byte]map[byte]string{
			TypeApp: {
				0x00: "factory",
				0x10: "ota_0",
				0x11: "ota_1",
				0x20: "test",
			},
			TypeData: {
				0x00: "ota",
				0x01: "phy",
				0x02: "nvs",
				0x80: "esphttpd",
				0x81: "fat",
				0x82: "spiffs",
			},
		},
	}
}

// CYD returns the profile for the ESP32-2432S028 "cheap yellow display"
// board: an ESP32 driving an ILI9341-family TFT over SPI.
func CYD() Profile {
	return Profile{
		Naming: ESP32Naming(),
		Drivers: []string{
			"ILI9341",
			"ILI9488",
			"ST7789",
			"ST7735",
			"ILI9163",
			"GC9A01",
			"ST7796",
			"HX8357D",
		},
		Keywords: []string{
			"TFT", "LCD", "SPI", "MOSI", "MISO", "SCLK",
			"CS", "DC", "RST", "backlight", "display", "init", "rotation",
		},
		Opcodes: OpcodeTable{
			{0x11, "Sleep Out"},
			{0x29, "Display On"},
			{0x36, "Memory Access Control"},
			{0x3A, "Pixel Format Set"},
			{0xB1, "Frame Rate Control"},
			{0xB6, "Display Function Control"},
			{0xC0, "Power Control 1"},
			{0xC1, "Power Control 2"},
			{0xC5, "VCOM Control"},
			{0xE0, "Positive Gamma"},
			{0xE1, "Negative Gamma"},
		},
		KeyCommands: []KeyCommand{
			{0x11, "Sleep Out (usually first command)"},
			{0x3A, "Pixel Format Set (0x55=RGB565, 0x66=RGB666)"},
			{0x36, "Memory Access Control (rotation/mirror)"},
			{0x29, "Display On (usually last command)"},
		},
		Pins: []Pin{
			{2, "DC (Data/Command)"},
			{4, "RST (Reset)"},
			{15, "CS (Chip Select)"},
			{18, "SCLK (SPI Clock)"},
			{19, "MISO (SPI Data)"},
			{21, "BL (Backlight)"},
			{23, "MOSI (SPI Data)"},
			{36, "Button Input"},
		},
		Seq: DefaultSeqWindow,
	}
}
