package machine

// FontStart is the address the standard hex font is stored at.
const FontStart = 0x050

// fontGlyphSize is the number of bytes of one 4x5 digit sprite.
const fontGlyphSize = 5

var fontData = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// StandardFont is the common 4x5 hex digit font stored at FontStart.
type StandardFont struct{}

// Install copies the font sprites into the machine memory.
func (StandardFont) Install(s *State) error {
	return s.Load(fontData[:], FontStart)
}

// DigitAddress returns the address of the sprite for the low nibble of digit.
func (StandardFont) DigitAddress(digit byte) uint16 {
	return FontStart + uint16(digit&0xF)*fontGlyphSize
}
