package chip8

// mockDisplay records the calls made by cls and drw.
type mockDisplay struct {
	cleared   int
	collision bool

	x, y   byte
	sprite []byte
}

func (m *mockDisplay) Clear() {
	m.cleared++
}

func (m *mockDisplay) Draw(x, y byte, sprite []byte) bool {
	m.x, m.y = x, y
	m.sprite = append([]byte(nil), sprite...)
	return m.collision
}

// mockKeypad returns a fixed key.
type mockKeypad struct {
	key     byte
	pressed bool
}

func (m mockKeypad) WaitKey() (byte, bool) {
	return m.key, m.pressed
}

// fixedRandom returns the same byte every time.
type fixedRandom byte

func (r fixedRandom) Byte() byte {
	return byte(r)
}
