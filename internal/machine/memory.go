package machine

import "fmt"

// Load copies data into memory starting at address. It fails with
// ErrCapacity instead of truncating when the data does not fit.
func (s *State) Load(data []byte, address uint16) error {
	end := int(address) + len(data)
	if end > MemorySize {
		return fmt.Errorf("loading %d bytes at address %04x: %w", len(data), address, ErrCapacity)
	}
	copy(s.Memory[address:end], data)
	return nil
}

// LoadProgram copies a ROM image into memory at ProgramStart.
func (s *State) LoadProgram(rom []byte) error {
	return s.Load(rom, ProgramStart)
}

// Byte returns the memory byte at address.
func (s *State) Byte(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("reading address %04x: %w", address, ErrAddressOutOfRange)
	}
	return s.Memory[address], nil
}

// SetByte sets the memory byte at address.
func (s *State) SetByte(address uint16, value byte) error {
	if int(address) >= MemorySize {
		return fmt.Errorf("writing address %04x: %w", address, ErrAddressOutOfRange)
	}
	s.Memory[address] = value
	return nil
}

// ReadOpcode returns the two opcode bytes stored at address.
func (s *State) ReadOpcode(address uint16) (byte, byte, error) {
	if int(address)+1 >= MemorySize {
		return 0, 0, fmt.Errorf("fetching opcode at address %04x: %w", address, ErrAddressOutOfRange)
	}
	return s.Memory[address], s.Memory[address+1], nil
}

// Slice returns length bytes of memory starting at address. The returned
// slice aliases the machine memory.
func (s *State) Slice(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if length < 0 || end > MemorySize {
		return nil, fmt.Errorf("accessing %d bytes at address %04x: %w", length, address, ErrAddressOutOfRange)
	}
	return s.Memory[address:end], nil
}
