package machine

// Stack is the bounded last-in-first-out stack of subroutine return addresses.
type Stack struct {
	entries []uint16
}

// Push adds a return address. It fails with ErrStackOverflow when
// StackDepth addresses are already stored.
func (st *Stack) Push(address uint16) error {
	if len(st.entries) >= StackDepth {
		return ErrStackOverflow
	}
	st.entries = append(st.entries, address)
	return nil
}

// Pop removes and returns the most recently pushed address.
// It fails with ErrStackUnderflow when the stack is empty.
func (st *Stack) Pop() (uint16, error) {
	if len(st.entries) == 0 {
		return 0, ErrStackUnderflow
	}
	last := len(st.entries) - 1
	address := st.entries[last]
	st.entries = st.entries[:last]
	return address, nil
}

// Clear removes all entries.
func (st *Stack) Clear() {
	st.entries = nil
}

// Len returns the number of stored addresses.
func (st *Stack) Len() int {
	return len(st.entries)
}

// Entries returns a copy of the stored addresses, oldest first.
func (st *Stack) Entries() []uint16 {
	entries := make([]uint16, len(st.entries))
	copy(entries, st.entries)
	return entries
}
