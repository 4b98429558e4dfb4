package disasm

import (
	"fmt"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/set"
)

const (
	startLabel  = "Start"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"
	tableNaming = "_jump_table_%04x"
)

// Labels returns the label names of all addresses that are referenced by
// the instructions of the lines and that are the start of a line.
func Labels(lines []Line) map[uint16]string {
	lineStarts := set.New[uint16]()
	for _, line := range lines {
		lineStarts.Add(line.Address)
	}

	calls := set.New[uint16]()
	jumps := set.New[uint16]()
	tables := set.New[uint16]()
	for _, line := range lines {
		ins := line.Instruction
		target, ok := referencedAddress(ins)
		if !ok || !lineStarts.Contains(target) {
			continue
		}

		switch {
		case ins.IsCall():
			calls.Add(target)
		case ins.Kind == chip8.JumpV0:
			tables.Add(target)
		case ins.IsJump():
			jumps.Add(target)
		}
	}

	branchTargets := set.New[uint16]()
	for address := range calls {
		branchTargets.Add(address)
	}
	for address := range jumps {
		branchTargets.Add(address)
	}
	for address := range tables {
		branchTargets.Add(address)
	}
	data := dataReferences(lines, lineStarts, branchTargets)

	labels := make(map[uint16]string, len(calls)+len(jumps)+len(data)+len(tables)+1)
	for address := range data {
		labels[address] = fmt.Sprintf(dataNaming, address)
	}
	for address := range jumps {
		labels[address] = fmt.Sprintf(labelNaming, address)
	}
	for address := range tables {
		labels[address] = fmt.Sprintf(tableNaming, address)
	}
	// calls take precedence over plain jumps to the same address
	for address := range calls {
		labels[address] = fmt.Sprintf(funcNaming, address)
	}
	if lineStarts.Contains(chip8.ProgramStart) {
		labels[chip8.ProgramStart] = startLabel
	}
	return labels
}

// dataReferences follows the index register through straight line code and
// returns the addresses loaded by ld I that are read or written by a later
// memory instruction. The index becomes unknown at branch targets, after
// control flow changes, after instructions that modify I relative to its
// value and when ld I is conditional on a preceding skip.
func dataReferences(lines []Line, lineStarts, branchTargets set.Set[uint16]) set.Set[uint16] {
	data := set.New[uint16]()

	var (
		index       uint16
		known       bool
		conditional bool
	)
	for _, line := range lines {
		ins := line.Instruction
		if branchTargets.Contains(line.Address) {
			known = false
		}

		switch {
		case ins.Kind == chip8.LoadIndex:
			index, known = ins.NNN, !conditional
		case ins.ReadsMemory(), ins.WritesMemory():
			if known && lineStarts.Contains(index) {
				data.Add(index)
			}
		case ins.Kind == chip8.AddIndex, ins.Kind == chip8.LoadFont:
			known = false
		case ins.IsJump(), ins.IsCall(), ins.IsReturn():
			known = false
		}

		conditional = ins.IsSkip()
	}
	return data
}

// assignLabels sets the label of every referenced line and the label name
// on every line that references it.
func assignLabels(lines []Line) {
	labels := Labels(lines)

	for i := range lines {
		line := &lines[i]
		line.Label = labels[line.Address]

		if target, ok := referencedAddress(line.Instruction); ok {
			line.BranchingTo = labels[target]
		}
	}
}

// referencedAddress returns the address that an instruction refers to and
// that can be replaced by a label. For jmp v0 this is the base of the jump
// table.
func referencedAddress(ins chip8.Instruction) (uint16, bool) {
	if target, ok := ins.BranchTarget(); ok {
		return target, true
	}
	if ins.IsJump() {
		return ins.NNN, true
	}
	return ins.DataReference()
}
