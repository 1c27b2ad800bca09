package programs

import "fmt"

type Op uint8

const (
	OpMoveLeft Op = iota + 1
	OpMoveRight
	OpIncrement
	OpDecrement
	OpPrint
	OpRead
	OpStartLoop
	OpEndLoop
)

var opChars = [...]byte{
	OpMoveLeft:  '<',
	OpMoveRight: '>',
	OpIncrement: '+',
	OpDecrement: '-',
	OpPrint:     '.',
	OpRead:      ',',
	OpStartLoop: '[',
	OpEndLoop:   ']',
}

var opNames = [...]string{
	OpMoveLeft:  "MoveLeft",
	OpMoveRight: "MoveRight",
	OpIncrement: "Increment",
	OpDecrement: "Decrement",
	OpPrint:     "Print",
	OpRead:      "Read",
	OpStartLoop: "StartLoop",
	OpEndLoop:   "EndLoop",
}

func (o Op) Valid() bool {
	return o >= OpMoveLeft && o <= OpEndLoop
}

func (o Op) IsLoop() bool {
	return o == OpStartLoop || o == OpEndLoop
}

// Char returns the source byte of the op, or 0 for an invalid op.
func (o Op) Char() byte {
	if !o.Valid() {
		return 0
	}
	return opChars[o]
}

func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// With encodes a loop op and the index of its partner.
func (o Op) With(target int) Instruction {
	return Instruction(o) | Instruction(target)<<8
}

// Instruction packs an Op in the low 8 bits and the loop target above them.
type Instruction uint64

func (i Instruction) Op() Op {
	return Op(i & 0xff)
}

func (i Instruction) Target() int {
	return int(i >> 8)
}

func (i Instruction) String() string {
	op := i.Op()
	if op.IsLoop() {
		return fmt.Sprintf("%s(%d)", op, i.Target())
	}
	return op.String()
}
