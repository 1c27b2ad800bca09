package programs

import (
	"fmt"
	"strings"
)

type Program []Instruction

// String renders the program back into the instruction alphabet.
func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, inst := range p {
		b.WriteByte(inst.Op().Char())
	}
	return b.String()
}

// Check verifies that every op is valid and that loop targets pair up.
func (p Program) Check() error {
	for i, inst := range p {
		op := inst.Op()
		if !op.Valid() {
			return fmt.Errorf("instruction %d: %w: %v", i, ErrInvalidCharacter, op)
		}
		if !op.IsLoop() {
			continue
		}

		target := inst.Target()
		if target < 0 || target >= len(p) {
			return fmt.Errorf("instruction %d: %w: target %d out of range", i, ErrUnmatchedLoop, target)
		}
		partner := p[target]
		switch op {
		case OpStartLoop:
			if partner.Op() != OpEndLoop || target <= i {
				return fmt.Errorf("instruction %d: %w: bad partner %v", i, ErrUnmatchedLoop, partner)
			}
		case OpEndLoop:
			if partner.Op() != OpStartLoop || target >= i {
				return fmt.Errorf("instruction %d: %w: bad partner %v", i, ErrUnmatchedLoop, partner)
			}
		}
		if partner.Target() != i {
			return fmt.Errorf("instruction %d: %w: partner %d points to %d", i, ErrUnmatchedLoop, target, partner.Target())
		}
	}

	// non-crossing
	var opens []int
	for i, inst := range p {
		switch inst.Op() {
		case OpStartLoop:
			opens = append(opens, i)
		case OpEndLoop:
			if len(opens) == 0 || opens[len(opens)-1] != inst.Target() {
				return fmt.Errorf("instruction %d: %w: crossing loops", i, ErrUnmatchedLoop)
			}
			opens = opens[:len(opens)-1]
		}
	}

	return nil
}
