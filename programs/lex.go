package programs

import (
	"strings"
)

const Alphabet = "<>+-.,[]"

// Decode maps one alphabet byte to its op. It fails closed on anything else.
func Decode(c byte) (Op, error) {
	switch c {
	case '<':
		return OpMoveLeft, nil
	case '>':
		return OpMoveRight, nil
	case '+':
		return OpIncrement, nil
	case '-':
		return OpDecrement, nil
	case '.':
		return OpPrint, nil
	case ',':
		return OpRead, nil
	case '[':
		return OpStartLoop, nil
	case ']':
		return OpEndLoop, nil
	}
	return 0, &ParseError{
		Err:  ErrInvalidCharacter,
		Char: c,
	}
}

// Filter returns the alphabet subsequence of src.
func Filter(src []byte) []byte {
	ret := make([]byte, 0, len(src))
	for _, c := range src {
		if strings.IndexByte(Alphabet, c) >= 0 {
			ret = append(ret, c)
		}
	}
	return ret
}

// Lex converts source text to a program with every loop linked to its partner.
// Bytes outside Alphabet are ignored; indexes refer to the filtered stream.
func Lex(src []byte) (Program, error) {
	filtered := Filter(src)
	program := make(Program, 0, len(filtered))
	var opens []int

	for i, c := range filtered {
		op, err := Decode(c)
		if err != nil {
			err.(*ParseError).Offset = i
			return nil, err
		}

		switch op {

		case OpStartLoop:
			opens = append(opens, i)
			// patched when the partner is seen
			program = append(program, OpStartLoop.With(0))

		case OpEndLoop:
			if len(opens) == 0 {
				return nil, &ParseError{
					Err:    ErrUnmatchedLoop,
					Offset: i,
					Char:   c,
				}
			}
			start := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			program[start] = OpStartLoop.With(i)
			program = append(program, OpEndLoop.With(start))

		default:
			program = append(program, Instruction(op))
		}
	}

	if len(opens) > 0 {
		return nil, &ParseError{
			Err:    ErrUnmatchedLoop,
			Offset: opens[0],
			Char:   '[',
		}
	}

	return program, nil
}
