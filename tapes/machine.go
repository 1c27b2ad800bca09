package tapes

import (
	"context"
	"errors"
	"io"

	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/programs"
)

const TapeSize = 30000

type Tape [TapeSize]byte

type Machine struct {
	Program programs.Program
	PC      int
	Pointer int
	Tape    Tape
	Steps   uint64

	Input  io.Reader
	Output io.Writer
	Logger logs.Logger

	buf [1]byte
}

type flusher interface {
	Flush() error
}

// context is polled once per this many steps
const ctxCheckInterval = 4096

func (m *Machine) Run(ctx context.Context) error {
	for {
		if m.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		done, err := m.Step()
		if err != nil {
			m.Logger.ErrorContext(ctx, "execution failed",
				"error", err,
				"steps", m.Steps,
			)
			return err
		}
		if done {
			m.Logger.DebugContext(ctx, "execution completed",
				"steps", m.Steps,
				"pc", m.PC,
			)
			return nil
		}
	}
}

// Step executes the instruction at PC. done reports that PC ran past the end.
func (m *Machine) Step() (done bool, err error) {
	if m.PC < 0 || m.PC >= len(m.Program) {
		return true, nil
	}
	inst := m.Program[m.PC]

	switch inst.Op() {

	case programs.OpMoveRight:
		if m.Pointer+1 >= TapeSize {
			return false, m.fail(ErrOutOfBounds)
		}
		m.Pointer++

	case programs.OpMoveLeft:
		if m.Pointer-1 < 0 {
			return false, m.fail(ErrOutOfBounds)
		}
		m.Pointer--

	case programs.OpIncrement:
		m.Tape[m.Pointer] = byte((int(m.Tape[m.Pointer]) + 1) % 256)

	case programs.OpDecrement:
		m.Tape[m.Pointer] = byte((int(m.Tape[m.Pointer]) + 255) % 256)

	case programs.OpPrint:
		m.buf[0] = m.Tape[m.Pointer]
		if _, err := m.Output.Write(m.buf[:]); err != nil {
			return false, m.fail(err)
		}
		if f, ok := m.Output.(flusher); ok {
			if err := f.Flush(); err != nil {
				return false, m.fail(err)
			}
		}

	case programs.OpRead:
		b, err := m.readByte()
		if err != nil {
			return false, m.fail(err)
		}
		m.Tape[m.Pointer] = b

	case programs.OpStartLoop:
		if m.Tape[m.Pointer] == 0 {
			m.PC = inst.Target()
		}

	case programs.OpEndLoop:
		if m.Tape[m.Pointer] != 0 {
			m.PC = inst.Target()
		}

	default:
		return false, m.fail(programs.ErrInvalidCharacter)
	}

	m.PC++
	m.Steps++
	return false, nil
}

func (m *Machine) readByte() (byte, error) {
	if m.Input == nil {
		return 0, ErrInputExhausted
	}
	if r, ok := m.Input.(io.ByteReader); ok {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, ErrInputExhausted
		}
		return b, err
	}
	if _, err := io.ReadFull(m.Input, m.buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrInputExhausted
		}
		return 0, err
	}
	return m.buf[0], nil
}

func (m *Machine) fail(err error) error {
	return &RuntimeError{
		Err:     err,
		PC:      m.PC,
		Pointer: m.Pointer,
	}
}
