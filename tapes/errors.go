package tapes

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds    = errors.New("tape pointer out of bounds")
	ErrInputExhausted = errors.New("input exhausted")
)

type RuntimeError struct {
	Err     error
	PC      int
	Pointer int
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("runtime: %v (pc %d, pointer %d)", r.Err, r.PC, r.Pointer)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
