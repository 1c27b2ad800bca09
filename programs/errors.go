package programs

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedLoop    = errors.New("unmatched loop")
	ErrInvalidCharacter = errors.New("invalid character")
)

type ParseError struct {
	Err error
	// Offset is the index in the filtered instruction stream
	Offset int
	Char   byte
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("parse: %v: %q at instruction %d", p.Err, p.Char, p.Offset)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}
