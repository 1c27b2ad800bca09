package runners

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSource  = errors.New("missing source file argument")
	ErrTooManySources = errors.New("only one source file is accepted")
)

// StartupError is returned for failures before any lexing.
type StartupError struct {
	Err  error
	Path string
}

func (s *StartupError) Error() string {
	if s.Path == "" {
		return fmt.Sprintf("startup: %v", s.Err)
	}
	return fmt.Sprintf("startup: %s: %v", s.Path, s.Err)
}

func (s *StartupError) Unwrap() error {
	return s.Err
}

// SourcePath picks the single source file out of the positional arguments.
func SourcePath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", &StartupError{
			Err: ErrMissingSource,
		}
	case 1:
		if args[0] == "" {
			return "", &StartupError{
				Err: ErrMissingSource,
			}
		}
		return args[0], nil
	}
	return "", &StartupError{
		Err: fmt.Errorf("%w: got %d", ErrTooManySources, len(args)),
	}
}
