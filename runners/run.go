package runners

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/programs"
	"github.com/reusee/tapebf/tapes"
)

// RunSource lexes src and executes it. Nothing runs if lexing fails.
type RunSource func(ctx context.Context, src []byte) error

func (Module) RunSource(
	logger logs.Logger,
	newMachine tapes.NewMachine,
	stdin Stdin,
	stdout Stdout,
	inputPath InputPath,
) RunSource {
	return func(ctx context.Context, src []byte) error {
		program, err := programs.Lex(src)
		if err != nil {
			logger.ErrorContext(ctx, "lex", "error", err)
			return err
		}
		logger.DebugContext(ctx, "lexed",
			"bytes", len(src),
			"instructions", len(program),
		)

		var input io.Reader = stdin
		if inputPath != "" {
			f, err := os.Open(string(inputPath))
			if err != nil {
				return &StartupError{
					Err:  err,
					Path: string(inputPath),
				}
			}
			defer f.Close()
			input = bufio.NewReader(f)
			logger.DebugContext(ctx, "input redirected", "path", inputPath)
		}

		machine := newMachine(program, input, stdout)
		return machine.Run(ctx)
	}
}

// RunFile reads the source file at path and runs it.
type RunFile func(ctx context.Context, path string) error

func (Module) RunFile(
	logger logs.Logger,
	newSpan logs.NewSpan,
	runSource RunSource,
) RunFile {
	return func(ctx context.Context, path string) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		if path == "" {
			return &StartupError{
				Err: ErrMissingSource,
			}
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return &StartupError{
				Err:  err,
				Path: path,
			}
		}
		logger.DebugContext(ctx, "source loaded",
			"path", path,
			"bytes", len(src),
		)

		return runSource(ctx, src)
	}
}
