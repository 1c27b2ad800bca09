package tapes

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/programs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewMachine func(program programs.Program, input io.Reader, output io.Writer) *Machine

func (Module) NewMachine(
	logger logs.Logger,
) NewMachine {
	return func(program programs.Program, input io.Reader, output io.Writer) *Machine {
		return &Machine{
			Program: program,
			Input:   input,
			Output:  output,
			Logger:  logger,
		}
	}
}
