package runners

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/tapes"
	"github.com/reusee/tapebf/vars"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
	Tapes   tapes.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// InputPath names a file that replaces standard input for read instructions.
type InputPath string

var inputFlag = cmds.DescVar[string]("-input", "path", "read program input from a file instead of stdin")

func (Module) InputPath(
	loader configs.Loader,
) InputPath {
	return InputPath(vars.FirstNonZero(
		*inputFlag,
		configs.First[string](loader, "input"),
	))
}
