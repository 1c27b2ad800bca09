package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/logs"
	"github.com/reusee/tapebf/modes"
	"github.com/reusee/tapebf/runners"
	"github.com/tebeka/atexit"
)

var sourceArgs = cmds.Args()

func main() {
	cmds.Execute(os.Args[1:])

	path, err := runners.SourcePath(*sourceArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fmt.Fprintln(os.Stderr, "usage: tapebf [flags] [--] <source file>")
		atexit.Exit(1)
	}

	scope := dscope.New(
		new(runners.Module),
		modes.ForProduction(),
	)

	// a broken config file is a startup error, reported before anything reads it
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", &runners.StartupError{
				Err:  fmt.Errorf("config: %w", err),
				Path: fmt.Sprintf("%v", loader.Paths()),
			})
			atexit.Exit(1)
		}
	})

	scope.Call(func(
		logger logs.Logger,
		runFile runners.RunFile,
	) {
		start := time.Now()
		atexit.Register(func() {
			logger.Debug("exit", "elapsed", time.Since(start))
		})

		if err := runFile(context.Background(), path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			atexit.Exit(1)
		}
		atexit.Exit(0)
	})
}
