package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

//go:embed schema.cue
var Schema string

type Module struct {
	dscope.Module
}

var filenames = []string{
	"tapebf.cue",
	".tapebf.cue",
}

func (Module) Loader() Loader {
	var paths []string
	add := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	if dir, err := os.Getwd(); err == nil {
		add(dir)
	}

	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		add(dir)
	}

	// system wide
	add("/etc")

	return NewLoader(paths, Schema)
}
