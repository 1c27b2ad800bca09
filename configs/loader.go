package configs

import (
	"errors"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads cue files lazily. Earlier paths take precedence.
type Loader struct {
	paths    []string
	getRoots func() ([]cue.Value, error)
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		paths: paths,
		getRoots: sync.OnceValues(func() (ret []cue.Value, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return nil, err
					}
				}
				ret = append(ret, value)
			}

			return
		}),
	}
}

func (l Loader) Paths() []string {
	return l.paths
}

// Err reports a failure to read, compile or validate the files.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, root := range roots {
			value := root.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
