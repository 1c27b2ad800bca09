package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {
	}).Desc("FOO").Alias("-foo"))
	executor.Define("bar", Func(func() {}))
	executor.Positional(Func(func(string) {}).Desc("source files"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	usage := buf.String()
	for _, expected := range []string{
		"<args>: source files\n",
		"--: end of flags, the rest are positional arguments\n",
		"--help, -h, -help, help: print this usage\n",
		"-foo, foo: FOO\n",
		"bar\n",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("expecting %q in\n%s", expected, usage)
		}
	}
}

func TestUsageArgs(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-input", Func(func(string) {}).Args("path").Desc("input file"))
	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	if !strings.Contains(buf.String(), "-input <path>: input file\n") {
		t.Fatalf("got\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "end of flags") {
		t.Fatalf("got\n%s", buf.String())
	}
}
