package logs

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapebf/modes"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNewSpan(t *testing.T) {
	defer level.Set(level.Level())
	level.Set(slog.LevelDebug)

	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := t.Context()

		ctx1, span1 := newSpan(ctx, "")

		ctx11, span11 := newSpan(ctx1, "")

		_, span12 := newSpan(ctx11, span1)

		if SpanOf(ctx11) != span11 {
			t.Fatalf("got %v", SpanOf(ctx11))
		}

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span12)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(span11)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}
