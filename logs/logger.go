package logs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/tapebf/cmds"
	"github.com/reusee/tapebf/configs"
	"github.com/reusee/tapebf/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level        = new(slog.LevelVar)
	levelFromCLI bool
)

func setLevel(l slog.Level) func() {
	return func() {
		level.Set(l)
		levelFromCLI = true
	}
}

func init() {
	cmds.Define("-log-debug", cmds.Func(setLevel(slog.LevelDebug)).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(setLevel(slog.LevelInfo)).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(setLevel(slog.LevelWarn)).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(setLevel(slog.LevelError)).Desc("set log level to error"))
}

type Logger = *slog.Logger

// DefaultLevel is the level used when neither flags nor config set one.
func DefaultLevel(mode modes.Mode) slog.Level {
	if mode == modes.ModeDevelopment {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func (Module) Logger(
	writer Writer,
	loader configs.Loader,
	mode modes.Mode,
) Logger {
	var handlers []slog.Handler
	var warnings []slog.Record

	// level: flags, then config, then mode
	if !levelFromCLI {
		level.Set(DefaultLevel(mode))
		var name string
		err := loader.AssignFirst("log_level", &name)
		if err == nil {
			var l slog.Level
			err = l.UnmarshalText([]byte(name))
			if err == nil {
				level.Set(l)
			}
		}
		if err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "config log_level", 0)
			record.Add("error", err)
			warnings = append(warnings, record)
		}
	}

	isSystemdService := false
	cgroupPath, err := getCgroupPath()
	if err == nil {
		isSystemdService = strings.HasSuffix(
			path.Dir(cgroupPath),
			".service",
		)
	}

	// terminal
	var terminalHandler slog.Handler
	if !isSystemdService {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	// systemd journal
	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		warnings = append(warnings, record)
	} else {
		handlers = append(handlers, journalHandler)
	}

	if terminalHandler != nil {
		for _, record := range warnings {
			_ = terminalHandler.Handle(context.Background(), record)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(string(content), ":")
	if len(parts) >= 3 {
		return strings.TrimSpace(parts[2]), nil
	}
	return "", nil
}
