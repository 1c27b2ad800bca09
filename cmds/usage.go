package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	if p.positional != nil {
		if p.positional.Description != "" {
			fmt.Fprintf(w, "<args>: %s\n", p.positional.Description)
		}
		fmt.Fprintf(w, "%s: end of flags, the rest are positional arguments\n", EndOfCommands)
	}
	writeCommands(w, p.commands)
}

func writeCommands(w io.Writer, commands map[string]*Command) {
	// aliases share one entry
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}

	type entry struct {
		names   []string
		command *Command
	}
	var entries []entry
	for command, ns := range names {
		slices.Sort(ns)
		entries = append(entries, entry{
			names:   ns,
			command: command,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.names[0], b.names[0])
	})

	for _, e := range entries {
		line := strings.Join(e.names, ", ")
		for _, arg := range e.command.ArgNames {
			line += " <" + arg + ">"
		}
		if e.command.Description != "" {
			line += ": " + e.command.Description
		}
		fmt.Fprintln(w, line)
	}
}
