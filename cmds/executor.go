package cmds

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type Executor struct {
	commands   map[string]*Command
	positional *Command
}

// EndOfCommands stops command lookup. Every argument after it goes to the positional command.
const EndOfCommands = "--"

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if name == EndOfCommands {
		panic(fmt.Errorf("reserved command %s", name))
	}
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	positionalOnly := false
	for len(args) > 0 {
		raw := args[0]
		name := strings.TrimSpace(raw)

		if !positionalOnly && name == EndOfCommands {
			if p.positional == nil {
				return fmt.Errorf("unexpected %s: no positional arguments", EndOfCommands)
			}
			positionalOnly = true
			args = args[1:]
			continue
		}

		var command *Command
		if !positionalOnly {
			command = p.commands[name]
		}
		if command != nil {
			args = args[1:]
		} else {
			if p.positional == nil || !positionalOnly && strings.HasPrefix(name, "-") {
				return fmt.Errorf("unknown command: %s", name)
			}
			// the name itself is the argument
			command = p.positional
		}

		var err error
		args, err = p.call(command, args)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Executor) call(command *Command, args []string) ([]string, error) {
	var callArgs []reflect.Value
	if command.Func.Type().NumIn() == 1 {
		value, err := getArg(command.Func.Type().In(0), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := command.Func.Call(callArgs)
	if len(rets) > 0 {
		if err, ok := rets[0].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return args, nil
}

// Positional sets the command that receives arguments not naming any command.
// Names starting with "-" are never treated as positional, unless they follow EndOfCommands.
func (p *Executor) Positional(command *Command) {
	if p.positional != nil {
		panic(fmt.Errorf("duplicated positional command"))
	}
	p.positional = command
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ret = elemValue.Addr()
		return ret, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
