package cmds

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gufeijun/myrpcc/vars"
)

var ErrHelp = errors.New("help requested")

type Executor struct {
	commands map[string]*Command
	Output   io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		Output:   os.Stderr,
	}

	ret.Define("-h", Func(func() error {
		ret.PrintUsage()
		return ErrHelp
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			fnType := command.Func.Type()
			var callArgs []reflect.Value
			isCommand := func(arg string) bool {
				_, ok := commands[strings.TrimSpace(arg)]
				return ok
			}
			for i := range fnType.NumIn() {
				value, n, err := getArg(fnType.In(i), args, isCommand)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				args = args[n:]
				callArgs = append(callArgs, value)
			}
			rets := command.Func.Call(callArgs)
			if len(rets) > 0 && !rets[0].IsNil() {
				return rets[0].Interface().(error)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = cmd
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func (p *Executor) PrintUsage() {
	printUsage(p.Output, p.commands, 0)
}

func printUsage(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share a *Command, print each once under its sorted-first name
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true
		line := strings.Repeat("  ", depth) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printUsage(w, command.Subs, depth+1)
		}
	}
}

// getArg converts args into a value of type t, returning how many args it used.
// A slice takes args up to the first one that names a command.
func getArg(t reflect.Type, args []string, isCommand func(string) bool) (ret reflect.Value, n int, err error) {
	if t.Kind() == reflect.Slice {
		ret = reflect.MakeSlice(t, 0, len(args))
		for _, arg := range args {
			if isCommand(arg) {
				break
			}
			elem, _, err := getArg(t.Elem(), []string{arg}, isCommand)
			if err != nil {
				return ret, 0, err
			}
			ret = reflect.Append(ret, elem)
			n++
		}
		return ret, n, nil
	}

	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), 0, nil
		}
		return ret, 0, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elem, n, err := getArg(t.Elem(), args, isCommand)
		if err != nil {
			return ret, 0, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, n, nil
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, 0, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, 1, nil
}
