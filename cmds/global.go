package cmds

import (
	"errors"
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on the global executor and exits the process on failure.
func Execute(args []string) {
	err := GlobalExecutor.Execute(args)
	if errors.Is(err, ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(GlobalExecutor.Output, err)
		os.Exit(2)
	}
}
