package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gufeijun/myrpcc/cmds"
	"github.com/gufeijun/myrpcc/debugs"
	"github.com/gufeijun/myrpcc/idlfiles"
	"github.com/gufeijun/myrpcc/lexer"
	"github.com/gufeijun/myrpcc/logs"
	"github.com/gufeijun/myrpcc/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	tapFlag  = cmds.Switch("-tap")
	evalFlag = cmds.Var[string]("-eval")

	action string
	paths  []string
)

func init() {
	cmds.Define("tokens", cmds.Func(func(args []string) {
		action = "tokens"
		paths = args
	}).Desc("print the tokens of schema files"))
	cmds.Define("check", cmds.Func(func(args []string) {
		action = "check"
		paths = args
	}).Desc("scan schema files and report errors"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == "" || len(paths) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	failed := false

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		tokenizeAll idlfiles.TokenizeAll,
		tap debugs.Tap,
		eval debugs.Eval,
	) {

		files, results := tokenizeAll(ctx, paths)
		var errs []error
		numTokens := 0
		for i, file := range files {
			if err := results[i]; err != nil {
				failed = true
				errs = append(errs, err)
				reportError(os.Stderr, err)
			}
			if file == nil {
				continue
			}
			numTokens += len(file.Tokens)
			if action == "tokens" {
				printTokens(os.Stdout, file)
			}
		}

		if action == "check" {
			fmt.Printf("%d files, %d tokens, %d errors\n", len(paths), numTokens, len(errs))
		}

		globals := map[string]any{
			"files":  files,
			"errors": errs,
			"kind_name": func(kind int) string {
				return lexer.TokenKind(kind).String()
			},
		}

		if *evalFlag != "" {
			if err := printEval(os.Stdout, eval, *evalFlag, globals); err != nil {
				failed = true
				reportError(os.Stderr, err)
			}
		}

		if *tapFlag {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				logger.Warn("tap needs a terminal on stdin, use -eval")
				return
			}
			tap(ctx, action, globals)
		}
	})

	if failed {
		os.Exit(1)
	}
}

func printTokens(w io.Writer, file *idlfiles.File) {
	for _, token := range file.Tokens {
		fmt.Fprintf(w, "%s:%v\t%v\t%s\n", file.Path, token.Pos, token.Kind, token.Text)
	}
}

func printEval(w io.Writer, eval debugs.Eval, expr string, globals map[string]any) error {
	value, err := eval(expr, globals)
	if err != nil {
		return fmt.Errorf("eval %s: %w", expr, err)
	}
	fmt.Fprintln(w, value.String())
	return nil
}

func reportError(w *os.File, err error) {
	if term.IsTerminal(int(w.Fd())) {
		fmt.Fprintf(w, "\x1b[31m%v\x1b[0m\n", err)
		return
	}
	fmt.Fprintln(w, err)
}
