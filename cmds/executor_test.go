package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %d", a)
	}

	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %d", a)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	fail := errors.New("fail")
	executor.Define("fail", Func(func() error {
		return fail
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, fail) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}
}

func TestRestArguments(t *testing.T) {
	executor := NewExecutor()
	var verbose bool
	var files []string
	executor.Define("-v", Func(func() {
		verbose = true
	}))
	executor.Define("tokens", Func(func(paths []string) {
		files = paths
	}))
	if err := executor.Execute([]string{"-v", "tokens", "a.idl", "b.idl"}); err != nil {
		t.Fatal(err)
	}
	if !verbose {
		t.Fatal()
	}
	if strings.Join(files, ",") != "a.idl,b.idl" {
		t.Fatalf("got %v", files)
	}

	if err := executor.Execute([]string{"tokens"}); err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Fatalf("got %v", files)
	}
}

func TestRestArgumentsStopAtCommand(t *testing.T) {
	executor := NewExecutor()
	var jobs int
	var files []string
	executor.Define("-jobs", Func(func(n int) {
		jobs = n
	}))
	executor.Define("tokens", Func(func(paths []string) {
		files = paths
	}))
	if err := executor.Execute([]string{"tokens", "a.idl", "-jobs", "2", "b.idl"}); err == nil {
		t.Fatal("should error")
	}
	if jobs != 2 {
		t.Fatalf("got %d", jobs)
	}
	if strings.Join(files, ",") != "a.idl" {
		t.Fatalf("got %v", files)
	}

	if err := executor.Execute([]string{"tokens", "a.idl", "b.idl", "-jobs", "4"}); err != nil {
		t.Fatal(err)
	}
	if jobs != 4 {
		t.Fatalf("got %d", jobs)
	}
	if strings.Join(files, ",") != "a.idl,b.idl" {
		t.Fatalf("got %v", files)
	}
}

func TestSliceMustBeLast(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	Func(func([]string, int) {})
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))

	err := executor.Execute([]string{"help"})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("got %v", err)
	}
	out := buf.String()
	for _, s := range []string{"foo\tFOO", "  bar\tBAR", "  baz\tBAZ", "    qux\tQUX", "print this usage"} {
		if !strings.Contains(out, s) {
			t.Fatalf("%q not in %q", s, out)
		}
	}
}
