package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
flag?: bool
`

func writeCue(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.cue")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `str: "bar", list: [1, 2, 3]`),
	}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("flag", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `str: "bar"`),
		writeCue(t, `flag: true`),
		writeCue(t, `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %v", paths)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `str: "bar"`),
	}, testSchema)

	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	flag, err := First[*bool](loader, "flag")
	if err != nil {
		t.Fatal(err)
	}
	if flag != nil {
		t.Fatalf("got %v", *flag)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `unknown_field: "x"`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestTypeMismatch(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `str: 42`),
	}, testSchema)
	if _, err := First[string](loader, "str"); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "missing.cue"),
	}, testSchema)
	if _, err := First[string](loader, "str"); err == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	str, err := First[string](loader, "str")
	if err != nil {
		t.Fatal(err)
	}
	if str != "" {
		t.Fatalf("got %q", str)
	}
}
