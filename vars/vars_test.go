package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", " Y ", "on", "1"} {
		if !StrToBool(s) {
			t.Fatalf("%q should be true", s)
		}
	}
	for _, s := range []string{"false", "no", "0", "", "foo"} {
		if StrToBool(s) {
			t.Fatalf("%q should be false", s)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestDerefOrZero(t *testing.T) {
	if v := DerefOrZero[bool](nil); v {
		t.Fatal()
	}
	b := true
	if v := DerefOrZero(&b); !v {
		t.Fatal()
	}
}
