package debugs

import (
	"testing"

	"github.com/gufeijun/myrpcc/lexer"
	"github.com/gufeijun/myrpcc/modes"
	"github.com/reusee/dscope"
)

func TestEval(t *testing.T) {
	scanner := lexer.NewScanner("", []byte("message Foo { required int32 id = 1; }"), lexer.Options{})
	tokens, _, err := lexer.Collect(scanner)
	if err != nil {
		t.Fatal(err)
	}

	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		eval Eval,
	) {
		globals := map[string]any{
			"tokens": tokens,
		}

		v, err := eval(`len(tokens)`, globals)
		if err != nil {
			t.Fatal(err)
		}
		if v.String() != "10" {
			t.Fatalf("got %v", v)
		}

		v, err = eval(`[t["Text"] for t in tokens if t["Kind"] == "Identifier"]`, globals)
		if err != nil {
			t.Fatal(err)
		}
		if v.String() != `["Foo", "int32", "id"]` {
			t.Fatalf("got %v", v)
		}

		v, err = eval(`tokens[7]["Int"]`, globals)
		if err != nil {
			t.Fatal(err)
		}
		if v.String() != "1" {
			t.Fatalf("got %v", v)
		}

		if _, err := eval(`tokens[`, globals); err == nil {
			t.Fatal("should error")
		}
	})
}
