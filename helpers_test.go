package designtokens

import (
	"os"
	"testing"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"
)

func mustParse(t *testing.T, src string) *Group {
	t.Helper()
	g, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parsing %s: %v", src, err)
	}
	return g
}

func mustFile(t *testing.T, name string, opts ...ParseOption) *Group {
	t.Helper()
	d, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	g, err := Parse(d, opts...)
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	return g
}

// jsonOf renders a node compactly, or a JSON literal normalized through
// the parser.
func jsonOf(t *testing.T, v any) string {
	t.Helper()
	switch x := v.(type) {
	case *ir.Node:
		return encode.MustString(x)
	case string:
		node, err := parse.Parse([]byte(x))
		if err != nil {
			t.Fatalf("bad literal %s: %v", x, err)
		}
		return encode.MustString(node)
	default:
		t.Fatalf("jsonOf: unexpected %T", v)
		return ""
	}
}

func mustValue(t *testing.T, tok *Token) *ir.Node {
	t.Helper()
	v, err := tok.ResolvedValue()
	if err != nil {
		t.Fatalf("resolving %s: %v", tok.Path(), err)
	}
	return v
}

func mustType(t *testing.T, tok *Token) Type {
	t.Helper()
	typ, err := tok.ResolvedType()
	if err != nil {
		t.Fatalf("resolving type of %s: %v", tok.Path(), err)
	}
	return typ
}
