package eval

import (
	"testing"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/parse"

	"github.com/google/go-cmp/cmp"
)

const doc = `{
	"color": {
		"$type": "color",
		"red": {"$value": "#f00", "$extensions": {"org.example.deprecated": true}},
		"alert": {"$value": "{color.red}", "$description": "errors"}
	},
	"space": {
		"s": {"$value": 4},
		"m": {"$value": 8, "$type": "number"},
		"ref": {"$value": "{space.m}"}
	}
}`

func TestSelect(t *testing.T) {
	g, err := designtokens.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		expr string
		want []string
	}{
		{`type == "color"`, []string{"color.red", "color.alert"}},
		{`alias`, []string{"color.alert", "space.ref"}},
		{`type == "number" && value > 4`, []string{"space.m", "space.ref"}},
		{`hasPrefix(path, "space.") && depth == 1 && !alias`, []string{"space.s", "space.m"}},
		{`ext("org.example.deprecated") == true`, []string{"color.red"}},
		{`description != ""`, []string{"color.alert"}},
		{`resolve("space.m") == value`, []string{"space.m", "space.ref"}},
		{`"space.m" in aliases`, []string{"space.ref"}},
		{`group == "color" && explicitType == ""`, []string{"color.red", "color.alert"}},
		{`raw == "{color.red}"`, []string{"color.alert"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			toks, err := Select(g, f)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, tok := range toks {
				got = append(got, tok.Path())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selected (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`path +`, `path`, `nosuchfield == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q): expected an error", src)
		}
	}
}

func TestMatchCycle(t *testing.T) {
	g, err := designtokens.Parse([]byte(`{"a": {"$value": "{a}"}}`))
	if err != nil {
		t.Fatal(err)
	}
	f, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Match(g.Get("a")); err == nil {
		t.Errorf("expected an error for a cyclic token")
	}
}

func TestResolveUnderNamedRoot(t *testing.T) {
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	g, err := designtokens.Build("theme", node)
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{`resolve("theme.space.m") == value`, `resolve("space.m") == value`} {
		f, err := Compile(src)
		if err != nil {
			t.Fatal(err)
		}
		toks, err := Select(g, f)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, tok := range toks {
			got = append(got, tok.Path())
		}
		if diff := cmp.Diff([]string{"theme.space.m", "theme.space.ref"}, got); diff != "" {
			t.Errorf("%s: selected (-want +got):\n%s", src, diff)
		}
	}
}
