package designtokens

import (
	"errors"
	"strings"
	"testing"

	"github.com/oscarotero/designtokens/ir"

	"github.com/google/go-cmp/cmp"
)

func TestResolveTransitive(t *testing.T) {
	g := mustParse(t, `{
		"base": {"$value": 4, "$type": "dimension"},
		"mid": {"$value": "{base}"},
		"top": {"$value": "{mid}"}
	}`)
	top := g.Get("top")
	if v := mustValue(t, top); v.Type != ir.NumberType || *v.Int64 != 4 {
		t.Errorf("resolved value = %s", jsonOf(t, v))
	}
	if typ := mustType(t, top); typ != TypeDimension {
		t.Errorf("resolved type = %s, want dimension", typ)
	}
}

func TestResolveComposite(t *testing.T) {
	g := mustFile(t, "testdata/shadow.tokens.json")

	shadow := g.Get("shadow-token")
	if typ := mustType(t, shadow); typ != TypeShadow {
		t.Errorf("shadow type = %s", typ)
	}
	want := `{"color": "#00000080", "offsetX": "0.5rem", "offsetY": "0.5rem", "blur": "1.5rem", "spread": "0rem"}`
	if diff := cmp.Diff(jsonOf(t, want), jsonOf(t, mustValue(t, shadow))); diff != "" {
		t.Errorf("resolved shadow (-want +got):\n%s", diff)
	}

	layered := g.Get("layered")
	want = `[` + want + `, "{color.missing}"]`
	if diff := cmp.Diff(jsonOf(t, want), jsonOf(t, mustValue(t, layered))); diff != "" {
		t.Errorf("resolved array (-want +got):\n%s", diff)
	}
	if typ := mustType(t, layered); typ != TypeArray {
		t.Errorf("array type = %s", typ)
	}
}

func TestResolvedValueIsDetached(t *testing.T) {
	g := mustParse(t, `{"a": {"$value": {"x": [1]}}, "b": {"$value": "{a}"}}`)
	for _, tok := range g.All() {
		v := mustValue(t, tok)
		v.Set("x", ir.FromInt(2))
	}
	if got := jsonOf(t, g.Get("a").RawValue()); got != `{"x":[1]}` {
		t.Errorf("mutating a resolved value changed a raw value: %s", got)
	}
}

func TestResolveBrokenAlias(t *testing.T) {
	g := mustParse(t, `{"grp": {"t": {"$value": 1}}, "a": {"$value": "{nope}"}, "b": {"$value": "{grp}"}}`)
	for _, name := range []string{"a", "b"} {
		tok := g.Get(name)
		v := mustValue(t, tok)
		if v.String != tok.RawValue().String {
			t.Errorf("%s: broken alias resolved to %s", name, jsonOf(t, v))
		}
		if typ := mustType(t, tok); typ != TypeString {
			t.Errorf("%s: type %s, want string", name, typ)
		}
	}
	detached := NewToken("d", ir.FromString("{a}"))
	if v := mustValue(t, detached); v.String != "{a}" {
		t.Errorf("alias on a detached token resolved to %s", jsonOf(t, v))
	}
}

func TestResolveRootNamePrefix(t *testing.T) {
	doc := mustParse(t, `{"colors": {"primary": {"$value": "#00f"}, "main": {"$value": "{theme.colors.primary}"}}}`).ToJSON()
	g, err := Build("theme", doc)
	if err != nil {
		t.Fatal(err)
	}
	if v := mustValue(t, g.Get("colors.main")); v.String != "#00f" {
		t.Errorf("got %s", jsonOf(t, v))
	}
}

func TestResolveCycle(t *testing.T) {
	g := mustParse(t, `{"a": {"$value": "{b}"}, "b": {"$value": ["{a}"]}, "self": {"$value": "{self}"}}`)
	for _, name := range []string{"a", "b", "self"} {
		tok := g.Get(name)
		_, err := tok.ResolvedValue()
		if !errors.Is(err, ErrCyclicAlias) {
			t.Errorf("%s: expected ErrCyclicAlias, got %v", name, err)
		}
		if _, err := tok.ResolvedType(); !errors.Is(err, ErrCyclicAlias) {
			t.Errorf("%s: expected ErrCyclicAlias from type, got %v", name, err)
		}
	}
	_, err := g.Get("a").ResolvedValue()
	if err == nil || !strings.Contains(err.Error(), "a -> b -> a") {
		t.Errorf("cycle error should name the chain: %v", err)
	}
}

func TestResolveSharedAliasIsNotACycle(t *testing.T) {
	g := mustParse(t, `{"x": {"$value": 1}, "pair": {"$value": ["{x}", "{x}"]}}`)
	if got := jsonOf(t, mustValue(t, g.Get("pair"))); got != `[1,1]` {
		t.Errorf("got %s", got)
	}
}

func TestTypePrecedence(t *testing.T) {
	g := mustParse(t, `{
		"color": {
			"$type": "color",
			"red": {"$value": "#f00"},
			"size": {"$value": "4px", "$type": "dimension"},
			"nested": {"deep": {"$value": "#0f0"}},
			"ref": {"$value": "{other.n}"},
			"untypedRef": {"$value": "{other.m}"}
		},
		"other": {
			"n": {"$value": 1, "$type": "fontWeight"},
			"m": {"$value": true}
		}
	}`)
	tests := []struct {
		path string
		want Type
	}{
		{"color.red", TypeColor},
		{"color.size", TypeDimension},
		{"color.nested.deep", TypeColor},
		// the alias target decides, not the enclosing group
		{"color.ref", TypeFontWeight},
		{"color.untypedRef", TypeBoolean},
		{"other.m", TypeBoolean},
	}
	for _, tt := range tests {
		if got := mustType(t, g.Get(tt.path)); got != tt.want {
			t.Errorf("%s: type %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestNearestTypedGroupWins(t *testing.T) {
	g := mustParse(t, `{
		"outer": {
			"$type": "color",
			"inner": {
				"$type": "dimension",
				"t": {"$value": "4px"},
				"plain": {"deeper": {"$value": "8px"}}
			},
			"untyped": {"mid": {"u": {"$value": "#fff"}}}
		}
	}`)
	tests := []struct {
		path string
		want Type
	}{
		{"outer.inner.t", TypeDimension},
		{"outer.inner.plain.deeper", TypeDimension},
		{"outer.untyped.mid.u", TypeColor},
	}
	for _, tt := range tests {
		if got := mustType(t, g.Get(tt.path)); got != tt.want {
			t.Errorf("%s: type %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestResolveIsLive(t *testing.T) {
	g := mustParse(t, `{"a": {"$value": 1}, "b": {"$value": "{a}"}}`)
	b := g.Get("b")
	if got := jsonOf(t, mustValue(t, b)); got != "1" {
		t.Fatalf("got %s", got)
	}
	g.Get("a").SetValue(ir.FromString("changed"))
	if got := jsonOf(t, mustValue(t, b)); got != `"changed"` {
		t.Errorf("resolution did not see the mutation: %s", got)
	}
	g.Remove("a")
	if got := jsonOf(t, mustValue(t, b)); got != `"{a}"` {
		t.Errorf("alias to a removed token: %s", got)
	}
}
