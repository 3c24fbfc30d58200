package designtokens

import (
	"errors"
	"strings"
	"testing"

	"github.com/oscarotero/designtokens/ir"

	"github.com/google/go-cmp/cmp"
)

func TestBuildScenarios(t *testing.T) {
	g := mustParse(t, `{"token one": {"$value": "v1"}, "group": {"nested": {"$value": "v2"}}}`)
	if v := g.Get("token one").RawValue().String; v != "v1" {
		t.Errorf("token one = %s", v)
	}
	if v := g.Get("group.nested").RawValue().String; v != "v2" {
		t.Errorf("group.nested = %s", v)
	}
	if g.Get("group") != nil {
		t.Errorf("group should not be a token")
	}
	if g.GetChild("group") != nil {
		t.Errorf("a path ending on a group should be absent")
	}
	if g.GetGroup("group") == nil {
		t.Errorf("group should be a group")
	}

	g = mustParse(t, `{"color": {"$type": "color", "primary": {"$value": "red"}}}`)
	primary := g.Get("color.primary")
	if primary.ExplicitType() != "" || mustType(t, primary) != TypeColor {
		t.Errorf("primary: explicit %q resolved %q", primary.ExplicitType(), mustType(t, primary))
	}

	g = mustParse(t, `{"colors": {"primary": {"$value": "blue", "$type": "color"}, "main": {"$value": "{colors.primary}"}}}`)
	main := g.Get("colors.main")
	if v := mustValue(t, main); v.String != "blue" {
		t.Errorf("main = %s", jsonOf(t, v))
	}
	if typ := mustType(t, main); typ != TypeColor {
		t.Errorf("main type = %s", typ)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"null value", `{"t": {"$value": null}}`, ErrMissingValue},
		{"token doc without value", `{"$type": "color"}`, nil},
		{"description not a string", `{"t": {"$value": 1, "$description": 2}}`, ErrInvalidFieldType},
		{"type not a string", `{"t": {"$value": 1, "$type": ["color"]}}`, ErrInvalidFieldType},
		{"extensions not an object", `{"t": {"$value": 1, "$extensions": "x"}}`, ErrInvalidFieldType},
		{"group description", `{"g": {"$description": false}}`, ErrInvalidFieldType},
		{"group type", `{"$type": 3}`, ErrInvalidFieldType},
		{"group extensions", `{"$extensions": []}`, ErrInvalidFieldType},
		{"not an object", `[1, 2]`, ErrInvalidDocument},
		{"deep error", `{"a": {"b": {"c": {"$value": null}}}}`, ErrMissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := BuildToken("t", ir.Object()); !errors.Is(err, ErrMissingValue) {
		t.Errorf("BuildToken without $value: %v", err)
	}
	_, err := Parse([]byte(`{"a": {"b": {"c": {"$value": null}}}}`))
	if err == nil || !strings.Contains(err.Error(), `"a.b.c"`) {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestBuildFalsyValues(t *testing.T) {
	g := mustParse(t, `{"zero": {"$value": 0}, "no": {"$value": false}, "empty": {"$value": ""}}`)
	if len(g.All()) != 3 {
		t.Errorf("falsy values should be valid token values, got %d tokens", len(g.All()))
	}
}

func TestBuildPreservesUnknownFields(t *testing.T) {
	src := `{
		"$description": "root",
		"$extensions": {"org.example": {"a": 1}},
		"$themes": ["light", "dark"],
		"version": 2,
		"removed": null,
		"c": {
			"$value": "#fff",
			"comment": "white",
			"$deprecated": true,
			"$extensions": {"org.example": true}
		}
	}`
	g := mustParse(t, src)
	if g.Description != "root" || g.Len() != 1 {
		t.Fatalf("unexpected root %s", g)
	}
	if diff := cmp.Diff([]string{"$themes", "version"}, g.Extra.Keys()); diff != "" {
		t.Errorf("group extra (-want +got):\n%s", diff)
	}
	c := g.Get("c")
	if diff := cmp.Diff([]string{"comment", "$deprecated"}, c.Extra.Keys()); diff != "" {
		t.Errorf("token extra (-want +got):\n%s", diff)
	}
	want := `{
		"$description": "root",
		"$extensions": {"org.example": {"a": 1}},
		"$themes": ["light", "dark"],
		"version": 2,
		"c": {
			"$value": "#fff",
			"$extensions": {"org.example": true},
			"comment": "white",
			"$deprecated": true
		}
	}`
	if diff := cmp.Diff(jsonOf(t, want), jsonOf(t, g.ToJSON())); diff != "" {
		t.Errorf("export (-want +got):\n%s", diff)
	}
}

func TestBuildDoesNotRetainDocument(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "t", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "$value", Val: ir.FromString("x")}})},
	})
	g, err := FromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	ir.Get(doc, "t").Set("$value", ir.FromString("y"))
	if v := g.Get("t").RawValue().String; v != "x" {
		t.Errorf("tree shares the document: %s", v)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, file := range []string{"testdata/groups.tokens.json", "testdata/shadow.tokens.json"} {
		t.Run(file, func(t *testing.T) {
			g := mustFile(t, file)
			first := g.ToJSON()
			g2, err := Build(g.Name(), first)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(jsonOf(t, first), jsonOf(t, g2.ToJSON())); diff != "" {
				t.Errorf("round trip (-first +second):\n%s", diff)
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	g, err := FromAny(map[string]any{
		"b": map[string]any{"$value": 1.5},
		"a": map[string]any{"x": map[string]any{"$value": "{b}", "$type": "number"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, names(g.Children())); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if v := mustValue(t, g.Get("a.x")); *v.Float64 != 1.5 {
		t.Errorf("got %s", jsonOf(t, v))
	}
	if _, err := FromAny([]any{1}); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestParseStyleDictionary(t *testing.T) {
	g := mustFile(t, "testdata/style-dictionary.json", ParseStyleDictionary(true))
	base := g.Get("size.font.base")
	if base == nil {
		t.Fatalf("token not built: %s", g)
	}
	if v := mustValue(t, base); v.String != "12px" {
		t.Errorf("got %s", jsonOf(t, v))
	}
	if typ := mustType(t, base); typ != TypeDimension {
		t.Errorf("type %s", typ)
	}
	if c := ir.Get(base.Extra, "comment"); c == nil || c.String != "body text" {
		t.Errorf("comment lost: %s", base)
	}
}

func TestMetaJSON(t *testing.T) {
	g := mustParse(t, `{"color": {"$type": "color", "$description": "palette", "$deprecated": true, "note": "x", "red": {"$value": "#f00"}}}`)
	color := g.GetGroup("color")
	want := jsonOf(t, `{"$type": "color", "$description": "palette", "$deprecated": true, "note": "x"}`)
	if got := jsonOf(t, color.MetaJSON()); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if color.Len() != 1 {
		t.Errorf("MetaJSON should not touch the children")
	}
}

func TestEmptyExtensionsKept(t *testing.T) {
	g := mustParse(t, `{"g": {"$extensions": {}, "a": {"$value": 1, "$extensions": {}}, "b": {"$value": 2}}}`)
	want := jsonOf(t, `{"g": {"$extensions": {}, "a": {"$value": 1, "$extensions": {}}, "b": {"$value": 2}}}`)
	if got := jsonOf(t, g.ToJSON()); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if g.Get("g.b").Extensions != nil {
		t.Errorf("absent $extensions should stay nil")
	}
}
