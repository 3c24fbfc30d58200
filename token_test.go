package designtokens

import (
	"errors"
	"testing"

	"github.com/oscarotero/designtokens/ir"

	"github.com/google/go-cmp/cmp"
)

func TestCreateToken(t *testing.T) {
	token := NewToken("color", ir.FromString("red"))
	token.Description = "This is a color"
	token.SetType(TypeColor)
	token.Extensions = ir.FromKeyVals([]ir.KeyVal{{Key: "org.example.tool-a", Val: ir.FromInt(42)}})

	if token.Name() != "color" || token.RawValue().String != "red" || token.ExplicitType() != TypeColor {
		t.Fatalf("unexpected token %s", token)
	}
	want := `{
		"$value": "red",
		"$type": "color",
		"$description": "This is a color",
		"$extensions": {"org.example.tool-a": 42}
	}`
	if diff := cmp.Diff(jsonOf(t, want), jsonOf(t, token.ToJSON())); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}

	token2, err := BuildToken(token.Name(), token.ToJSON())
	if err != nil {
		t.Fatal(err)
	}
	if token2.Name() != "color" || token2.RawValue().String != "red" ||
		token2.ExplicitType() != TypeColor || token2.Description != "This is a color" {
		t.Errorf("import mismatch: %s", token2)
	}
	if v := ir.Get(token2.Extensions, "org.example.tool-a"); v == nil || *v.Int64 != 42 {
		t.Errorf("extension lost: %s", token2)
	}
}

func TestTokenNilValue(t *testing.T) {
	token := NewToken("n", nil)
	if token.RawValue().Type != ir.NullType {
		t.Fatalf("expected null, got %s", token.RawValue().Type)
	}
	if typ := mustType(t, token); typ != TypeNull {
		t.Errorf("type = %s, want null", typ)
	}
}

func TestDetermineTypes(t *testing.T) {
	token := NewToken("primary", ir.FromString("blue"))
	if typ := mustType(t, token); typ != TypeString {
		t.Errorf("inferred type = %s, want string", typ)
	}
	token.SetType(TypeColor)
	if typ := mustType(t, token); typ != TypeColor {
		t.Errorf("explicit type = %s, want color", typ)
	}

	token2 := NewToken("primary", ir.FromString("blue"))
	group := NewGroup("")
	group.Add(token2)
	group.Type = TypeColor
	if typ := mustType(t, token2); typ != TypeColor {
		t.Errorf("inherited type = %s, want color", typ)
	}
}

func TestInferredTypes(t *testing.T) {
	tests := []struct {
		value *ir.Node
		want  Type
	}{
		{ir.FromString("x"), TypeString},
		{ir.FromInt(0), TypeNumber},
		{ir.FromFloat(1.5), TypeNumber},
		{ir.FromBool(false), TypeBoolean},
		{ir.Null(), TypeNull},
		{ir.FromSlice(nil), TypeArray},
		{ir.Object(), TypeObject},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := mustType(t, NewToken("x", tt.value)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
	if _, err := NewToken("x", &ir.Node{Type: ir.Type(99)}).ResolvedType(); !errors.Is(err, ErrInvalidRootValue) {
		t.Errorf("expected ErrInvalidRootValue, got %v", err)
	}
}

func TestAliases(t *testing.T) {
	group := NewGroup("colors")
	NewGroup("").Add(group)
	token := NewToken("primary", ir.FromString("blue"))
	token.SetType(TypeColor)
	token2 := NewToken("main", ir.FromString("{colors.primary}"))
	group.Add(token, token2)

	if diff := cmp.Diff(jsonOf(t, mustValue(t, token)), jsonOf(t, mustValue(t, token2))); diff != "" {
		t.Errorf("resolved value mismatch (-want +got):\n%s", diff)
	}
	if mustType(t, token2) != mustType(t, token) {
		t.Errorf("alias type = %s, want %s", mustType(t, token2), mustType(t, token))
	}
	if !token2.IsAlias() || token.IsAlias() {
		t.Errorf("IsAlias wrong")
	}
	if token2.AliasTarget() != token {
		t.Errorf("AliasTarget = %v", token2.AliasTarget())
	}
	if token2.RawValue().String != "{colors.primary}" {
		t.Errorf("resolution changed the raw value")
	}
}

func TestTokenAliasList(t *testing.T) {
	token := NewToken("border", ir.FromKeyVals([]ir.KeyVal{
		{Key: "color", Val: ir.FromString("{color.shadow}")},
		{Key: "width", Val: ir.FromString("1px")},
		{Key: "style", Val: ir.FromSlice([]*ir.Node{ir.FromString("{dash}"), ir.FromString("{a\nb}")})},
	}))
	if diff := cmp.Diff([]string{"color.shadow", "dash"}, token.Aliases()); diff != "" {
		t.Errorf("aliases (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON(t *testing.T) {
	token := NewToken("x", ir.FromString("<b>"))
	d, err := token.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"$value":"<b>"}` {
		t.Errorf("got %s", d)
	}
}
