package designtokens

import (
	"errors"
	"testing"

	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"

	"github.com/google/go-cmp/cmp"
)

func TestParseNestedGroups(t *testing.T) {
	for _, tc := range []struct {
		file string
		opts []ParseOption
	}{
		{file: "testdata/groups.tokens.json"},
		{file: "testdata/groups.tokens.yaml", opts: []ParseOption{ParseFormat(format.YAMLFormat)}},
	} {
		t.Run(tc.file, func(t *testing.T) {
			tokens := mustFile(t, tc.file, tc.opts...)
			tests := []struct{ path, value string }{
				{"token one", "token value 1"},
				{"token group.token two", "token value 2"},
				{"token group.nested token group.token three", "token value 3"},
				{"token group.nested token group.Token four", "token value 4"},
			}
			for _, tt := range tests {
				tok := tokens.Get(tt.path)
				if tok == nil {
					t.Errorf("%q not found", tt.path)
					continue
				}
				if tok.RawValue().String != tt.value {
					t.Errorf("%q = %s, want %s", tt.path, tok.RawValue().String, tt.value)
				}
				if tok.Path() != tt.path {
					t.Errorf("path = %q, want %q", tok.Path(), tt.path)
				}
				if tokens.GetChild(tt.path) != Node(tok) {
					t.Errorf("GetChild(%q) differs from Get", tt.path)
				}
			}
			if tokens.Len() != 2 {
				t.Errorf("root has %d children, want 2", tokens.Len())
			}
		})
	}
}

func TestCreateGroup(t *testing.T) {
	group := NewGroup("Colors",
		NewToken("primary", ir.FromString("red")),
		NewToken("secondary", ir.FromString("blue")),
	)
	group.Type = TypeColor
	group.Description = "Group of colors"

	if group.Len() != 2 || group.Get("primary").RawValue().String != "red" ||
		group.Get("secondary").RawValue().String != "blue" {
		t.Fatalf("unexpected group %s", group)
	}
	want := `{
		"$type": "color",
		"$description": "Group of colors",
		"primary": {"$value": "red"},
		"secondary": {"$value": "blue"}
	}`
	if diff := cmp.Diff(jsonOf(t, want), jsonOf(t, group.ToJSON())); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}

	group2, err := Build(group.Name(), group.ToJSON())
	if err != nil {
		t.Fatal(err)
	}
	if group2.Name() != "Colors" || group2.Description != "Group of colors" ||
		group2.Get("primary").RawValue().String != "red" || group2.Get("secondary").RawValue().String != "blue" {
		t.Errorf("import mismatch: %s", group2)
	}
}

func names(nodes []Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.Name()
	}
	return res
}

func TestGroupAdd(t *testing.T) {
	a := NewToken("a", ir.FromInt(1))
	b := NewToken("b", ir.FromInt(2))
	g := NewGroup("g", a, b)
	if a.Parent() != g || b.Parent() != g {
		t.Fatal("Add did not set parents")
	}

	a2 := NewToken("a", ir.FromInt(3))
	g.Add(a2)
	if diff := cmp.Diff([]string{"a", "b"}, names(g.Children())); diff != "" {
		t.Errorf("overwrite moved the slot (-want +got):\n%s", diff)
	}
	if g.Get("a") != a2 || a.Parent() != nil {
		t.Errorf("overwrite did not replace and detach the previous token")
	}

	// re-adding is a no-op
	g.Add(b)
	if g.Len() != 2 {
		t.Errorf("re-adding changed the group: %v", names(g.Children()))
	}

	other := NewGroup("other")
	other.Add(b)
	if b.Parent() != other || g.Child("b") != nil || g.Len() != 1 {
		t.Errorf("moving a token left it in its previous group")
	}

	if got := g.Remove("a"); got != Node(a2) || a2.Parent() != nil || g.Len() != 0 {
		t.Errorf("Remove failed")
	}
	if g.Remove("zzz") != nil {
		t.Errorf("Remove of an absent child should be nil")
	}
}

func TestGroupAddCycle(t *testing.T) {
	outer := NewGroup("outer")
	inner := NewGroup("inner")
	outer.Add(inner)
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	inner.Add(outer)
}

func TestSetName(t *testing.T) {
	tok := NewToken("a", ir.FromInt(1))
	if err := tok.SetName("b"); err != nil || tok.Name() != "b" {
		t.Fatalf("rename of a detached token: %v", err)
	}
	g := NewGroup("g", tok)
	if err := tok.SetName("c"); !errors.Is(err, ErrAttached) {
		t.Errorf("expected ErrAttached, got %v", err)
	}
	g.Remove("b")
	if err := tok.SetName("c"); err != nil {
		t.Errorf("rename after Remove: %v", err)
	}
}

func TestRootAndPath(t *testing.T) {
	tok := NewToken("x", ir.FromInt(1))
	if tok.Root() != nil || tok.Path() != "x" {
		t.Errorf("detached token: root %v path %q", tok.Root(), tok.Path())
	}
	mid := NewGroup("mid", tok)
	root := NewGroup("", mid)
	if tok.Root() != root || mid.Root() != root || root.Root() != nil {
		t.Errorf("bad roots")
	}
	if tok.Path() != "mid.x" || root.Path() != "" {
		t.Errorf("path = %q", tok.Path())
	}
	named := NewGroup("theme", root)
	if tok.Path() != "theme.mid.x" {
		t.Errorf("unnamed ancestor should add no segment, got %q", tok.Path())
	}
	if named.Get("mid.x") != nil {
		t.Errorf("unnamed group is not addressable by path")
	}
}

func TestGetChild(t *testing.T) {
	g := mustParse(t, `{"a": {"b": {"$value": 1}, "c": {"d": {"$value": 2}}}, "t": {"$value": 3}}`)
	tests := []struct {
		path string
		want string
	}{
		{"a", ""},
		{"a.c", ""},
		{"a.b", "a.b"},
		{"a.c.d", "a.c.d"},
		{"t", "t"},
		{"", ""},
		{".a", ""},
		{"a.", ""},
		{"a..b", ""},
		{"t.x", ""},
		{"t.", ""},
		{"a.b.c", ""},
		{"zz", ""},
	}
	for _, tt := range tests {
		got := ""
		if n := g.GetChild(tt.path); n != nil {
			got = n.Path()
		}
		if got != tt.want {
			t.Errorf("GetChild(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if g.Get("a") != nil {
		t.Errorf("Get should not return groups")
	}
}

func TestGetPathProperty(t *testing.T) {
	g := mustFile(t, "testdata/groups.tokens.json")
	for _, tok := range g.All() {
		if got := g.Get(tok.Path()); got != tok {
			t.Errorf("Get(%q) = %v", tok.Path(), got)
		}
	}
}

func TestAllOrder(t *testing.T) {
	g := mustParse(t, `{"z": {"$value": 1}, "g": {"y": {"$value": 2}, "h": {"x": {"$value": 3}}}, "a": {"$value": 4}}`)
	var got []string
	for _, tok := range g.All() {
		got = append(got, tok.Path())
	}
	if diff := cmp.Diff([]string{"z", "g.y", "g.h.x", "a"}, got); diff != "" {
		t.Errorf("All order (-want +got):\n%s", diff)
	}
}

func TestVisitSkip(t *testing.T) {
	g := mustParse(t, `{"skip": {"a": {"$value": 1}}, "b": {"$value": 2}}`)
	var seen []string
	err := g.Visit(func(n Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		seen = append(seen, n.Path())
		return n.Name() != "skip", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"", "skip", "b"}, seen); diff != "" {
		t.Errorf("visit (-want +got):\n%s", diff)
	}
}

func TestGetGroup(t *testing.T) {
	g := mustParse(t, `{"a": {"b": {"$value": 1}, "c": {"d": {"$value": 2}}}}`)
	tests := []struct {
		path string
		want string
	}{
		{"a", "a"},
		{"a.c", "a.c"},
		{"a.b", ""},
		{"a.c.d", ""},
		{"a.", ""},
		{"zz", ""},
	}
	for _, tt := range tests {
		got := ""
		if sub := g.GetGroup(tt.path); sub != nil {
			got = sub.Path()
		}
		if got != tt.want {
			t.Errorf("GetGroup(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if g.GetGroup("") != g {
		t.Errorf("empty path should be the group itself")
	}
}
