package designtokens

import (
	"fmt"
	"strings"

	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/ir"
)

// Build creates a group called name from the object doc. Mappings holding
// a $value become tokens, other mappings become groups. The values are
// copied, doc is not retained.
func Build(name string, doc *ir.Node) (*Group, error) {
	return buildGroup(name, name, doc)
}

// BuildToken creates a token called name from the object doc.
func BuildToken(name string, doc *ir.Node) (*Token, error) {
	return buildToken(name, name, doc)
}

func buildGroup(name, path string, doc *ir.Node) (*Group, error) {
	if err := checkObject(path, doc); err != nil {
		return nil, err
	}
	g := NewGroup(name)
	for i, f := range doc.Fields {
		key, v := f.String, doc.Values[i]
		switch key {
		case "$description":
			if err := checkString(path, key, v); err != nil {
				return nil, err
			}
			g.Description = v.String
		case "$type":
			if err := checkString(path, key, v); err != nil {
				return nil, err
			}
			g.Type = Type(v.String)
		case "$extensions":
			if v.Type != ir.ObjectType {
				return nil, fieldErr(path, key, "an object", v)
			}
			g.Extensions = v.Clone()
		default:
			childPath := joinPath(path, key)
			switch {
			case strings.HasPrefix(key, "$"):
				g.Extra.Set(key, v.Clone())
			case v.Type == ir.NullType:
				if debug.Build() {
					debug.Logf("build %s: skipping null entry\n", childPath)
				}
			case v.Type != ir.ObjectType:
				g.Extra.Set(key, v.Clone())
			case v.Has("$value"):
				t, err := buildToken(key, childPath, v)
				if err != nil {
					return nil, err
				}
				g.Add(t)
			default:
				sub, err := buildGroup(key, childPath, v)
				if err != nil {
					return nil, err
				}
				g.Add(sub)
			}
		}
	}
	if debug.Build() {
		debug.Logf("build group %q with %d children\n", path, g.Len())
	}
	return g, nil
}

func buildToken(name, path string, doc *ir.Node) (*Token, error) {
	if err := checkObject(path, doc); err != nil {
		return nil, err
	}
	value := ir.Get(doc, "$value")
	if value == nil || value.Type == ir.NullType {
		return nil, fmt.Errorf("%w at %q", ErrMissingValue, path)
	}
	t := NewToken(name, value.Clone())
	for i, f := range doc.Fields {
		key, v := f.String, doc.Values[i]
		switch key {
		case "$value":
		case "$description":
			if err := checkString(path, key, v); err != nil {
				return nil, err
			}
			t.Description = v.String
		case "$type":
			if err := checkString(path, key, v); err != nil {
				return nil, err
			}
			t.typ = Type(v.String)
		case "$extensions":
			if v.Type != ir.ObjectType {
				return nil, fieldErr(path, key, "an object", v)
			}
			t.Extensions = v.Clone()
		default:
			t.Extra.Set(key, v.Clone())
		}
	}
	if debug.Build() {
		debug.Logf("build token %q: %v\n", path, t.value)
	}
	return t, nil
}

func checkObject(path string, doc *ir.Node) error {
	if doc == nil {
		return fmt.Errorf("%w: nothing at %q", ErrInvalidDocument, path)
	}
	if doc.Type != ir.ObjectType {
		return fmt.Errorf("%w: expected an object at %q, got %s", ErrInvalidDocument, path, doc.Type)
	}
	return nil
}

func checkString(path, key string, v *ir.Node) error {
	if v.Type != ir.StringType {
		return fieldErr(path, key, "a string", v)
	}
	return nil
}

func fieldErr(path, key, want string, v *ir.Node) error {
	return fmt.Errorf("%w: %s at %q must be %s, got %s", ErrInvalidFieldType, key, path, want, v.Type)
}
