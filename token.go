package designtokens

import (
	"strings"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"
)

// Token is a named design value.
type Token struct {
	nodeBase

	Description string
	// Extensions holds the $extensions object, nil when absent.
	Extensions *ir.Node
	// Extra holds unrecognized keys of the token object, in document order.
	Extra *ir.Node

	value *ir.Node
	typ   Type
}

// NewToken creates a detached token. A nil value is JSON null.
func NewToken(name string, value *ir.Node) *Token {
	t := &Token{
		Extra:      ir.Object(),
	}
	t.name = name
	t.SetValue(value)
	return t
}

// RawValue returns the value as stored, aliases unresolved.
func (t *Token) RawValue() *ir.Node { return t.value }

func (t *Token) SetValue(v *ir.Node) {
	if v == nil {
		v = ir.Null()
	}
	t.value = v
}

// ExplicitType returns the token's own $type, or "" if it has none.
func (t *Token) ExplicitType() Type { return t.typ }

func (t *Token) SetType(typ Type) { t.typ = typ }

// IsAlias reports whether the raw value is an alias string.
func (t *Token) IsAlias() bool {
	if t.value.Type != ir.StringType {
		return false
	}
	_, ok := aliasPath(t.value.String)
	return ok
}

// AliasTarget returns the token the raw value refers to, or nil if the raw
// value is not an alias or the alias is broken.
func (t *Token) AliasTarget() *Token {
	if t.value.Type != ir.StringType {
		return nil
	}
	return t.lookupAlias(t.value.String)
}

// Aliases returns the paths of all aliases found anywhere in the raw value,
// in document order.
func (t *Token) Aliases() []string {
	var res []string
	_ = t.value.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType {
			return true, nil
		}
		if p, ok := aliasPath(y.String); ok {
			res = append(res, p)
		}
		return true, nil
	})
	return res
}

func (t *Token) String() string {
	return encode.MustString(t.ToJSON())
}

// aliasPath returns the path inside an alias string "{path}".
func aliasPath(s string) (string, bool) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return "", false
	}
	p := s[1 : len(s)-1]
	if strings.ContainsAny(p, "\n\r") {
		return "", false
	}
	return p, true
}

func (t *Token) lookupAlias(s string) *Token {
	p, ok := aliasPath(s)
	if !ok {
		return nil
	}
	return t.lookupPath(p)
}

// Lookup finds the token an alias to path would name, or nil.
func (t *Token) Lookup(path string) *Token {
	return t.lookupPath(path)
}

// lookupPath finds an alias path from the root of t's tree. A leading
// segment naming the root itself is ignored.
func (t *Token) lookupPath(p string) *Token {
	root := t.Root()
	if root == nil {
		return nil
	}
	p = strings.TrimPrefix(p, root.name+".")
	return root.Get(p)
}
