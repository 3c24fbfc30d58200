package eval

import (
	"strings"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/ir"
)

// Env is what a filter expression sees of one token.
type Env struct {
	Path         string   `expr:"path"`
	Name         string   `expr:"name"`
	Group        string   `expr:"group"`
	Depth        int      `expr:"depth"`
	Type         string   `expr:"type"`
	ExplicitType string   `expr:"explicitType"`
	Description  string   `expr:"description"`
	Value        any      `expr:"value"`
	Raw          any      `expr:"raw"`
	Alias        bool     `expr:"alias"`
	Aliases      []string `expr:"aliases"`

	// Resolve returns the resolved value of the token at a path from the
	// root, or nil.
	Resolve func(path string) any `expr:"resolve"`
	// Ext returns the $extensions entry called key, or nil.
	Ext func(key string) any `expr:"ext"`
}

// NewEnv resolves t and fills an Env with it.
func NewEnv(t *designtokens.Token) (*Env, error) {
	value, err := t.ResolvedValue()
	if err != nil {
		return nil, err
	}
	typ, err := t.ResolvedType()
	if err != nil {
		return nil, err
	}
	env := &Env{
		Path:         t.Path(),
		Name:         t.Name(),
		Depth:        strings.Count(t.Path(), "."),
		Type:         string(typ),
		ExplicitType: string(t.ExplicitType()),
		Description:  t.Description,
		Value:        ir.ToAny(value),
		Raw:          ir.ToAny(t.RawValue()),
		Alias:        t.IsAlias(),
		Aliases:      t.Aliases(),
		Resolve: func(path string) any {
			other := t.Lookup(path)
			if other == nil {
				return nil
			}
			v, err := other.ResolvedValue()
			if err != nil {
				return nil
			}
			return ir.ToAny(v)
		},
		Ext: func(key string) any {
			v := ir.Get(t.Extensions, key)
			if v == nil {
				return nil
			}
			return ir.ToAny(v)
		},
	}
	if p := t.Parent(); p != nil {
		env.Group = p.Path()
	}
	if env.Aliases == nil {
		env.Aliases = []string{}
	}
	return env, nil
}
