package designtokens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/ir"
)

// ResolvedValue returns the token value with every alias replaced by the
// resolved value of the token it names. Broken aliases are kept as the raw
// alias string. The result never shares nodes with any token.
func (t *Token) ResolvedValue() (*ir.Node, error) {
	return (&resolver{}).value(t)
}

// ResolvedType returns, in order of precedence: the token's own type, the
// resolved type of the token it aliases, the type of the nearest ancestor
// declaring one, or a type inferred from the resolved value.
func (t *Token) ResolvedType() (Type, error) {
	return (&resolver{}).typ(t)
}

// resolver holds the chain of tokens being resolved, to stop on cycles.
type resolver struct {
	chain []*Token
}

func (r *resolver) enter(t *Token) error {
	if slices.Contains(r.chain, t) {
		paths := make([]string, 0, len(r.chain)+1)
		for _, c := range r.chain {
			paths = append(paths, c.Path())
		}
		paths = append(paths, t.Path())
		return fmt.Errorf("%w: %s", ErrCyclicAlias, strings.Join(paths, " -> "))
	}
	r.chain = append(r.chain, t)
	return nil
}

func (r *resolver) leave() {
	r.chain = r.chain[:len(r.chain)-1]
}

func (r *resolver) value(t *Token) (*ir.Node, error) {
	if err := r.enter(t); err != nil {
		return nil, err
	}
	defer r.leave()
	return r.resolve(t, t.value)
}

func (r *resolver) resolve(t *Token, v *ir.Node) (*ir.Node, error) {
	switch v.Type {
	case ir.StringType:
		target := t.lookupAlias(v.String)
		if target == nil {
			return v.Clone(), nil
		}
		if debug.Resolve() {
			debug.Logf("resolve %s: %s -> %s\n", t.Path(), v.String, target.Path())
		}
		return r.value(target)
	case ir.ArrayType:
		res := ir.FromSlice(nil)
		for _, elt := range v.Values {
			rv, err := r.resolve(t, elt)
			if err != nil {
				return nil, err
			}
			res.Append(rv)
		}
		return res, nil
	case ir.ObjectType:
		res := ir.Object()
		for i, f := range v.Fields {
			rv, err := r.resolve(t, v.Values[i])
			if err != nil {
				return nil, err
			}
			res.Set(f.String, rv)
		}
		return res, nil
	default:
		return v.Clone(), nil
	}
}

func (r *resolver) typ(t *Token) (Type, error) {
	if t.typ != "" {
		return t.typ, nil
	}
	if err := r.enter(t); err != nil {
		return "", err
	}
	defer r.leave()

	if t.value.Type == ir.StringType {
		if target := t.lookupAlias(t.value.String); target != nil {
			return r.typ(target)
		}
	}
	for p := t.parent; p != nil; p = p.parent {
		if p.Type != "" {
			return p.Type, nil
		}
	}
	v, err := r.resolve(t, t.value)
	if err != nil {
		return "", err
	}
	res, err := inferType(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Path(), err)
	}
	if debug.Resolve() {
		debug.Logf("resolve %s: inferred type %s from %v\n", t.Path(), res, v)
	}
	return res, nil
}

func inferType(v *ir.Node) (Type, error) {
	switch v.Type {
	case ir.StringType:
		return TypeString, nil
	case ir.NumberType:
		return TypeNumber, nil
	case ir.BoolType:
		return TypeBoolean, nil
	case ir.NullType:
		return TypeNull, nil
	case ir.ArrayType:
		return TypeArray, nil
	case ir.ObjectType:
		return TypeObject, nil
	default:
		return "", fmt.Errorf("%w: cannot infer a type for %s", ErrInvalidRootValue, v.Type)
	}
}
