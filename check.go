package designtokens

import (
	"errors"
	"fmt"
	"strings"
)

type ProblemKind int

const (
	BrokenAlias ProblemKind = iota
	CyclicAlias
	UnknownType
)

func (k ProblemKind) String() string {
	switch k {
	case BrokenAlias:
		return "broken-alias"
	case CyclicAlias:
		return "cyclic-alias"
	case UnknownType:
		return "unknown-type"
	default:
		return fmt.Sprintf("ProblemKind(%d)", int(k))
	}
}

// Problem is a defect found by Check. Path is the path of the token or
// group at fault.
type Problem struct {
	Path   string
	Kind   ProblemKind
	Detail string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Path, p.Kind, p.Detail)
}

// Check reports the aliases of g which do not name a token, the tokens
// whose resolution is cyclic, and the types outside Types. Problems are
// listed in tree order.
func Check(g *Group) []Problem {
	var res []Problem
	_ = g.Visit(func(n Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch x := n.(type) {
		case *Group:
			if x.Type != "" && !x.Type.Known() {
				res = append(res, Problem{Path: x.Path(), Kind: UnknownType, Detail: fmt.Sprintf("unknown type %q", x.Type)})
			}
		case *Token:
			res = append(res, checkToken(x)...)
		}
		return true, nil
	})
	return res
}

func checkToken(t *Token) []Problem {
	var res []Problem
	if t.typ != "" && !t.typ.Known() {
		res = append(res, Problem{Path: t.Path(), Kind: UnknownType, Detail: fmt.Sprintf("unknown type %q", t.typ)})
	}
	for _, p := range t.Aliases() {
		if t.lookupPath(p) != nil {
			continue
		}
		detail := fmt.Sprintf("{%s} does not name a token", p)
		if root := t.Root(); root != nil && p != "" {
			if root.GetGroup(strings.TrimPrefix(p, root.name+".")) != nil {
				detail = fmt.Sprintf("{%s} names a group", p)
			}
		}
		res = append(res, Problem{Path: t.Path(), Kind: BrokenAlias, Detail: detail})
	}
	if _, err := t.ResolvedValue(); errors.Is(err, ErrCyclicAlias) {
		res = append(res, Problem{Path: t.Path(), Kind: CyclicAlias, Detail: err.Error()})
	}
	return res
}
