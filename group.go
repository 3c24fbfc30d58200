package designtokens

import (
	"slices"
	"strings"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"
)

// Group is a named container of tokens and groups.
type Group struct {
	nodeBase

	// Type is inherited by descendant tokens without a type of their own.
	Type        Type
	Description string
	Extensions  *ir.Node
	// Extra holds unrecognized $-prefixed keys and entries which are
	// neither groups nor tokens, in document order.
	Extra *ir.Node

	names    []string
	children map[string]Node
}

// NewGroup creates a detached group holding children.
func NewGroup(name string, children ...Node) *Group {
	g := &Group{
		Extra:      ir.Object(),
		children:   map[string]Node{},
	}
	g.name = name
	g.Add(children...)
	return g
}

// Add attaches children to g, detaching each from its previous parent. A
// child whose name is taken replaces the previous occupant in place.
//
// Add panics if a child is g or one of its ancestors.
func (g *Group) Add(children ...Node) {
	for _, child := range children {
		if sub, ok := child.(*Group); ok {
			for p := g; p != nil; p = p.parent {
				if p == sub {
					panic("designtokens: cannot add a group to its own subtree")
				}
			}
		}
		b := child.base()
		if b.parent == g && g.children[b.name] == child {
			continue
		}
		if b.parent != nil {
			b.parent.detach(child)
		}
		if old, ok := g.children[b.name]; ok {
			old.base().parent = nil
		} else {
			g.names = append(g.names, b.name)
		}
		g.children[b.name] = child
		b.parent = g
	}
}

// Remove detaches and returns the child called name, or nil.
func (g *Group) Remove(name string) Node {
	child, ok := g.children[name]
	if !ok {
		return nil
	}
	g.detach(child)
	return child
}

func (g *Group) detach(child Node) {
	b := child.base()
	if g.children[b.name] != child {
		return
	}
	delete(g.children, b.name)
	if i := slices.Index(g.names, b.name); i != -1 {
		g.names = slices.Delete(g.names, i, i+1)
	}
	b.parent = nil
}

// Children returns the direct children in insertion order.
func (g *Group) Children() []Node {
	res := make([]Node, len(g.names))
	for i, name := range g.names {
		res[i] = g.children[name]
	}
	return res
}

func (g *Group) Len() int { return len(g.names) }

func (g *Group) Child(name string) Node {
	child, ok := g.children[name]
	if !ok {
		return nil
	}
	return child
}

// GetChild returns the token at the dot separated path, or nil. Paths
// ending on a group are absent.
func (g *Group) GetChild(path string) Node {
	head, tail, more := strings.Cut(path, ".")
	if head == "" {
		return nil
	}
	switch child := g.children[head].(type) {
	case *Group:
		if !more || tail == "" {
			return nil
		}
		return child.GetChild(tail)
	case *Token:
		if more {
			return nil
		}
		return child
	default:
		return nil
	}
}

// GetGroup returns the group at the dot separated path, or nil. An empty
// path is g itself.
func (g *Group) GetGroup(path string) *Group {
	if path == "" {
		return g
	}
	cur := g
	for _, name := range strings.Split(path, ".") {
		next, ok := cur.Child(name).(*Group)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Get returns the token at the dot separated path, or nil.
func (g *Group) Get(path string) *Token {
	t, _ := g.GetChild(path).(*Token)
	return t
}

// All returns every token below g, depth first in insertion order.
func (g *Group) All() []*Token {
	var res []*Token
	_ = g.Visit(func(n Node, isPost bool) (bool, error) {
		if t, ok := n.(*Token); ok && !isPost {
			res = append(res, t)
		}
		return true, nil
	})
	return res
}

// Visit calls f on g and its descendants, before (isPost false) and after
// (isPost true) their children. Returning false skips the children.
func (g *Group) Visit(f func(n Node, isPost bool) (bool, error)) error {
	dive, err := f(g, false)
	if err != nil {
		return err
	}
	if dive {
		for _, child := range g.Children() {
			switch c := child.(type) {
			case *Group:
				err = c.Visit(f)
			case *Token:
				if _, err = f(c, false); err == nil {
					_, err = f(c, true)
				}
			}
			if err != nil {
				return err
			}
		}
	}
	_, err = f(g, true)
	return err
}

func (g *Group) String() string {
	return encode.MustString(g.ToJSON())
}
