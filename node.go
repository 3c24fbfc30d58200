package designtokens

import (
	"fmt"

	"github.com/oscarotero/designtokens/ir"
)

// Node is a member of a token tree, either a *Token or a *Group.
type Node interface {
	Name() string
	SetName(name string) error
	Parent() *Group
	Root() *Group
	Path() string
	ToJSON() *ir.Node

	base() *nodeBase
}

type nodeBase struct {
	name   string
	parent *Group
}

func (b *nodeBase) base() *nodeBase { return b }

// Name returns the key under which the node is stored in its parent.
func (b *nodeBase) Name() string { return b.name }

// SetName renames a detached node.
func (b *nodeBase) SetName(name string) error {
	if b.parent != nil {
		return fmt.Errorf("%w: cannot rename %q", ErrAttached, b.Path())
	}
	b.name = name
	return nil
}

func (b *nodeBase) Parent() *Group { return b.parent }

// Root returns the topmost ancestor, or nil if the node has no parent.
func (b *nodeBase) Root() *Group {
	r := b.parent
	if r == nil {
		return nil
	}
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Path returns the dot separated names from the topmost ancestor down to
// the node. Unnamed nodes do not contribute a segment.
func (b *nodeBase) Path() string {
	prefix := ""
	if b.parent != nil {
		prefix = b.parent.Path()
	}
	switch {
	case prefix == "":
		return b.name
	case b.name == "":
		return prefix
	default:
		return prefix + "." + b.name
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
