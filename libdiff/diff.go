// Package libdiff compares token trees.
//
// A diff is a list of Changes in document order. Paths present on one side
// only are inserted or deleted; paths present on both sides whose JSON
// differs are replaced, with the differing fields listed. Pure reordering
// is not a change.
package libdiff

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Change struct {
	Path string
	Op   Op
	// Group is set when the changed node is a group. Group JSON carries
	// the group's own fields only.
	Group bool
	// From is the node before the change, nil on Insert.
	From *ir.Node
	// To is the node after the change, nil on Delete.
	To *ir.Node
	// Fields lists the differing fields of a Replace.
	Fields []Field
}

// Field is a differing field of a replaced node. From or To is nil when
// the field is absent on that side.
type Field struct {
	Name     string
	From, To *ir.Node
	// Text is an inline character diff, set when both sides are strings.
	Text string
}

type diffOpts struct {
	resolved bool
}

type DiffOption func(*diffOpts)

// DiffResolved compares resolved token values and types instead of raw
// ones, so an alias change which resolves to the same value is not
// reported.
func DiffResolved(v bool) DiffOption {
	return func(o *diffOpts) { o.resolved = v }
}

type entry struct {
	path  string
	group bool
	doc   *ir.Node
}

func (e *entry) key() string {
	if e.group {
		return "g:" + e.path
	}
	return "t:" + e.path
}

// Diff returns the changes turning from into to.
func Diff(from, to *designtokens.Group, opts ...DiffOption) ([]Change, error) {
	dOpts := &diffOpts{}
	for _, opt := range opts {
		opt(dOpts)
	}
	fromEntries, err := entries(from, dOpts)
	if err != nil {
		return nil, err
	}
	toEntries, err := entries(to, dOpts)
	if err != nil {
		return nil, err
	}

	var res []Change
	for _, op := range diffKeys(fromEntries, toEntries) {
		switch op.op {
		case diffpatch.DiffDelete:
			e := fromEntries[op.fi]
			res = append(res, Change{Path: e.path, Op: Delete, Group: e.group, From: e.doc})
		case diffpatch.DiffInsert:
			e := toEntries[op.ti]
			res = append(res, Change{Path: e.path, Op: Insert, Group: e.group, To: e.doc})
		case diffpatch.DiffEqual:
			f, t := fromEntries[op.fi], toEntries[op.ti]
			if c := replace(f, t); c != nil {
				res = append(res, *c)
			}
		}
	}
	return mergeMoves(res), nil
}

func entries(g *designtokens.Group, o *diffOpts) ([]*entry, error) {
	var res []*entry
	err := g.Visit(func(n designtokens.Node, isPost bool) (bool, error) {
		if isPost || n == designtokens.Node(g) {
			return true, nil
		}
		e := &entry{path: relPath(g, n)}
		switch x := n.(type) {
		case *designtokens.Group:
			e.group = true
			e.doc = x.MetaJSON()
		case *designtokens.Token:
			if !o.resolved {
				e.doc = x.ToJSON()
				break
			}
			doc, err := x.ResolvedJSON()
			if err != nil {
				return false, err
			}
			e.doc = doc
		}
		res = append(res, e)
		return true, nil
	})
	return res, err
}

// relPath is the path of n below g, so trees with differently named roots
// compare.
func relPath(g *designtokens.Group, n designtokens.Node) string {
	var names []string
	for c := n; c != designtokens.Node(g); c = c.Parent() {
		names = append(names, c.Name())
	}
	slices.Reverse(names)
	return strings.Join(names, ".")
}

type keyOp struct {
	op     diffpatch.Operation
	fi, ti int
}

// diffKeys aligns the two entry sequences. Each distinct key is mapped to
// a rune and the rune strings are diffed.
func diffKeys(from, to []*entry) []keyOp {
	m := map[string]rune{}
	fromRunes := mapKeys(m, from)
	toRunes := mapKeys(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []keyOp
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range utf8.RuneCountInString(diff.Text) {
			op := keyOp{op: diff.Type, fi: fi, ti: ti}
			switch diff.Type {
			case diffpatch.DiffDelete:
				fi++
			case diffpatch.DiffInsert:
				ti++
			case diffpatch.DiffEqual:
				fi++
				ti++
			}
			res = append(res, op)
		}
	}
	return res
}

func mapKeys(m map[string]rune, es []*entry) []rune {
	rs := make([]rune, len(es))
	for i, e := range es {
		k := e.key()
		r, ok := m[k]
		if !ok {
			// stay clear of the surrogate range, which does not survive
			// the conversion to string.
			r = rune(len(m)) + 0x10000
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

func replace(from, to *entry) *Change {
	fields := diffFields(from.doc, to.doc)
	if len(fields) == 0 {
		return nil
	}
	return &Change{
		Path:   to.path,
		Op:     Replace,
		Group:  to.group,
		From:   from.doc,
		To:     to.doc,
		Fields: fields,
	}
}

func diffFields(from, to *ir.Node) []Field {
	var res []Field
	for i, f := range from.Fields {
		fv, tv := from.Values[i], ir.Get(to, f.String)
		if tv != nil && ir.Equal(fv, tv) {
			continue
		}
		res = append(res, makeField(f.String, fv, tv))
	}
	for i, f := range to.Fields {
		if from.Has(f.String) {
			continue
		}
		res = append(res, makeField(f.String, nil, to.Values[i]))
	}
	return res
}

func makeField(name string, from, to *ir.Node) Field {
	res := Field{Name: name, From: from, To: to}
	if from != nil && to != nil && from.Type == ir.StringType && to.Type == ir.StringType {
		res.Text = DiffString(from.String, to.String)
	}
	return res
}

// mergeMoves folds a Delete and an Insert of the same node, which the
// sequence diff reports when a node moved, into a Replace at the Insert
// position, or into nothing when the node is unchanged.
func mergeMoves(changes []Change) []Change {
	deleted := map[string]int{}
	for i := range changes {
		c := &changes[i]
		if c.Op == Delete {
			deleted[moveKey(c)] = i
		}
	}
	drop := map[int]bool{}
	res := make([]Change, 0, len(changes))
	for i := range changes {
		c := changes[i]
		if c.Op == Insert {
			if j, ok := deleted[moveKey(&c)]; ok {
				drop[j] = true
				from := &entry{path: c.Path, group: c.Group, doc: changes[j].From}
				to := &entry{path: c.Path, group: c.Group, doc: c.To}
				if r := replace(from, to); r != nil {
					res = append(res, *r)
				}
				continue
			}
		}
		res = append(res, c)
	}
	return slices.DeleteFunc(res, func(c Change) bool {
		if c.Op != Delete {
			return false
		}
		j, ok := deleted[moveKey(&c)]
		return ok && drop[j]
	})
}

func moveKey(c *Change) string {
	return fmt.Sprintf("%t:%s", c.Group, c.Path)
}
