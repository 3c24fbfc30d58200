package libdiff

import (
	"fmt"
	"io"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"
)

// ToNode returns the changes as a JSON array, one object per change.
func ToNode(changes []Change) *ir.Node {
	res := ir.FromSlice(nil)
	for _, c := range changes {
		obj := ir.Object()
		obj.Set("path", ir.FromString(c.Path))
		obj.Set("op", ir.FromString(c.Op.String()))
		if c.Group {
			obj.Set("group", ir.FromBool(true))
		}
		switch c.Op {
		case Insert:
			obj.Set("to", c.To.Clone())
		case Delete:
			obj.Set("from", c.From.Clone())
		case Replace:
			fields := ir.Object()
			for _, f := range c.Fields {
				fields.Set(f.Name, fieldNode(f))
			}
			obj.Set("fields", fields)
		}
		res.Append(obj)
	}
	return res
}

func fieldNode(f Field) *ir.Node {
	res := ir.Object()
	if f.From != nil {
		res.Set("from", f.From.Clone())
	}
	if f.To != nil {
		res.Set("to", f.To.Clone())
	}
	if f.Text != "" {
		res.Set("text", ir.FromString(f.Text))
	}
	return res
}

// Lines renders a change as text, the first line naming the node and one
// indented line per differing field.
func (c *Change) Lines() []string {
	kind := ""
	if c.Group {
		kind = " (group)"
	}
	res := []string{fmt.Sprintf("%s %s%s", c.Op.Symbol(), c.Path, kind)}
	for _, f := range c.Fields {
		switch {
		case f.Text != "":
			res = append(res, fmt.Sprintf("    %s: %s", f.Name, f.Text))
		case f.From == nil:
			res = append(res, fmt.Sprintf("    %s: + %s", f.Name, encode.MustString(f.To)))
		case f.To == nil:
			res = append(res, fmt.Sprintf("    %s: - %s", f.Name, encode.MustString(f.From)))
		default:
			res = append(res, fmt.Sprintf("    %s: %s -> %s", f.Name, encode.MustString(f.From), encode.MustString(f.To)))
		}
	}
	return res
}

// Write writes the text report of changes to w.
func Write(w io.Writer, changes []Change) error {
	for i := range changes {
		for _, line := range changes[i].Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
