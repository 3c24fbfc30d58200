package libdiff

// Reverse returns the changes turning the "to" tree of a diff back into
// its "from" tree.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, Group: c.Group, From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		default:
			r.Op = c.Op
		}
		for _, f := range c.Fields {
			rf := Field{Name: f.Name, From: f.To, To: f.From}
			if f.Text != "" {
				rf.Text = DiffString(f.To.String, f.From.String)
			}
			r.Fields = append(r.Fields, rf)
		}
		res[i] = r
	}
	return res
}
