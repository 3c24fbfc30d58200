package dirbuild

import (
	"github.com/oscarotero/designtokens/ir"
)

// merge copies src into dst. Groups present in both are merged key by key;
// a token, or any other value, in src replaces what dst holds.
func merge(dst, src *ir.Node) {
	for i, f := range src.Fields {
		key := f.String
		sv := src.Values[i]
		dv := ir.Get(dst, key)
		if isGroup(dv) && isGroup(sv) {
			merge(dv, sv)
			continue
		}
		dst.Set(key, sv.Clone())
	}
}

func isGroup(n *ir.Node) bool {
	return n != nil && n.Type == ir.ObjectType && !n.Has("$value")
}
