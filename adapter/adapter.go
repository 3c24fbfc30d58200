// Package adapter converts between style-dictionary token documents and
// DTCG documents.
//
// Style-dictionary spells the reserved token keys without the leading "$"
// ("value", "type", "description", "extensions"). The conversions here are
// purely structural renames over the whole document.
package adapter

import (
	"slices"
	"strings"

	"github.com/oscarotero/designtokens/ir"
)

var reserved = []string{"value", "type", "description", "extensions"}

// FromStyleDictionary returns a copy of doc with the style-dictionary keys
// renamed to their DTCG form. A key is kept as is when its DTCG form is
// already present in the same object.
func FromStyleDictionary(doc *ir.Node) *ir.Node {
	return rename(doc, func(key string) string {
		if slices.Contains(reserved, key) {
			return "$" + key
		}
		return key
	})
}

// ToStyleDictionary is the inverse of FromStyleDictionary.
func ToStyleDictionary(doc *ir.Node) *ir.Node {
	return rename(doc, func(key string) string {
		if k, ok := strings.CutPrefix(key, "$"); ok && slices.Contains(reserved, k) {
			return k
		}
		return key
	})
}

func rename(doc *ir.Node, to func(string) string) *ir.Node {
	switch doc.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, f := range doc.Fields {
			key := f.String
			if k := to(key); k != key && !doc.Has(k) {
				key = k
			}
			res.Set(key, rename(doc.Values[i], to))
		}
		return res
	case ir.ArrayType:
		res := ir.FromSlice(nil)
		for _, v := range doc.Values {
			res.Append(rename(v, to))
		}
		return res
	default:
		return doc.Clone()
	}
}

// IsStyleDictionary reports whether doc looks like a style-dictionary
// document: some object holds a "value" key and none holds "$value".
func IsStyleDictionary(doc *ir.Node) bool {
	sd, dtcg := false, false
	_ = doc.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ObjectType {
			return true, nil
		}
		if y.Has("$value") {
			dtcg = true
		}
		if y.Has("value") {
			sd = true
		}
		return !dtcg, nil
	})
	return sd && !dtcg
}
