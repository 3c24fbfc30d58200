// Package ir provides the intermediate representation (IR) for JSON values
// handled by the design token tree.
//
// # Overview
//
// A Node represents a single JSON value. Whole token documents, raw token
// values, resolved values and extension bags are all ir.Node trees. Unlike
// map[string]any, objects keep their fields in document order, which is what
// makes group children and exported documents stable.
//
// # Node Structure
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number (literal fallback)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the string key for Values[i]
//
// Every child node records its Parent, ParentIndex and, inside objects,
// ParentField.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "$value", Val: ir.FromString("#ff0000")},
//	    {Key: "$type", Val: ir.FromString("color")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(0.5)})
//
// FromAny and ToAny convert from and to plain Go values.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/oscarotero/designtokens/parse - Parses JSON and YAML into IR nodes
//   - github.com/oscarotero/designtokens/encode - Encodes IR nodes to JSON and YAML
package ir
