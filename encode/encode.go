package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent string
	wire   bool
	Color  *Colors

	w     io.Writer
	depth int
	err   error
}

// Encode writes node to w, JSON by default. JSON output keeps object field
// order and ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  ", w: w}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		es.encodeJSON(node)
		if !es.wire {
			es.write("\n")
		}
		return es.err
	case format.YAMLFormat:
		d, err := yaml.Marshal(toYAML(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) newline() {
	if es.wire || es.indent == "" {
		return
	}
	es.write("\n" + strings.Repeat(es.indent, es.depth))
}

func (es *EncState) sep(t ir.Type, s string) {
	es.write(es.Color.Color(t, SepColor, s))
}

func (es *EncState) encodeJSON(node *ir.Node) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			es.sep(ir.ObjectType, "{}")
			return
		}
		es.sep(ir.ObjectType, "{")
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				es.sep(ir.ObjectType, ",")
			}
			es.newline()
			attr := FieldColor
			if strings.HasPrefix(f.String, "$") {
				attr = ReservedFieldColor
			}
			es.write(es.Color.Color(ir.ObjectType, attr, Quote(f.String)))
			if es.wire || es.indent == "" {
				es.sep(ir.ObjectType, ":")
			} else {
				es.sep(ir.ObjectType, ": ")
			}
			es.encodeJSON(node.Values[i])
		}
		es.depth--
		es.newline()
		es.sep(ir.ObjectType, "}")
	case ir.ArrayType:
		if len(node.Values) == 0 {
			es.sep(ir.ArrayType, "[]")
			return
		}
		es.sep(ir.ArrayType, "[")
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				es.sep(ir.ArrayType, ",")
			}
			es.newline()
			es.encodeJSON(v)
		}
		es.depth--
		es.newline()
		es.sep(ir.ArrayType, "]")
	case ir.StringType:
		attr := ValueColor
		if isAlias(node.String) {
			attr = AliasColor
		}
		es.write(es.Color.Color(ir.StringType, attr, Quote(node.String)))
	case ir.NumberType:
		es.write(es.Color.Color(ir.NumberType, ValueColor, jsonNumber(node)))
	case ir.BoolType:
		es.write(es.Color.Color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		es.write(es.Color.Color(ir.NullType, ValueColor, "null"))
	default:
		if es.err == nil {
			es.err = fmt.Errorf("cannot encode node of type %s", node.Type)
		}
	}
}

func isAlias(s string) bool {
	return len(s) > 1 && s[0] == '{' && s[len(s)-1] == '}'
}

func jsonNumber(node *ir.Node) string {
	if node.Float64 != nil && (math.IsNaN(*node.Float64) || math.IsInf(*node.Float64, 0)) {
		return "null"
	}
	return node.NumberString()
}

// Quote returns s as a JSON string literal without HTML escaping.
func Quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Float64 != nil:
			return *node.Float64
		default:
			return node.Number
		}
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	default:
		return nil
	}
}
