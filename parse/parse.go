package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"

	"github.com/goccy/go-yaml"
)

// Parse decodes a single JSON (default) or YAML document. Object fields keep
// their document order; a repeated key keeps its first position and its last
// value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d)
	case format.JSONFormat:
		return parseJSON(d, pOpts.positions)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

type jsonParser struct {
	src       []byte
	dec       *json.Decoder
	positions map[*ir.Node]Pos
}

func parseJSON(d []byte, positions map[*ir.Node]Pos) (*ir.Node, error) {
	p := &jsonParser{
		src:       d,
		dec:       json.NewDecoder(bytes.NewReader(d)),
		positions: positions,
	}
	p.dec.UseNumber()
	node, err := p.value()
	if err != nil {
		return nil, p.wrap(err)
	}
	if _, err := p.dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return nil, p.wrap(err)
	}
	return node, nil
}

// start returns the offset of the next token, skipping the separators the
// decoder has not consumed yet.
func (p *jsonParser) start() int {
	off := int(p.dec.InputOffset())
	for off < len(p.src) {
		switch p.src[off] {
		case ' ', '\t', '\r', '\n', ':', ',':
			off++
			continue
		}
		return off
	}
	return off
}

func (p *jsonParser) record(node *ir.Node, start int) {
	if p.positions == nil {
		return
	}
	p.positions[node] = Pos{Start: start, End: int(p.dec.InputOffset())}
}

func (p *jsonParser) value() (*ir.Node, error) {
	start := p.start()
	tok, err := p.dec.Token()
	if err != nil {
		return nil, err
	}
	var node *ir.Node
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			node, err = p.object()
		case '[':
			node, err = p.array()
		default:
			return nil, fmt.Errorf("unexpected %q", rune(t))
		}
		if err != nil {
			return nil, err
		}
	case string:
		node = ir.FromString(t)
	case json.Number:
		node = ir.FromNumber(string(t))
	case bool:
		node = ir.FromBool(t)
	case nil:
		node = ir.Null()
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
	p.record(node, start)
	return node, nil
}

func (p *jsonParser) object() (*ir.Node, error) {
	res := ir.Object()
	for p.dec.More() {
		start := p.start()
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		keyEnd := int(p.dec.InputOffset())
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
		if p.positions != nil {
			field := res.Fields[val.ParentIndex]
			p.positions[field] = Pos{Start: start, End: keyEnd}
		}
	}
	// closing brace
	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *jsonParser) array() (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for p.dec.More() {
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Append(val)
	}
	if _, err := p.dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *jsonParser) wrap(err error) error {
	off := int(p.dec.InputOffset())
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		off = int(synErr.Offset)
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
		off = len(p.src)
	}
	line, col := LineCol(p.src, off)
	return fmt.Errorf("%w: line=%d, col=%d: %w", ErrParse, line, col, err)
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		res := ir.FromSlice(nil)
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(val)
		}
		return res, nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339)), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return node, nil
	}
}
