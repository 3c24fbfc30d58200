package designtokens

import (
	"github.com/oscarotero/designtokens/adapter"
	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"
)

type parseOpts struct {
	parse           []parse.ParseOption
	styleDictionary bool
}

type ParseOption func(*parseOpts)

// ParseFormat selects the document format, JSON by default.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.parse = append(o.parse, parse.ParseFormat(f)) }
}

// ParseStyleDictionary converts the document from style-dictionary form
// before building.
func ParseStyleDictionary(v bool) ParseOption {
	return func(o *parseOpts) { o.styleDictionary = v }
}

// ParsePositions records JSON source spans of the parsed document nodes
// into m. Positions are not recorded for style-dictionary input.
func ParsePositions(m map[*ir.Node]parse.Pos) ParseOption {
	return func(o *parseOpts) { o.parse = append(o.parse, parse.ParsePositions(m)) }
}

// Parse reads a token document and builds its unnamed root group.
func Parse(d []byte, opts ...ParseOption) (*Group, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	doc, err := parse.Parse(d, pOpts.parse...)
	if err != nil {
		return nil, err
	}
	if pOpts.styleDictionary {
		doc = adapter.FromStyleDictionary(doc)
	}
	return FromDocument(doc)
}

// FromDocument builds the unnamed root group of a parsed document.
func FromDocument(doc *ir.Node) (*Group, error) {
	return Build("", doc)
}

// FromAny builds the unnamed root group of a document held in Go maps and
// slices. Go maps have no order, so keys are sorted.
func FromAny(v any) (*Group, error) {
	doc, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}
