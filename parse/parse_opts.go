package parse

import (
	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"
)

type parseOpts struct {
	format    format.Format
	positions map[*ir.Node]Pos
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records the source span of every value and object key
// node into m. Positions are only tracked for JSON input.
func ParsePositions(m map[*ir.Node]Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
