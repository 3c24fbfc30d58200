package encode

import "github.com/oscarotero/designtokens/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent sets the JSON indentation unit, "  " by default.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}

// EncodeWire produces compact single line JSON.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
