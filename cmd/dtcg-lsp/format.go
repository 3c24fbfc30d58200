package main

import (
	"bytes"
	"context"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/parse"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc.content), nil
}

// formatEdits re-encodes src as indented JSON and returns one edit
// replacing the whole document. Unparseable or already formatted input
// gets no edits.
func formatEdits(src []byte) []protocol.TextEdit {
	node, err := parse.Parse(src)
	if err != nil {
		return nil
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf); err != nil {
		return nil
	}
	if bytes.Equal(buf.Bytes(), src) {
		return []protocol.TextEdit{}
	}
	lines := bytes.Count(src, []byte("\n"))
	if len(src) > 0 && src[len(src)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(lines), Character: 0},
		},
		NewText: buf.String(),
	}}
}
