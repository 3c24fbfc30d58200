package main

import (
	"context"

	"go.lsp.dev/protocol"
)

// Definition jumps from an alias string to the key of the token it names.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.group == nil {
		return nil, nil
	}
	p, ok := aliasAt(doc.nodeAt(doc.offset(params.Position)))
	if !ok {
		return nil, nil
	}
	tok := doc.group.Get(p)
	if tok == nil {
		return nil, nil
	}
	key := doc.keyNode(tok.Path())
	if key == nil {
		return nil, nil
	}
	return []protocol.Location{{
		URI:   params.TextDocument.URI,
		Range: doc.rangeOf(key),
	}}, nil
}
