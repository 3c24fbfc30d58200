package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.group == nil {
		return nil, nil
	}
	node := doc.nodeAt(doc.offset(params.Position))
	if node == nil {
		return nil, nil
	}
	var text string
	if p, ok := aliasAt(node); ok {
		text = aliasHoverText(doc.group, p)
	} else if tok := doc.tokenAt(node); tok != nil {
		text = tokenHoverText(tok)
	}
	if text == "" {
		return nil, nil
	}
	rng := doc.rangeOf(node)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

func aliasHoverText(g *designtokens.Group, path string) string {
	tok := g.Get(path)
	if tok == nil {
		if path != "" && g.GetGroup(path) != nil {
			return fmt.Sprintf("`{%s}` names a group, not a token", path)
		}
		return fmt.Sprintf("`{%s}` does not name a token", path)
	}
	return tokenHoverText(tok)
}

func tokenHoverText(tok *designtokens.Token) string {
	parts := []string{fmt.Sprintf("**%s**", tok.Path())}
	if typ, err := tok.ResolvedType(); err == nil {
		parts = append(parts, fmt.Sprintf("**Type:** `%s`", typ))
	}
	v, err := tok.ResolvedValue()
	if err != nil {
		parts = append(parts, fmt.Sprintf("**Error:** %s", err))
	} else {
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", encode.MustString(v)))
	}
	if tok.IsAlias() {
		parts = append(parts, fmt.Sprintf("**Alias of:** `%s`", encode.MustString(tok.RawValue())))
	}
	if tok.Description != "" {
		parts = append(parts, tok.Description)
	}
	return strings.Join(parts, "\n\n")
}
