package main

import (
	"context"
	"strings"

	"github.com/oscarotero/designtokens"

	"go.lsp.dev/protocol"
)

var reservedKeys = []string{"$value", "$type", "$description", "$extensions"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := doc.offset(params.Position)
	lineStart := strings.LastIndexByte(string(doc.content[:off]), '\n') + 1
	items := completions(doc.tokens(), string(doc.content[lineStart:off]))
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// completions proposes items for the text of the current line up to the
// cursor.
func completions(g *designtokens.Group, line string) []protocol.CompletionItem {
	res := []protocol.CompletionItem{}
	if prefix, ok := openAlias(line); ok {
		if g == nil {
			return res
		}
		for _, tok := range g.All() {
			p := tok.Path()
			if !strings.HasPrefix(p, prefix) {
				continue
			}
			item := protocol.CompletionItem{
				Label:      p,
				Kind:       protocol.CompletionItemKindVariable,
				InsertText: strings.TrimPrefix(p, prefix),
			}
			if typ, err := tok.ResolvedType(); err == nil {
				item.Detail = string(typ)
			}
			if tok.Description != "" {
				item.Documentation = tok.Description
			}
			res = append(res, item)
		}
		return res
	}
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, `"$type"`):
		for _, typ := range designtokens.Types() {
			res = append(res, protocol.CompletionItem{
				Label: string(typ),
				Kind:  protocol.CompletionItemKindEnumMember,
			})
		}
	case strings.HasPrefix(trimmed, `"$`) || trimmed == `"`:
		for _, k := range reservedKeys {
			res = append(res, protocol.CompletionItem{
				Label:      k,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: strings.TrimPrefix(k, strings.TrimPrefix(trimmed, `"`)),
			})
		}
	}
	return res
}

// openAlias reports whether line ends inside an unclosed "{..." alias and
// returns the path typed so far.
func openAlias(line string) (string, bool) {
	i := strings.LastIndexByte(line, '{')
	if i == -1 || i == 0 || line[i-1] != '"' {
		return "", false
	}
	rest := line[i+1:]
	if strings.ContainsAny(rest, `}"`) {
		return "", false
	}
	return rest, true
}
