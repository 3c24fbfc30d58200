package main

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"

	"go.lsp.dev/protocol"
)

var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenVariable,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

func semanticTokensLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{
		TokenTypes:     tokenTypes,
		TokenModifiers: tokenModifiers,
	}
}

type semanticToken struct {
	line, char, length uint32
	typ                protocol.SemanticTokenTypes
	definition         bool
}

// colorAttr classifies node the same way the colored encoder does.
func colorAttr(node *ir.Node) encode.ColorAttr {
	if p := node.Parent; p != nil && p.Type == ir.ObjectType && p.Fields[node.ParentIndex] == node {
		if strings.HasPrefix(node.String, "$") {
			return encode.ReservedFieldColor
		}
		return encode.FieldColor
	}
	if node.Type == ir.StringType {
		if _, ok := aliasAt(node); ok {
			return encode.AliasColor
		}
	}
	return encode.ValueColor
}

func semanticType(node *ir.Node, attr encode.ColorAttr) (protocol.SemanticTokenTypes, bool) {
	switch attr {
	case encode.ReservedFieldColor:
		return protocol.SemanticTokenKeyword, true
	case encode.FieldColor:
		return protocol.SemanticTokenProperty, true
	case encode.AliasColor:
		return protocol.SemanticTokenVariable, true
	}
	switch node.Type {
	case ir.StringType:
		return protocol.SemanticTokenString, true
	case ir.NumberType:
		return protocol.SemanticTokenNumber, true
	case ir.BoolType, ir.NullType:
		return protocol.SemanticTokenKeyword, true
	}
	return "", false
}

func (doc *document) semanticTokens() []semanticToken {
	var res []semanticToken
	for node, pos := range doc.positions {
		attr := colorAttr(node)
		typ, ok := semanticType(node, attr)
		if !ok {
			continue
		}
		line, char := doc.lineCol(pos.Start)
		endLine, _ := doc.lineCol(pos.End)
		if endLine != line {
			continue
		}
		tok := semanticToken{
			line:   line,
			char:   char,
			length: uint32(utf8.RuneCount(doc.content[pos.Start:pos.End])),
			typ:    typ,
		}
		if attr == encode.FieldColor && doc.group != nil {
			tok.definition = doc.group.Get(docPath(node)) != nil
		}
		res = append(res, tok)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].line != res[j].line {
			return res[i].line < res[j].line
		}
		return res[i].char < res[j].char
	})
	return res
}

func (doc *document) lineCol(off int) (uint32, uint32) {
	p := doc.position(off)
	return p.Line, p.Character
}

// encodeSemanticTokens produces the relative encoding of toks, keeping
// those whose line is in [from, to].
func encodeSemanticTokens(toks []semanticToken, from, to uint32) []uint32 {
	typeIndex := map[protocol.SemanticTokenTypes]uint32{}
	for i, t := range tokenTypes {
		typeIndex[t] = uint32(i)
	}
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		if t.line < from || t.line > to {
			continue
		}
		deltaLine := t.line - prevLine
		deltaChar := t.char
		if deltaLine == 0 {
			deltaChar = t.char - prevChar
		}
		var mods uint32
		if t.definition {
			mods = 1
		}
		data = append(data, deltaLine, deltaChar, t.length, typeIndex[t.typ], mods)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(doc.semanticTokens(), 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(doc.semanticTokens(), params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
