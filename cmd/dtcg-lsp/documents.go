package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content []byte
	version int32

	root      *ir.Node
	positions map[*ir.Node]parse.Pos
	group     *designtokens.Group
	err       error

	// last good build, for completion while the text does not parse
	prev *designtokens.Group
}

func (doc *document) tokens() *designtokens.Group {
	if doc.group != nil {
		return doc.group
	}
	return doc.prev
}

func (s *documentStore) get(uri string) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func (s *documentStore) put(doc *document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.uri] = doc
}

func (s *documentStore) remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// newDocument parses and builds content. Parse and build failures are kept
// on the document so they can be reported as diagnostics.
func newDocument(uri string, version int32, content []byte) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: map[*ir.Node]parse.Pos{},
	}
	doc.root, doc.err = parse.Parse(content, parse.ParsePositions(doc.positions))
	if doc.err != nil {
		return doc
	}
	doc.group, doc.err = designtokens.FromDocument(doc.root)
	return doc
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	if debug.LSP() {
		debug.Logf("didOpen %s version=%d\n", uri, params.TextDocument.Version)
	}
	doc := newDocument(uri, params.TextDocument.Version, []byte(params.TextDocument.Text))
	s.docs.put(doc)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := string(params.TextDocument.URI)
	// full sync: the last change holds the whole text
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc := newDocument(uri, params.TextDocument.Version, []byte(text))
	if old := s.docs.get(uri); old != nil && doc.group == nil {
		doc.prev = old.tokens()
	}
	s.docs.put(doc)
	return s.publishDiagnostics(ctx, doc)
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: doc.diagnostics(),
	})
}

func (doc *document) diagnostics() []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err != nil {
		line, col := extractPosition(doc.err.Error())
		pos := protocol.Position{Line: uint32(line), Character: uint32(col)}
		res = append(res, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: protocol.DiagnosticSeverityError,
			Source:   lsName,
			Message:  doc.err.Error(),
		})
		return res
	}
	for _, p := range designtokens.Check(doc.group) {
		res = append(res, protocol.Diagnostic{
			Range:    doc.keyRange(p.Path),
			Severity: protocol.DiagnosticSeverityWarning,
			Source:   lsName,
			Message:  p.Kind.String() + ": " + p.Detail,
		})
	}
	return res
}

// extractPosition reads "line=N, col=M" from a parse error, 0:0 when the
// error carries no position.
func extractPosition(msg string) (line, col int) {
	i := strings.Index(msg, "line=")
	if i == -1 {
		return 0, 0
	}
	if _, err := fmt.Sscanf(msg[i:], "line=%d, col=%d", &line, &col); err != nil {
		return 0, 0
	}
	return line, col
}

// keyNode finds the object key naming the node at the dotted path.
func (doc *document) keyNode(path string) *ir.Node {
	if doc.root == nil {
		return nil
	}
	node := doc.root
	var key *ir.Node
	for _, name := range strings.Split(path, ".") {
		child := ir.Get(node, name)
		if child == nil {
			return nil
		}
		key = node.Fields[child.ParentIndex]
		node = child
	}
	return key
}

func (doc *document) keyRange(path string) protocol.Range {
	key := doc.keyNode(path)
	if key == nil {
		return protocol.Range{}
	}
	return doc.rangeOf(key)
}

func (doc *document) rangeOf(node *ir.Node) protocol.Range {
	pos, ok := doc.positions[node]
	if !ok {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: doc.position(pos.Start),
		End:   doc.position(pos.End),
	}
}

func (doc *document) position(off int) protocol.Position {
	line, col := parse.LineCol(doc.content, off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func (doc *document) offset(pos protocol.Position) int {
	return parse.Offset(doc.content, int(pos.Line), int(pos.Character))
}

// nodeAt returns the innermost parsed node whose span holds off.
func (doc *document) nodeAt(off int) *ir.Node {
	var (
		best     *ir.Node
		bestSize = -1
	)
	for node, pos := range doc.positions {
		if off < pos.Start || off >= pos.End {
			continue
		}
		size := pos.End - pos.Start
		if bestSize == -1 || size < bestSize {
			best, bestSize = node, size
		}
	}
	return best
}

// docPath is the dotted path of object keys from the document root to
// node. Key nodes name their own field.
func docPath(node *ir.Node) string {
	var parts []string
	for n := node; n != nil && n.Parent != nil; n = n.Parent {
		if n.Parent.Type != ir.ObjectType {
			continue
		}
		parts = append(parts, n.ParentField)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// tokenAt returns the token whose definition holds node: the longest
// prefix of node's path that names a token.
func (doc *document) tokenAt(node *ir.Node) *designtokens.Token {
	if doc.group == nil || node == nil {
		return nil
	}
	parts := strings.Split(docPath(node), ".")
	for i := len(parts); i > 0; i-- {
		if tok := doc.group.Get(strings.Join(parts[:i], ".")); tok != nil {
			return tok
		}
	}
	return nil
}

// aliasAt returns the alias path when node is an alias string.
func aliasAt(node *ir.Node) (string, bool) {
	if node == nil || node.Type != ir.StringType || node.Parent == nil {
		return "", false
	}
	// key nodes are strings too
	if node.Parent.Type == ir.ObjectType && node.Parent.Fields[node.ParentIndex] == node {
		return "", false
	}
	s := node.String
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return "", false
	}
	return s[1 : len(s)-1], true
}
