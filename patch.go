package designtokens

import (
	"fmt"

	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to the document of g and
// builds the result under the same name. g is not modified.
func ApplyPatch(g *Group, patch []byte) (*Group, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	return patchWith(g, func(doc []byte) ([]byte, error) {
		return p.Apply(doc)
	})
}

// ApplyMergePatch applies an RFC 7386 merge patch to the document of g and
// builds the result under the same name. g is not modified.
func ApplyMergePatch(g *Group, patch []byte) (*Group, error) {
	return patchWith(g, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func patchWith(g *Group, apply func([]byte) ([]byte, error)) (*Group, error) {
	doc, err := marshal(g.ToJSON())
	if err != nil {
		return nil, err
	}
	out, err := apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch %q:\n  before %s\n  after  %s\n", g.Path(), doc, out)
	}
	node, err := parse.Parse(out)
	if err != nil {
		return nil, err
	}
	return Build(g.Name(), node)
}
