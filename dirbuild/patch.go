package dirbuild

import (
	"fmt"
	"os"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/debug"
)

// DirPatch is a JSON patch file applied to the merged tree, or an RFC 7386
// merge patch when Merge is set.
type DirPatch struct {
	File  string `yaml:"file"`
	Merge bool   `yaml:"merge,omitempty"`
}

func (p *DirPatch) String() string {
	if p.Merge {
		return "merge patch " + p.File
	}
	return "patch " + p.File
}

func (d *Dir) patch(g *designtokens.Group) (*designtokens.Group, error) {
	for i := range d.Patches {
		p := &d.Patches[i]
		data, err := os.ReadFile(d.path(p.File))
		if err != nil {
			return nil, err
		}
		if p.Merge {
			g, err = designtokens.ApplyMergePatch(g, data)
		} else {
			g, err = designtokens.ApplyPatch(g, data)
		}
		if err != nil {
			return nil, fmt.Errorf("error applying %s: %w", p, err)
		}
		if debug.Dir() {
			debug.Logf("applied %s\n", p)
		}
	}
	return g, nil
}
