// Package dirbuild builds the token files of a directory described by its
// build.json or build.yaml.
//
// A build file holds a single "build" object:
//
//	build:
//	  destDir: dist
//	  sources:
//	  - dir: tokens
//	  - glob: "brands/*.json"
//	    sd: true
//	  patches:
//	  - file: patches/dark.json
//	  outputs:
//	  - file: tokens.json
//	  - file: colors.yaml
//	    resolved: true
//	    where: 'type == "color"'
//
// Sources are merged in order, later tokens replacing earlier ones. The
// merged tree is patched, then written once per output.
package dirbuild

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"

	"github.com/goccy/go-yaml"
)

type Dir struct {
	Root    string      `yaml:"-"`
	DestDir string      `yaml:"destDir,omitempty"`
	Sources []DirSource `yaml:"sources"`
	Patches []DirPatch  `yaml:"patches,omitempty"`
	Outputs []DirOutput `yaml:"outputs"`
}

// OpenDir reads the build file of the directory at path.
func OpenDir(path string) (*Dir, error) {
	var (
		d      []byte
		bfPath string
		found  bool
	)
	for _, name := range []string{"build.json", "build.yaml", "build.yml"} {
		candidatePath := filepath.Join(path, name)
		var err error
		d, err = os.ReadFile(candidatePath)
		if err == nil {
			bfPath = candidatePath
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidatePath, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find build.{json,yaml} in %q", path)
	}
	node, err := parse.Parse(d, parse.ParseFormat(format.FromPath(bfPath)))
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", bfPath, err)
	}
	dir, err := newDir(node, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", bfPath, err)
	}
	return dir, nil
}

func newDir(node *ir.Node, path string) (*Dir, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("build file should be an object, got %s", node.Type)
	}
	yDir := ir.Get(node, "build")
	if yDir == nil || yDir.Type != ir.ObjectType {
		return nil, fmt.Errorf("missing build object")
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(yDir, buf); err != nil {
		return nil, fmt.Errorf("error encoding build for decode: %w", err)
	}
	dir := &Dir{}
	if err := yaml.Unmarshal(buf.Bytes(), dir); err != nil {
		return nil, fmt.Errorf("error decoding build: %w", err)
	}
	dir.Root = path
	if err := dir.check(); err != nil {
		return nil, err
	}
	if debug.Dir() {
		debug.Logf("opened build dir %s: %d sources, %d patches, %d outputs\n",
			path, len(dir.Sources), len(dir.Patches), len(dir.Outputs))
	}
	return dir, nil
}

func (d *Dir) check() error {
	if len(d.Sources) == 0 {
		return fmt.Errorf("no sources")
	}
	for i := range d.Sources {
		s := &d.Sources[i]
		if (s.Dir == "") == (s.Glob == "") {
			return fmt.Errorf("source %d: exactly one of dir and glob is needed", i)
		}
	}
	for i := range d.Patches {
		if d.Patches[i].File == "" {
			return fmt.Errorf("patch %d: missing file", i)
		}
	}
	for i := range d.Outputs {
		o := &d.Outputs[i]
		if o.File == "" {
			return fmt.Errorf("output %d: missing file", i)
		}
		switch o.Form {
		case "", "dtcg", "sd":
		default:
			return fmt.Errorf("output %d: unknown form %q (want dtcg or sd)", i, o.Form)
		}
		if o.Format != "" {
			if _, err := format.ParseFormat(o.Format); err != nil {
				return fmt.Errorf("output %d: %w", i, err)
			}
		}
	}
	return nil
}

// path resolves p against the build directory.
func (d *Dir) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Root, p)
}
