package dirbuild

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/adapter"
	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/eval"
	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"
)

// DirOutput is one file written by Build. Format defaults to the format of
// File's extension and Form to "dtcg". Where keeps only the tokens
// matching an eval filter.
type DirOutput struct {
	File     string `yaml:"file"`
	Format   string `yaml:"format,omitempty"`
	Form     string `yaml:"form,omitempty"`
	Resolved bool   `yaml:"resolved,omitempty"`
	Where    string `yaml:"where,omitempty"`
}

// Load merges the sources and applies the patches.
func (d *Dir) Load() (*designtokens.Group, error) {
	docs, err := d.fetch()
	if err != nil {
		return nil, err
	}
	acc := ir.Object()
	for _, sd := range docs {
		if sd.doc.Type != ir.ObjectType {
			return nil, fmt.Errorf("%s: %w", sd.path, designtokens.ErrInvalidDocument)
		}
		merge(acc, sd.doc)
	}
	g, err := designtokens.FromDocument(acc)
	if err != nil {
		return nil, err
	}
	return d.patch(g)
}

// Build loads the tree and writes every output, returning the written
// paths.
func (d *Dir) Build() ([]string, error) {
	g, err := d.Load()
	if err != nil {
		return nil, err
	}
	if err := d.mkDest(); err != nil {
		return nil, err
	}
	res := make([]string, 0, len(d.Outputs))
	for i := range d.Outputs {
		o := &d.Outputs[i]
		node, err := o.render(g)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", o.File, err)
		}
		fp := filepath.Join(d.path(d.DestDir), o.File)
		if err := o.write(fp, node); err != nil {
			return nil, err
		}
		if debug.Dir() {
			debug.Logf("wrote %s\n", fp)
		}
		res = append(res, fp)
	}
	return res, nil
}

func (d *Dir) mkDest() error {
	dest := d.path(d.DestDir)
	st, err := os.Stat(dest)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dest, 0755)
		}
		return err
	}
	if !st.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", dest)
	}
	return nil
}

func (o *DirOutput) render(g *designtokens.Group) (*ir.Node, error) {
	var (
		node *ir.Node
		err  error
	)
	if o.Resolved {
		node, err = g.ResolvedJSON()
		if err != nil {
			return nil, err
		}
	} else {
		node = g.ToJSON()
	}
	if o.Where != "" {
		f, err := eval.Compile(o.Where)
		if err != nil {
			return nil, err
		}
		keep, err := eval.Select(g, f)
		if err != nil {
			return nil, err
		}
		node = prune(node, keep)
	}
	if o.Form == "sd" {
		node = adapter.ToStyleDictionary(node)
	}
	return node, nil
}

// prune removes the tokens not in keep from the exported doc, then the
// groups left without children.
func prune(doc *ir.Node, keep []*designtokens.Token) *ir.Node {
	kept := make(map[string]bool, len(keep))
	for _, t := range keep {
		kept[t.Path()] = true
	}
	var walk func(node *ir.Node, prefix string) bool
	walk = func(node *ir.Node, prefix string) bool {
		children := 0
		for _, key := range node.Keys() {
			if strings.HasPrefix(key, "$") {
				continue
			}
			child := ir.Get(node, key)
			if child.Type != ir.ObjectType {
				continue
			}
			p := key
			if prefix != "" {
				p = prefix + "." + key
			}
			if child.Has("$value") {
				if !kept[p] {
					node.Delete(key)
					continue
				}
			} else if !walk(child, p) {
				node.Delete(key)
				continue
			}
			children++
		}
		return children > 0
	}
	walk(doc, "")
	return doc
}

func (o *DirOutput) write(fp string, node *ir.Node) error {
	f := format.FromPath(o.File)
	if o.Format != "" {
		var err error
		f, err = format.ParseFormat(o.Format)
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	file, err := os.OpenFile(fp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := encode.Encode(node, bw, encode.EncodeFormat(f)); err != nil {
		file.Close()
		return fmt.Errorf("error encoding %s: %w", fp, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
