package dirbuild

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oscarotero/designtokens/adapter"
	"github.com/oscarotero/designtokens/debug"
	"github.com/oscarotero/designtokens/format"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"
)

// DirSource names token files: every .json/.yaml/.yml file under Dir, or
// the files matching Glob. SD forces style-dictionary conversion; when
// unset the form is detected per file.
type DirSource struct {
	Dir  string `yaml:"dir,omitempty"`
	Glob string `yaml:"glob,omitempty"`
	SD   *bool  `yaml:"sd,omitempty"`
}

func (s *DirSource) String() string {
	if s.Dir != "" {
		return "dir " + s.Dir
	}
	return "glob " + s.Glob
}

type sourceDoc struct {
	path string
	doc  *ir.Node
}

func (d *Dir) fetch() ([]sourceDoc, error) {
	var res []sourceDoc
	for i := range d.Sources {
		s := &d.Sources[i]
		paths, err := s.paths(d)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", s, err)
		}
		for _, p := range paths {
			doc, err := s.read(p)
			if err != nil {
				return nil, err
			}
			res = append(res, sourceDoc{path: p, doc: doc})
		}
	}
	return res, nil
}

// paths lists the files of s in lexical order.
func (s *DirSource) paths(d *Dir) ([]string, error) {
	if s.Glob != "" {
		paths, err := filepath.Glob(d.path(s.Glob))
		if err != nil {
			return nil, err
		}
		sort.Strings(paths)
		return paths, nil
	}
	var paths []string
	err := filepath.WalkDir(d.path(s.Dir), func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != d.path(s.Dir) && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(path) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *DirSource) read(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, parse.ParseFormat(format.FromPath(path)))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	sd := adapter.IsStyleDictionary(doc)
	if s.SD != nil {
		sd = *s.SD
	}
	if sd {
		doc = adapter.FromStyleDictionary(doc)
	}
	if debug.Dir() {
		debug.Logf("read source %s (style-dictionary: %t)\n", path, sd)
	}
	return doc, nil
}
