package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/adapter"
	"github.com/oscarotero/designtokens/ir"
	"github.com/oscarotero/designtokens/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) loadDoc(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, parse.ParseFormat(cfg.inFormat(path)))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}

func (cfg *MainConfig) loadGroup(cc *cli.Context, path string) (*designtokens.Group, error) {
	doc, err := cfg.loadDoc(cc, path)
	if err != nil {
		return nil, err
	}
	if cfg.SD {
		doc = adapter.FromStyleDictionary(doc)
	}
	g, err := designtokens.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("error building %s: %w", path, err)
	}
	return g, nil
}

// files returns args, or stdin when there are none.
func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
