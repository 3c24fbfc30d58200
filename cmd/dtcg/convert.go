package main

import (
	"fmt"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/adapter"
	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.To != "dtcg" && cfg.To != "sd" {
		return fmt.Errorf("%w: -to must be dtcg or sd, got %q", cli.ErrUsage, cfg.To)
	}
	for _, file := range files(args) {
		doc, err := cfg.loadDoc(cc, file)
		if err != nil {
			return err
		}
		res, err := convertDoc(cfg.To, cfg.SD, doc)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// convertDoc converts doc to the form named by to. The result is checked
// to build as a token tree.
func convertDoc(to string, sd bool, doc *ir.Node) (*ir.Node, error) {
	isSD := sd || adapter.IsStyleDictionary(doc)
	dtcg := doc
	if isSD {
		dtcg = adapter.FromStyleDictionary(doc)
	}
	g, err := designtokens.FromDocument(dtcg)
	if err != nil {
		return nil, err
	}
	if to == "sd" {
		return adapter.ToStyleDictionary(g.ToJSON()), nil
	}
	return g.ToJSON(), nil
}
