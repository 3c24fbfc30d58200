package main

import (
	"fmt"

	"github.com/oscarotero/designtokens/encode"

	"github.com/scott-cotton/cli"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range files(args) {
		g, err := cfg.loadGroup(cc, file)
		if err != nil {
			return err
		}
		doc, err := g.ResolvedJSON()
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", file, err)
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
