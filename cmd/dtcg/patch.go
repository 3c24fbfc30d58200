package main

import (
	"fmt"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one token file", cli.ErrUsage)
	}
	p, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range files(args[1:]) {
		g, err := cfg.loadGroup(cc, file)
		if err != nil {
			return err
		}
		var res *designtokens.Group
		if cfg.Merge {
			res, err = designtokens.ApplyMergePatch(g, p)
		} else {
			res, err = designtokens.ApplyPatch(g, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res.ToJSON(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
