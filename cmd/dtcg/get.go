package main

import (
	"fmt"
	"io"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a token path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	for _, file := range files(args[1:]) {
		g, err := cfg.loadGroup(cc, file)
		if err != nil {
			return err
		}
		if err := getPath(cfg, cc.Out, g, path); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getPath(cfg *GetConfig, w io.Writer, g *designtokens.Group, path string) error {
	var res *ir.Node
	var n designtokens.Node
	if tok := g.Get(path); tok != nil {
		n = tok
	} else if sub := g.GetGroup(path); sub != nil && path != "" {
		n = sub
	}
	switch n := n.(type) {
	case *designtokens.Token:
		if !cfg.Resolved {
			res = n.ToJSON()
			break
		}
		v, err := n.ResolvedValue()
		if err != nil {
			return err
		}
		res = v
	case *designtokens.Group:
		if cfg.Resolved {
			return fmt.Errorf("%s is a group", path)
		}
		res = n.ToJSON()
	default:
		return fmt.Errorf("%s not found", path)
	}
	return encode.Encode(res, w, cfg.encOpts(w)...)
}
