package main

import (
	"fmt"
	"io"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/eval"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range files(args) {
		g, err := cfg.loadGroup(cc, file)
		if err != nil {
			return err
		}
		if err := listTokens(cfg.painter(cc.Out), cc.Out, g, filter); err != nil {
			return fmt.Errorf("error listing %s: %w", file, err)
		}
	}
	return nil
}

func listTokens(p painter, w io.Writer, g *designtokens.Group, filter *eval.Filter) error {
	tokens := g.All()
	if filter != nil {
		var err error
		tokens, err = eval.Select(g, filter)
		if err != nil {
			return err
		}
	}
	for _, t := range tokens {
		v, err := t.ResolvedValue()
		if err != nil {
			return err
		}
		typ, err := t.ResolvedType()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n",
			p.paint(t.Path(), color.FgBlue, color.Bold),
			p.paint(string(typ), color.FgMagenta),
			encode.MustString(v))
		if err != nil {
			return err
		}
	}
	return nil
}
