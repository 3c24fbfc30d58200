package main

import (
	"fmt"
	"io"

	"github.com/oscarotero/designtokens"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := false
	p := cfg.painter(cc.Out)
	for _, file := range files(args) {
		g, err := cfg.loadGroup(cc, file)
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %s\n", file, p.paint(err.Error(), color.FgRed))
			bad = true
			continue
		}
		n, err := writeProblems(p, cc.Out, file, designtokens.Check(g))
		if err != nil {
			return err
		}
		bad = bad || n > 0
	}
	if bad {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeProblems(p painter, w io.Writer, file string, problems []designtokens.Problem) (int, error) {
	for _, pr := range problems {
		_, err := fmt.Fprintf(w, "%s: %s: %s: %s\n", file,
			p.paint(pr.Path, color.Bold),
			p.paint(pr.Kind.String(), color.FgRed),
			pr.Detail)
		if err != nil {
			return 0, err
		}
	}
	return len(problems), nil
}
