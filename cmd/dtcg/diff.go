package main

import (
	"fmt"
	"io"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.loadGroup(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.loadGroup(cc, args[1])
	if err != nil {
		return err
	}
	changes, err := libdiff.Diff(a, b, libdiff.DiffResolved(cfg.Resolved))
	if err != nil {
		return fmt.Errorf("error comparing %s and %s: %w", args[0], args[1], err)
	}
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if cfg.Doc {
		err = encode.Encode(libdiff.ToNode(changes), cc.Out, cfg.encOpts(cc.Out)...)
	} else {
		err = writeChanges(cfg.painter(cc.Out), cc.Out, changes)
	}
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(p painter, w io.Writer, changes []libdiff.Change) error {
	for i := range changes {
		c := &changes[i]
		attr := color.FgYellow
		switch c.Op {
		case libdiff.Insert:
			attr = color.FgGreen
		case libdiff.Delete:
			attr = color.FgRed
		}
		for j, line := range c.Lines() {
			if j == 0 {
				line = p.paint(line, attr)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
