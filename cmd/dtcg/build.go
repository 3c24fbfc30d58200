package main

import (
	"fmt"

	"github.com/oscarotero/designtokens/dirbuild"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path := "."
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		cfg.Build.Usage(cc, fmt.Errorf("%w: at most one directory", cli.ErrUsage))
		return cli.ExitCodeErr(1)
	}
	dir, err := dirbuild.OpenDir(path)
	if err != nil {
		return err
	}
	written, err := dir.Build()
	if err != nil {
		return fmt.Errorf("error building %s: %w", path, err)
	}
	for _, p := range written {
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
