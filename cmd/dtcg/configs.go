package main

import (
	"fmt"
	"io"
	"os"

	"github.com/oscarotero/designtokens/encode"
	"github.com/oscarotero/designtokens/format"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	SD      bool `cli:"name=sd desc='input is in style-dictionary form'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	case file != "-":
		return format.FromPath(file)
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// colorSet reports whether -color was given, either way.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// painter colors report lines.
type painter struct {
	on bool
}

func (cfg *MainConfig) painter(w io.Writer) painter {
	return painter{on: cfg.useColor(w)}
}

func (p painter) paint(s string, attrs ...color.Attribute) string {
	if !p.on {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

type GetConfig struct {
	*MainConfig
	Resolved bool `cli:"name=r desc='print the resolved value only'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list tokens matching an expression'"`

	List *cli.Command
}

type ResolveConfig struct {
	*MainConfig

	Resolve *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	To string `cli:"name=to desc='target form: dtcg or sd'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse  bool `cli:"name=r desc='reverse the diff'"`
	Resolved bool `cli:"name=resolved desc='compare resolved values and types'"`
	Doc      bool `cli:"name=doc desc='output the diff as a document'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}
