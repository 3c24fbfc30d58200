// Package eval selects tokens with expr-lang expressions.
//
// A filter is a boolean expression over the fields of Env, for example
//
//	type == "color" && hasPrefix(path, "brand.")
//	alias && value > 4
//	ext("org.example.deprecated") == true
package eval

import (
	"fmt"
	"os"

	"github.com/oscarotero/designtokens"
	"github.com/oscarotero/designtokens/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src  string
	prog *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Compile parses and type checks a filter expression.
func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match reports whether t satisfies the filter.
func (f *Filter) Match(t *designtokens.Token) (bool, error) {
	env, err := NewEnv(t)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter at %s: %w", t.Path(), err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, not bool", f.src, out)
	}
	if debug.Resolve() {
		debug.Logf("filter %q on %s: %t\n", f.src, t.Path(), res)
	}
	return res, nil
}

// Select returns the tokens of g matching f, in tree order.
func Select(g *designtokens.Group, f *Filter) ([]*designtokens.Token, error) {
	var res []*designtokens.Token
	for _, t := range g.All() {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, t)
		}
	}
	return res, nil
}
