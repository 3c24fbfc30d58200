package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Build   bool
	Resolve bool
	Patch   bool
	LSP     bool
	Dir     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("DTCG_DEBUG_BUILD")
	d.Resolve = boolEnv("DTCG_DEBUG_RESOLVE")
	d.Patch = boolEnv("DTCG_DEBUG_PATCH")
	d.LSP = boolEnv("DTCG_DEBUG_LSP")
	d.Dir = boolEnv("DTCG_DEBUG_DIR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Resolve() bool {
	return d.Resolve
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}
func Dir() bool {
	return d.Dir
}
