package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns to with the differences from from marked inline:
// deleted text as [-text-] and inserted text as {+text+}.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String()
}
