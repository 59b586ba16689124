package diff

import (
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
)

// Diff pretty-prints want and got (exported fields only, no color) and
// returns a line diff from got to want, or "" when they render the same.
func Diff[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)

	d := diff.Diff(printer.Sprint(got), printer.Sprint(want))
	if d == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\ngot ⏩️ want (➕ missing, ➖ unexpected):\n\n")
	sb.WriteString(strings.ReplaceAll(strings.ReplaceAll(d, "\n-", "\n➖"), "\n+", "\n➕"))
	return sb.String()
}
