package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/gotags/pkg/diff"
)

type pair struct {
	Text  string
	Start int
	note  string
}

func TestDiff(t *testing.T) {
	assert.Empty(t, diff.Diff([]string{"a", "b"}, []string{"a", "b"}))
	assert.Empty(t, diff.Diff(pair{Text: "x", note: "one"}, pair{Text: "x", note: "two"}), "unexported fields are ignored")

	d := diff.Diff(pair{Text: "world", Start: 6}, pair{Text: "world", Start: 1})
	assert.Contains(t, d, "got ⏩️ want")
	assert.Contains(t, d, "6")
}
