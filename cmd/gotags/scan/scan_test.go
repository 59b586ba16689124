package scan_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotags/cmd/gotags/scan"
	"github.com/walteh/gotags/pkg/position"
)

func execute(t *testing.T, args ...string) (scan.Report, error) {
	t.Helper()

	cmd := scan.NewScanCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	var rep scan.Report
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return rep, err
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	return rep, nil
}

func TestScan_Taggable(t *testing.T) {
	rep, err := execute(t, "--text", "Hello @wor", "--candidates", "world,work,alice")
	require.NoError(t, err)

	assert.Equal(t, "taggable", rep.State)
	assert.Equal(t, "@", rep.Symbol)
	assert.Equal(t, "@wor", rep.Raw)
	require.NotNil(t, rep.Candidate)
	assert.Equal(t, "wor", rep.Candidate.Text)
	assert.Equal(t, position.NewSpan(6, 4), rep.Candidate.Span)
	assert.Equal(t, []string{"world", "work"}, rep.Filtered)
	assert.Equal(t, 0, rep.Line)
	assert.Equal(t, 10, rep.Column)
}

func TestScan_ReportsCaretLineAndColumn(t *testing.T) {
	rep, err := execute(t, "--text", "hi\n😀 #op", "--caret", "9")
	require.NoError(t, err)

	assert.Equal(t, "taggable", rep.State)
	assert.Equal(t, 1, rep.Line)
	assert.Equal(t, 6, rep.Column)
}

func TestScan_CaretAndTriggers(t *testing.T) {
	rep, err := execute(t, "--text", "a +b c", "--caret", "4", "--triggers", "+")
	require.NoError(t, err)

	assert.Equal(t, "taggable", rep.State)
	assert.Equal(t, "+", rep.Symbol)
	require.NotNil(t, rep.Candidate)
	assert.Equal(t, "b", rep.Candidate.Text)
	assert.Nil(t, rep.Filtered)
}

func TestScan_NotTaggable(t *testing.T) {
	rep, err := execute(t, "--text", "hi there")
	require.NoError(t, err)

	assert.Equal(t, "not-taggable", rep.State)
	assert.Empty(t, rep.Symbol)
	assert.Nil(t, rep.Candidate)
}

func TestScan_Errors(t *testing.T) {
	_, err := execute(t, "--text", "abc", "--caret", "9")
	require.ErrorIs(t, err, position.ErrOutOfRange)

	_, err = execute(t, "--text", "abc", "--triggers", "ab")
	require.Error(t, err)
}
