package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gotags/pkg/logging"
)

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPkg  string
		wantFunc string
	}{
		{name: "method", input: "github.com/walteh/gotags/pkg/tagging.(*Engine).Commit", wantPkg: "github.com/walteh/gotags/pkg/tagging", wantFunc: "(*Engine).Commit"},
		{name: "function", input: "github.com/walteh/gotags/pkg/script.Run", wantPkg: "github.com/walteh/gotags/pkg/script", wantFunc: "Run"},
		{name: "closure", input: "main.run.func1", wantPkg: "main", wantFunc: "run.func1"},
		{name: "no dot", input: "weird", wantPkg: "weird", wantFunc: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, fn := logging.SplitFuncName(tt.input)
			assert.Equal(t, tt.wantPkg, pkg)
			assert.Equal(t, tt.wantFunc, fn)
		})
	}
}

func TestFormatCaller(t *testing.T) {
	got := logging.FormatCaller("github.com/walteh/gotags/pkg/script", "/src/pkg/script/run.go", 42, false)
	assert.Equal(t, "github.com/walteh/gotags/pkg/script:run.go:42", got)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{JSON: true})

	logger.Debug().Msg("hidden")
	logger.Info().Str("engine", "abc").Msg("committed tag")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "committed tag", line["message"])
	assert.Equal(t, "abc", line["engine"])
	assert.Equal(t, "info", line["level"])
	assert.NotEmpty(t, line["time"])
	assert.NotContains(t, line, "caller")
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), &buf, logging.Options{Debug: true, JSON: true})

	zerolog.Ctx(ctx).Debug().Msg("scan")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Contains(t, line["caller"], ".go:")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{NoColor: true})

	logger.Warn().Str("tag", "@bob").Msg("evicted")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "evicted")
	assert.Contains(t, out, "tag=@bob")
}
