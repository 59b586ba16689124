// Package logging builds the zerolog loggers used by the command line tools.
package logging

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const DefaultTimeFormat = "2006-01-02T15:04:05.0000Z"

type Options struct {
	Debug   bool
	NoColor bool
	// JSON writes raw zerolog JSON instead of console output.
	JSON bool
}

// New returns a logger writing to w. Debug lowers the level from info to
// debug and adds the caller to every line.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(out).Level(level).Hook(TimeHook{})
	if opts.Debug {
		logger = logger.Hook(CallerHook{WithColor: !opts.NoColor && !opts.JSON})
	}
	return logger
}

// WithContext attaches a logger built from opts to ctx.
func WithContext(ctx context.Context, w io.Writer, opts Options) context.Context {
	return New(w, opts).WithContext(ctx)
}

// TimeHook stamps every event with a millisecond time field.
type TimeHook struct {
	Format string
}

func (t TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := t.Format
	if format == "" {
		format = DefaultTimeFormat
	}
	e.Str("time", time.Now().Format(format))
}

type CallerHook struct {
	WithColor bool
}

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(skipFrames(e) + 3)
	if !ok {
		return
	}

	pkg := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		pkg, _ = SplitFuncName(fn.Name())
	}

	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// skipFrames reads the event's unexported skipFrame field so the hook
// reports the same frame zerolog would.
func skipFrames(e *zerolog.Event) int {
	field := reflect.ValueOf(e).Elem().FieldByName("skipFrame")
	if field.IsValid() && field.CanInt() {
		return int(field.Int())
	}
	return 0
}

// SplitFuncName splits a runtime function name such as
// "github.com/walteh/gotags/pkg/tagging.(*Engine).Commit" into its package
// path and the function part.
func SplitFuncName(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}

	dot := strings.IndexByte(name[lastSlash:], '.')
	if dot < 0 {
		return name, ""
	}
	dot += lastSlash

	pkg = name[:dot]
	function = name[dot+1:]

	if before, after, ok := strings.Cut(pkg, ".("); ok {
		pkg = before
		function = "(" + after + "." + function
	}

	return pkg, function
}

func FormatCaller(pkg, path string, line int, colorize bool) string {
	file := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		file = path[i+1:]
	}

	if colorize {
		sep := color.New(color.Faint).Sprint(":")
		return pkg + sep + color.New(color.Bold).Sprint(file) + sep + color.New(color.FgHiRed, color.Bold).Sprintf("%d", line)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, file, line)
}
