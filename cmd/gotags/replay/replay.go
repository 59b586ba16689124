package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/gotags/pkg/logging"
	"github.com/walteh/gotags/pkg/script"
	"gitlab.com/tozd/go/errors"
)

var ErrScriptsFailed = errors.Base("scripts failed")

type Handler struct {
	debug   bool
	json    bool
	noColor bool

	fs afero.Fs
}

func NewReplayCommand() *cobra.Command {
	me := &Handler{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "replay <glob>...",
		Short: "replay YAML or HCL editing scripts and check their expectations",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&me.json, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&me.noColor, "no-color", false, "disable colored output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithContext(cmd.Context(), cmd.ErrOrStderr(), logging.Options{
			Debug:   me.debug,
			NoColor: me.noColor,
		})
		return me.Run(ctx, cmd.OutOrStdout(), args)
	}

	return cmd
}

// outcome is one script's entry in the JSON report.
type outcome struct {
	Path   string         `json:"path"`
	OK     bool           `json:"ok"`
	Error  string         `json:"error,omitempty"`
	Result *script.Result `json:"result,omitempty"`
}

func (me *Handler) Run(ctx context.Context, out io.Writer, patterns []string) error {
	paths, err := script.Discover(me.fs, patterns...)
	if err != nil {
		return errors.Errorf("discovering scripts: %w", err)
	}
	if len(paths) == 0 {
		return errors.Errorf("no scripts match %v", patterns)
	}

	zerolog.Ctx(ctx).Debug().Strs("paths", paths).Msg("replaying scripts")

	outcomes := make([]outcome, 0, len(paths))
	failed := 0
	for _, p := range paths {
		o := me.replay(ctx, p)
		if !o.OK {
			failed++
		}
		outcomes = append(outcomes, o)
	}

	if me.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcomes); err != nil {
			return errors.Errorf("encoding results: %w", err)
		}
	} else {
		me.print(out, outcomes)
	}

	if failed > 0 {
		return errors.Errorf("%w: %d of %d", ErrScriptsFailed, failed, len(paths))
	}
	return nil
}

func (me *Handler) replay(ctx context.Context, path string) outcome {
	o := outcome{Path: path}

	s, err := script.Load(me.fs, path)
	if err != nil {
		o.Error = err.Error()
		return o
	}

	res, err := script.Run(ctx, s)
	o.Result = res
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("script failed")
		o.Error = err.Error()
		return o
	}

	o.OK = true
	return o
}

func (me *Handler) print(out io.Writer, outcomes []outcome) {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	warn := color.New(color.FgYellow)
	if me.noColor {
		pass.DisableColor()
		fail.DisableColor()
		warn.DisableColor()
	}

	for _, o := range outcomes {
		if o.OK {
			fmt.Fprintf(out, "%s %s\n", pass.Sprint("✓"), o.Path)
		} else {
			fmt.Fprintf(out, "%s %s\n    %s\n", fail.Sprint("✗"), o.Path, o.Error)
		}
		if o.Result != nil {
			for _, w := range o.Result.Warnings {
				fmt.Fprintf(out, "    %s\n", warn.Sprint("warning: "+w))
			}
		}
	}
}
