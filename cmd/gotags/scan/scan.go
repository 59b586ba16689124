package scan

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/gotags/pkg/completion"
	"github.com/walteh/gotags/pkg/logging"
	"github.com/walteh/gotags/pkg/position"
	"github.com/walteh/gotags/pkg/trigger"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	debug      bool
	text       string
	caret      int
	triggers   []string
	candidates []string
}

func NewScanCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "print the tagging context at a caret position as JSON",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&me.text, "text", "", "text to scan")
	cmd.Flags().IntVar(&me.caret, "caret", -1, "caret offset in UTF-16 code units (default: end of text)")
	cmd.Flags().StringSliceVar(&me.triggers, "triggers", trigger.Default().Strings(), "trigger symbols")
	cmd.Flags().StringSliceVar(&me.candidates, "candidates", nil, "candidate list to filter")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithContext(cmd.Context(), cmd.ErrOrStderr(), logging.Options{Debug: me.debug})
		return me.Run(ctx, cmd.OutOrStdout(), cmd.Flags().Changed("candidates"))
	}

	return cmd
}

// Report is what scan prints.
type Report struct {
	State     string                `json:"state"`
	Symbol    string                `json:"symbol,omitempty"`
	Raw       string                `json:"raw,omitempty"`
	Candidate *completion.Candidate `json:"candidate,omitempty"`
	Filtered  []string              `json:"filtered,omitempty"`
	// Line and Column locate the caret, zero-based, column in UTF-16 units.
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (me *Handler) Run(ctx context.Context, out io.Writer, filter bool) error {
	set, err := trigger.New(me.triggers...)
	if err != nil {
		return errors.Errorf("parsing triggers: %w", err)
	}

	caret := me.caret
	if caret < 0 {
		caret = position.UTF16Len(me.text)
	}

	preceding, err := position.Prefix(me.text, caret)
	if err != nil {
		return errors.Errorf("caret %d: %w", caret, err)
	}

	line, col, err := position.LineAndColumn(me.text, caret)
	if err != nil {
		return errors.Errorf("caret %d: %w", caret, err)
	}

	sc := completion.Scan(preceding, caret, set)
	rep := Report{State: sc.State.String(), Raw: sc.Raw, Line: line, Column: col}
	if sc.Symbol != 0 {
		rep.Symbol = string(sc.Symbol)
	}

	rep.Candidate = completion.Extract(sc, set)
	if filter && rep.Candidate != nil {
		rep.Filtered = completion.Filter(me.candidates, rep.Candidate.Text)
	}

	zerolog.Ctx(ctx).Debug().Str("state", rep.State).Int("caret", caret).Msg("scanned")

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.Errorf("encoding report: %w", err)
	}
	return nil
}
