package script

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/walteh/gotags/pkg/annotation"
	"github.com/walteh/gotags/pkg/diff"
	"github.com/walteh/gotags/pkg/position"
	"github.com/walteh/gotags/pkg/surface"
	"github.com/walteh/gotags/pkg/tagging"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

var ErrMismatch = errors.Base("expectation not met")

// Result is the state a script left behind.
type Result struct {
	Name     string           `json:"name"`
	Path     string           `json:"path,omitempty"`
	Text     string           `json:"text"`
	Caret    int              `json:"caret"`
	Tags     []annotation.Tag `json:"tags"`
	Filtered []string         `json:"filtered,omitempty"`
	Events   []Event          `json:"events,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

type runner struct {
	script *Script
	buf    *surface.Buffer
	eng    *tagging.Engine
	rec    *recorder
	res    *Result
}

// Run replays s. A non-nil Result comes back whenever the session started;
// the error then wraps ErrMismatch for failed expectations or describes the
// step that could not be applied.
func Run(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, errors.Errorf("validating script %q: %w", s.Name, err)
	}

	r := &runner{
		script: s,
		buf:    surface.NewBuffer(s.Text),
		rec:    &recorder{},
		res:    &Result{Name: s.Name, Path: s.Path},
	}

	if s.Caret != nil {
		if err := r.buf.MoveCaret(ctx, *s.Caret); err != nil {
			return nil, errors.Errorf("placing initial caret: %w", err)
		}
	}

	eng, err := tagging.New(r.buf, tagging.Config{
		Triggers:   s.Triggers,
		Candidates: s.Candidates,
		Observer:   r.rec,
	})
	if err != nil {
		return nil, errors.Errorf("creating engine: %w", err)
	}
	r.eng = eng
	r.buf.Attach(eng)

	log := zerolog.Ctx(ctx).With().Str("script", s.Name).Str("engine", eng.ID()).Logger()
	ctx = log.WithContext(ctx)

	eng.OnSelectionChange(ctx)

	var mismatches *multierror.Error
	for i, st := range s.Steps {
		log.Debug().Int("step", i).Msg("applying step")
		if err := r.apply(ctx, i, st); err != nil {
			return r.finish(), errors.Errorf("step %d: %w", i, err)
		}
		if st.Expect != nil {
			mismatches = multierror.Append(mismatches, r.check(fmt.Sprintf("step %d", i), st.Expect)...)
		}
	}

	if err := eng.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			r.res.Warnings = append(r.res.Warnings, e.Error())
		}
	}

	if s.Expect != nil {
		mismatches = multierror.Append(mismatches, r.check("final", s.Expect)...)
	}

	res := r.finish()
	if err := mismatches.ErrorOrNil(); err != nil {
		return res, errors.Errorf("script %q: %w", s.Name, err)
	}
	return res, nil
}

func (r *runner) finish() *Result {
	r.res.Text = r.buf.Text()
	r.res.Caret = r.buf.Caret()
	r.res.Tags = r.eng.Tags()
	r.res.Filtered = r.rec.filtered
	r.res.Events = r.rec.events
	return r.res
}

func (r *runner) apply(ctx context.Context, i int, st *Step) error {
	switch {
	case st.Type != nil:
		return r.buf.Type(ctx, *st.Type)
	case st.Backspace != nil:
		return r.buf.Backspace(ctx, *st.Backspace)
	case st.Move != nil:
		return r.buf.MoveCaret(ctx, *st.Move)
	case st.Replace != nil:
		span := position.NewSpan(st.Replace.Start, st.Replace.Length)
		return r.buf.Replace(ctx, span, st.Replace.Text)
	case st.Commit != nil:
		if !r.eng.Commit(ctx, *st.Commit) {
			r.res.Warnings = append(r.res.Warnings, fmt.Sprintf("step %d: commit %q had no composing span", i, *st.Commit))
		}
	case st.Candidates != nil:
		r.eng.SetCandidates(st.Candidates)
	}
	return nil
}

func (r *runner) check(label string, exp *Expectation) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.Errorf("%w: %s: "+format, append([]any{ErrMismatch, label}, args...)...))
	}

	if exp.Text != nil && *exp.Text != r.buf.Text() {
		fail("text: want %q, got %q", *exp.Text, r.buf.Text())
	}
	if exp.Caret != nil && *exp.Caret != r.buf.Caret() {
		fail("caret: want %d, got %d", *exp.Caret, r.buf.Caret())
	}

	tags := r.eng.Tags()
	if exp.TagCount != nil && *exp.TagCount != len(tags) {
		fail("tag count: want %d, got %d", *exp.TagCount, len(tags))
	}
	if exp.Tags != nil {
		got := make([]ExpectedTag, len(tags))
		for i, t := range tags {
			got[i] = ExpectedTag{Text: t.Text, Symbol: t.Symbol, Start: t.Span.Start, Length: t.Span.Length}
			if i < len(exp.Tags) && exp.Tags[i].Symbol == "" {
				got[i].Symbol = ""
			}
		}
		if d := diff.Diff(exp.Tags, got); d != "" {
			fail("tags differ:%s", d)
		}
	}

	if exp.Candidate != nil {
		composing, ok := r.eng.Composing()
		switch {
		case !ok || composing.Text == nil:
			fail("candidate: want %q, got none", *exp.Candidate)
		case *composing.Text != *exp.Candidate:
			fail("candidate: want %q, got %q", *exp.Candidate, *composing.Text)
		}
	}
	if exp.Filtered != nil {
		got := r.rec.filtered
		if got == nil {
			got = []string{}
		}
		if d := diff.Diff(exp.Filtered, got); d != "" {
			fail("filtered list differs:%s", d)
		}
	}

	return errs
}
