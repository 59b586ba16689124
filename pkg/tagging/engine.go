// Package tagging binds trigger scanning, candidate filtering and tag
// tracking to one host text surface.
//
// Every Engine owns exactly one buffer's state. Hosts must call
// OnWillReplace before applying an edit and OnTextChange or
// OnSelectionChange after the edit and caret move are visible.
package tagging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/gotags/pkg/annotation"
	"github.com/walteh/gotags/pkg/completion"
	"github.com/walteh/gotags/pkg/position"
	"github.com/walteh/gotags/pkg/trigger"
	"gitlab.com/tozd/go/errors"
)

type Config struct {
	// Triggers defaults to trigger.DefaultSymbols when nil. An empty,
	// non-nil slice makes nothing taggable.
	Triggers []string
	// Candidates is the taggable list; nil disables filtering.
	Candidates []string
	Observer   Observer
}

// Composing is the uncommitted tag being typed.
type Composing struct {
	Symbol rune
	// Span is nil when nothing after the trigger matched.
	Span *position.Span
	// Text is nil when no candidate was extracted or after an edit cleared it.
	Text *string
}

type Engine struct {
	id         string
	host       Host
	observer   Observer
	triggers   trigger.Set
	candidates []string
	tracker    *annotation.Tracker
	composing  *Composing
}

func New(host Host, cfg Config) (*Engine, error) {
	if host == nil {
		return nil, errors.New("tagging engine requires a host")
	}

	symbols := cfg.Triggers
	if symbols == nil {
		symbols = trigger.DefaultSymbols
	}
	set, err := trigger.New(symbols...)
	if err != nil {
		return nil, errors.Errorf("configuring triggers: %w", err)
	}

	observer := cfg.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	e := &Engine{
		id:       uuid.NewString(),
		host:     host,
		observer: observer,
		triggers: set,
		tracker:  annotation.NewTracker(),
	}
	e.SetCandidates(cfg.Candidates)

	return e, nil
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("engine", e.id).Logger()
	return &l
}

// SetTriggers validates and replaces the trigger set. On error the current
// set is kept.
func (e *Engine) SetTriggers(symbols ...string) error {
	set, err := trigger.New(symbols...)
	if err != nil {
		return errors.Errorf("configuring triggers: %w", err)
	}
	e.triggers = set
	return nil
}

func (e *Engine) Triggers() trigger.Set {
	return e.triggers
}

// SetCandidates stores a snapshot of the taggable list. It does not refilter.
func (e *Engine) SetCandidates(candidates []string) {
	if candidates == nil {
		e.candidates = nil
		return
	}
	e.candidates = append([]string{}, candidates...)
}

func (e *Engine) Candidates() []string {
	if e.candidates == nil {
		return nil
	}
	return append([]string{}, e.candidates...)
}

func (e *Engine) Tags() []annotation.Tag {
	return e.tracker.Tags()
}

// Composing returns a copy of the in-progress context, if any.
func (e *Engine) Composing() (Composing, bool) {
	if e.composing == nil {
		return Composing{}, false
	}
	c := *e.composing
	if c.Span != nil {
		span := *c.Span
		c.Span = &span
	}
	if c.Text != nil {
		text := *c.Text
		c.Text = &text
	}
	return c, true
}

// Validate checks the tag invariants against the host's current text.
func (e *Engine) Validate() error {
	return e.tracker.Validate(position.UTF16Len(e.host.Text()))
}

func (e *Engine) OnSelectionChange(ctx context.Context) {
	e.scan(ctx)
}

func (e *Engine) OnTextChange(ctx context.Context) {
	e.scan(ctx)
	e.observer.TextDidChange(e.host.Text())
}

func (e *Engine) scan(ctx context.Context) {
	text := e.host.Text()
	caret := e.host.Selection().Start

	prefix, err := position.Prefix(text, caret)
	if err != nil {
		e.logger(ctx).Warn().Err(err).Int("caret", caret).Msg("host reported an invalid caret")
		e.composing = nil
		return
	}

	sc := completion.Scan(prefix, caret, e.triggers)
	switch sc.State {
	case completion.Taggable:
		e.observer.StartedTyping(true, sc.Symbol, caret)
	case completion.NotTaggable:
		e.observer.StartedTyping(false, 0, caret)
	}

	if !sc.IsTaggable() {
		e.composing = nil
		return
	}

	cand := completion.Extract(sc, e.triggers)
	e.composing = &Composing{Symbol: sc.Symbol}

	var candText *string
	if cand != nil {
		span, text := cand.Span, cand.Text
		e.composing.Span = &span
		candText = &text
	}
	e.setCandidateText(candText)

	e.logger(ctx).Debug().
		Str("symbol", string(sc.Symbol)).
		Str("raw", sc.Raw).
		Bool("matched", cand != nil).
		Msg("scanned taggable context")

	e.observer.UserDidType(cand)
}

func (e *Engine) setCandidateText(text *string) {
	if e.composing == nil {
		return
	}
	e.composing.Text = text
	if text == nil || e.candidates == nil {
		return
	}
	e.observer.TaggableListChanged(completion.Filter(e.candidates, *text))
}

// OnWillReplace rebases committed tags for an edit the host is about to
// apply. edit is in pre-edit coordinates.
func (e *Engine) OnWillReplace(ctx context.Context, edit position.Span, replacement string) {
	evicted := e.tracker.WillReplace(edit, position.UTF16Len(replacement))
	for _, tag := range evicted {
		e.logger(ctx).Debug().Stringer("tag", tag).Stringer("edit", edit).Msg("evicted tag")
	}

	e.setCandidateText(nil)

	e.observer.TaggedListChanged(e.tracker.Tags())
}

// Commit replaces the composing span with the trigger symbol, chosen and a
// trailing space, and records the new tag. It is a no-op returning false when
// there is no composing span.
func (e *Engine) Commit(ctx context.Context, chosen string) bool {
	if e.composing == nil || e.composing.Span == nil {
		return false
	}

	span := *e.composing.Span
	symbol := string(e.composing.Symbol)
	formatted := symbol + chosen
	replacement := formatted + " "

	changed, err := position.Splice(e.host.Text(), span, replacement)
	if err != nil {
		e.logger(ctx).Warn().Err(err).Stringer("span", span).Msg("composing span no longer fits the text")
		return false
	}

	tag := annotation.Tag{
		Text:   chosen,
		Symbol: symbol,
		Span:   position.NewSpan(span.Start, position.UTF16Len(formatted)),
	}
	replacementLen := position.UTF16Len(replacement)
	e.tracker.Commit(tag, span, replacementLen)
	e.composing = nil

	e.logger(ctx).Debug().Stringer("tag", tag).Msg("committed tag")

	e.host.SetText(changed, span.Start+replacementLen)
	e.observer.TaggedListChanged(e.tracker.Tags())
	e.observer.TextDidUpdateFromCommit(changed)

	return true
}
