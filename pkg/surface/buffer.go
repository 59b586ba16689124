// Package surface is an in-memory text surface that drives a listener the
// way an interactive text view would: pending-edit first, then the edit,
// then the change notification.
package surface

import (
	"context"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/rs/zerolog"
	"github.com/walteh/gotags/pkg/position"
	"gitlab.com/tozd/go/errors"
)

// Listener is notified around every edit and caret move.
type Listener interface {
	// OnWillReplace runs before the edit is applied; edit is in pre-edit
	// coordinates.
	OnWillReplace(ctx context.Context, edit position.Span, replacement string)
	OnTextChange(ctx context.Context)
	OnSelectionChange(ctx context.Context)
}

// Buffer holds text and a single caret, both in UTF-16 code units.
type Buffer struct {
	text     string
	caret    int
	version  uint64
	listener Listener
}

// NewBuffer returns a buffer with the caret at the end of text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, caret: position.UTF16Len(text)}
}

func (b *Buffer) Attach(l Listener) {
	b.listener = l
}

func (b *Buffer) Text() string {
	return b.text
}

func (b *Buffer) Caret() int {
	return b.caret
}

func (b *Buffer) Selection() position.Span {
	return position.NewCaret(b.caret)
}

// Version increments on every content change.
func (b *Buffer) Version() uint64 {
	return b.version
}

// SetText replaces the content without notifying the listener. caret is
// clamped to the new text.
func (b *Buffer) SetText(text string, caret int) {
	b.text = text
	b.version++
	b.caret = clamp(caret, 0, position.UTF16Len(text))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Replace swaps the text covered by span for replacement and leaves the
// caret after the inserted text.
func (b *Buffer) Replace(ctx context.Context, span position.Span, replacement string) error {
	changed, err := position.Splice(b.text, span, replacement)
	if err != nil {
		return errors.Errorf("replacing %s: %w", span, err)
	}

	zerolog.Ctx(ctx).Trace().
		Stringer("span", span).
		Str("replacement", replacement).
		Uint64("version", b.version).
		Msg("replace")

	if b.listener != nil {
		b.listener.OnWillReplace(ctx, span, replacement)
	}

	b.text = changed
	b.version++
	b.caret = span.Start + position.UTF16Len(replacement)

	if b.listener != nil {
		b.listener.OnTextChange(ctx)
	}
	return nil
}

// Insert inserts s at the caret as a single edit.
func (b *Buffer) Insert(ctx context.Context, s string) error {
	return b.Replace(ctx, b.Selection(), s)
}

// Type inserts s one grapheme cluster at a time, as keystrokes would.
func (b *Buffer) Type(ctx context.Context, s string) error {
	clusters, err := textseg.AllTokens([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return errors.Errorf("segmenting %q: %w", s, err)
	}
	for _, c := range clusters {
		if err := b.Insert(ctx, string(c)); err != nil {
			return err
		}
	}
	return nil
}

// Backspace deletes up to n grapheme clusters before the caret, one edit per
// cluster.
func (b *Buffer) Backspace(ctx context.Context, n int) error {
	for ; n > 0 && b.caret > 0; n-- {
		prefix, err := position.Prefix(b.text, b.caret)
		if err != nil {
			return errors.Errorf("backspace: %w", err)
		}
		clusters, err := textseg.AllTokens([]byte(prefix), textseg.ScanGraphemeClusters)
		if err != nil {
			return errors.Errorf("segmenting text before caret: %w", err)
		}
		last := position.UTF16Len(string(clusters[len(clusters)-1]))
		if err := b.Replace(ctx, position.NewSpan(b.caret-last, last), ""); err != nil {
			return err
		}
	}
	return nil
}

// MoveCaret places the caret at offset and notifies the listener.
func (b *Buffer) MoveCaret(ctx context.Context, offset int) error {
	if _, err := position.Prefix(b.text, offset); err != nil {
		return errors.Errorf("moving caret: %w", err)
	}
	b.caret = offset
	if b.listener != nil {
		b.listener.OnSelectionChange(ctx)
	}
	return nil
}
