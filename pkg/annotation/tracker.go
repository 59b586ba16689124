package annotation

import (
	"github.com/walteh/gotags/pkg/position"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

var (
	ErrOverlap    = errors.Base("tags overlap")
	ErrOutOfRange = errors.Base("tag outside buffer")
)

// Tracker owns the committed tags of one buffer. Stored order is insertion
// order; no operation depends on it being sorted by start.
type Tracker struct {
	tags []Tag
}

func NewTracker(tags ...Tag) *Tracker {
	return &Tracker{tags: append([]Tag(nil), tags...)}
}

// Tags returns a copy of the current tags.
func (t *Tracker) Tags() []Tag {
	return append([]Tag{}, t.tags...)
}

func (t *Tracker) Len() int {
	return len(t.tags)
}

// At returns the tag whose span contains offset.
func (t *Tracker) At(offset int) (Tag, bool) {
	for _, tag := range t.tags {
		if tag.Span.Contains(offset) {
			return tag, true
		}
	}
	return Tag{}, false
}

// WillReplace rebases every tag for an edit that is about to replace edit
// (pre-edit coordinates) with replacementLength units of text. Tags touched
// by the edit are evicted and returned; the rest are shifted.
func (t *Tracker) WillReplace(edit position.Span, replacementLength int) []Tag {
	var evicted []Tag

	kept := t.tags[:0]
	for _, tag := range t.tags {
		if evicts(tag.Span, edit) {
			evicted = append(evicted, tag)
			continue
		}
		kept = append(kept, tag)
	}
	t.tags = kept

	delta := shiftFor(edit, replacementLength)
	for i := range t.tags {
		if t.tags[i].Span.Start >= edit.Start {
			t.tags[i].Span = t.tags[i].Span.Shift(delta)
		}
	}

	return evicted
}

// evicts reports whether an edit splits the tag or, for a non-empty edit,
// covers the tag's first unit.
func evicts(tag, edit position.Span) bool {
	if tag.StrictlyContains(edit.Start) {
		return true
	}
	return edit.Length > 0 && edit.Contains(tag.Start)
}

// shiftFor is the start delta applied to tags at or after the edit.
//
// A single-unit replacement over a non-empty span shifts by -edit.Length,
// not by the net delta; only replacements longer than one unit use it.
func shiftFor(edit position.Span, replacementLength int) int {
	switch {
	case edit.Length > 0 && replacementLength > 1:
		return replacementLength - edit.Length
	case edit.Length > 0:
		return -edit.Length
	default:
		return replacementLength
	}
}

// Commit appends tag, which was spliced over replaced using
// replacementLength units of text, and moves every other tag that starts
// after replaced by the net length change.
func (t *Tracker) Commit(tag Tag, replaced position.Span, replacementLength int) {
	delta := replacementLength - replaced.Length
	for i := range t.tags {
		if t.tags[i].Span.Start > replaced.Start {
			t.tags[i].Span = t.tags[i].Span.Shift(delta)
		}
	}
	t.tags = append(t.tags, tag)
}

// Validate reports every tag that overlaps another or lies outside
// [0, bufferLen).
func (t *Tracker) Validate(bufferLen int) error {
	var err error
	for i, a := range t.tags {
		if a.Span.Start < 0 || a.Span.Length < 0 || a.Span.End() > bufferLen {
			err = multierr.Append(err, errors.Errorf("%w: %s in buffer of length %d", ErrOutOfRange, a, bufferLen))
		}
		for _, b := range t.tags[i+1:] {
			if a.Span.HasRangeOverlapWith(b.Span) {
				err = multierr.Append(err, errors.Errorf("%w: %s and %s", ErrOverlap, a, b))
			}
		}
	}
	return err
}
