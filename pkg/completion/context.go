// Package completion decides whether the caret sits inside a taggable
// context, extracts the candidate being typed, and narrows the candidate list.
//
// Everything here is a pure function over the text preceding the caret, so
// hosts and tests can call it without an engine.
package completion

import (
	"unicode"
	"unicode/utf8"

	"github.com/walteh/gotags/pkg/trigger"
)

// State is the outcome of scanning backward from the caret.
type State int

const (
	// Undetermined means the scan reached the start of the text without
	// finding a trigger or whitespace. No event is emitted for it.
	Undetermined State = iota
	NotTaggable
	Taggable
)

func (s State) String() string {
	switch s {
	case NotTaggable:
		return "not-taggable"
	case Taggable:
		return "taggable"
	default:
		return "undetermined"
	}
}

// Context holds the result of a backward scan.
type Context struct {
	State State
	// Symbol is the trigger that opened the context; zero unless Taggable.
	Symbol rune
	// Raw is the text from the trigger through the caret, trigger included.
	Raw string
	// Caret is the UTF-16 offset the scan started from.
	Caret int
}

func (c Context) IsTaggable() bool {
	return c.State == Taggable
}

// Scan walks preceding right to left, starting at caret, until it meets a
// trigger symbol (taggable) or whitespace (not taggable).
func Scan(preceding string, caret int, set trigger.Set) Context {
	ctx := Context{Caret: caret}

	for i := len(preceding); i > 0; {
		r, size := utf8.DecodeLastRuneInString(preceding[:i])
		i -= size

		if set.Has(r) {
			ctx.State = Taggable
			ctx.Symbol = r
			ctx.Raw = preceding[i:]
			return ctx
		}
		if unicode.IsSpace(r) {
			ctx.State = NotTaggable
			return ctx
		}
	}

	return ctx
}
