package tagging

import (
	"github.com/walteh/gotags/pkg/annotation"
	"github.com/walteh/gotags/pkg/completion"
	"github.com/walteh/gotags/pkg/position"
)

// Host is the text surface an Engine is bound to. All offsets are UTF-16
// code units.
type Host interface {
	Text() string
	// Selection returns the current selection; its Start is the caret.
	Selection() position.Span
	// SetText replaces the whole content without a pending-edit notification
	// and places the caret.
	SetText(text string, caret int)
}

// Observer receives engine notifications. Calls are synchronous and must not
// edit the host before returning.
type Observer interface {
	StartedTyping(taggable bool, symbol rune, caret int)
	// UserDidType receives nil when nothing after the trigger matched.
	UserDidType(candidate *completion.Candidate)
	TaggableListChanged(filtered []string)
	TaggedListChanged(tags []annotation.Tag)
	TextDidChange(text string)
	TextDidUpdateFromCommit(text string)
}

// NopObserver ignores every notification. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) StartedTyping(bool, rune, int) {}
func (NopObserver) UserDidType(*completion.Candidate) {}
func (NopObserver) TaggableListChanged([]string) {}
func (NopObserver) TaggedListChanged([]annotation.Tag) {}
func (NopObserver) TextDidChange(string) {}
func (NopObserver) TextDidUpdateFromCommit(string) {}

var _ Observer = NopObserver{}
