package script

import (
	"fmt"
	"strings"

	"github.com/walteh/gotags/pkg/annotation"
	"github.com/walteh/gotags/pkg/completion"
	"github.com/walteh/gotags/pkg/tagging"
)

// Event is one engine notification as seen by the runner.
type Event struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

func (e Event) String() string {
	if e.Detail == "" {
		return e.Kind
	}
	return e.Kind + " " + e.Detail
}

type recorder struct {
	events   []Event
	filtered []string
}

var _ tagging.Observer = (*recorder)(nil)

func (r *recorder) add(kind, format string, args ...any) {
	r.events = append(r.events, Event{Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

func (r *recorder) StartedTyping(taggable bool, symbol rune, caret int) {
	sym := ""
	if symbol != 0 {
		sym = string(symbol)
	}
	r.add("started-typing", "taggable=%t symbol=%q caret=%d", taggable, sym, caret)
}

func (r *recorder) UserDidType(candidate *completion.Candidate) {
	if candidate == nil {
		r.add("user-did-type", "none")
		return
	}
	r.add("user-did-type", "%q %s", candidate.Text, candidate.Span)
}

func (r *recorder) TaggableListChanged(filtered []string) {
	r.filtered = append([]string{}, filtered...)
	r.add("taggable-list-changed", "[%s]", strings.Join(filtered, " "))
}

func (r *recorder) TaggedListChanged(tags []annotation.Tag) {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	r.add("tagged-list-changed", "[%s]", strings.Join(parts, " "))
}

func (r *recorder) TextDidChange(text string) {
	r.add("text-did-change", "%q", text)
}

func (r *recorder) TextDidUpdateFromCommit(text string) {
	r.add("text-did-update-from-commit", "%q", text)
}
