package completion

import (
	"strings"

	"github.com/walteh/gotags/pkg/position"
	"github.com/walteh/gotags/pkg/trigger"
)

// Candidate is the in-progress tag text and the span it occupies.
type Candidate struct {
	Text string        `json:"text"`
	Span position.Span `json:"span"`
}

// Extract turns a taggable scan into a candidate. It returns nil when the
// context is not taggable or nothing after the trigger matches the pattern.
//
// A bare trigger (nothing typed after it yet) yields the trigger itself as
// candidate text. Otherwise the rightmost pattern match inside the raw span
// wins and the active trigger is stripped from its text.
func Extract(ctx Context, set trigger.Set) *Candidate {
	if !ctx.IsTaggable() {
		return nil
	}

	rawLen := position.UTF16Len(ctx.Raw)
	rawSpan := position.NewSpan(ctx.Caret-rawLen, rawLen)

	if set.IsSymbol(ctx.Raw) {
		return &Candidate{Text: ctx.Raw, Span: rawSpan}
	}

	re := set.Pattern()
	if re == nil {
		return nil
	}

	matches := re.FindAllStringIndex(ctx.Raw, -1)
	if len(matches) == 0 {
		return nil
	}

	last := matches[len(matches)-1]
	matched := ctx.Raw[last[0]:last[1]]

	return &Candidate{
		Text: strings.ReplaceAll(matched, string(ctx.Symbol), ""),
		Span: position.NewSpan(
			rawSpan.Start+position.UTF16Offset(ctx.Raw, last[0]),
			position.UTF16Len(matched),
		),
	}
}
