package position

import (
	"fmt"
)

// Span is a half-open interval [Start, Start+Length) measured in UTF-16 code
// units, the unit host text surfaces report selections and replacements in.
type Span struct {
	Start  int `json:"start" yaml:"start"`
	Length int `json:"length" yaml:"length"`
}

func NewSpan(start, length int) Span {
	return Span{Start: start, Length: length}
}

// NewCaret returns the empty span sitting at offset.
func NewCaret(offset int) Span {
	return Span{Start: offset}
}

func (s Span) End() int {
	return s.Start + s.Length
}

func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Contains reports whether offset falls inside [Start, End).
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End()
}

// StrictlyContains reports whether offset falls inside (Start, End), i.e. an
// insertion at offset would split the span in two.
func (s Span) StrictlyContains(offset int) bool {
	return s.Start < offset && offset < s.End()
}

func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, Length: s.Length}
}

func (s Span) HasRangeOverlapWith(other Span) bool {
	// Handle zero-length ranges
	if s.IsEmpty() {
		return s.Start >= other.Start && s.Start <= other.End()
	}
	if other.IsEmpty() {
		return other.Start >= s.Start && other.Start <= s.End()
	}

	return other.Start < s.End() && other.End() > s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("{%d,%d}", s.Start, s.Length)
}
