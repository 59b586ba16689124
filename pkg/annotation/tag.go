// Package annotation tracks committed tags and keeps their spans valid while
// the surrounding text is edited.
package annotation

import (
	"fmt"

	"github.com/walteh/gotags/pkg/position"
)

// Tag is a committed candidate. Only Span changes after commit.
type Tag struct {
	Text   string        `json:"text" yaml:"text"`
	Symbol string        `json:"symbol" yaml:"symbol"`
	Span   position.Span `json:"span" yaml:"span"`
}

// Formatted is the text the tag occupies in the buffer, symbol included.
func (t Tag) Formatted() string {
	return t.Symbol + t.Text
}

func (t Tag) String() string {
	return fmt.Sprintf("%s@%s", t.Formatted(), t.Span)
}
