// Package trigger holds the configured set of characters that open a
// taggable context, such as '@' for mentions or '#' for topics.
package trigger

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

var ErrInvalidSymbol = errors.Base("invalid trigger symbol")

// DefaultSymbols is used when no trigger configuration is supplied.
var DefaultSymbols = []string{"@", "#"}

// Set is an ordered, immutable collection of single-character trigger
// symbols. The zero value is a legal empty set in which nothing is taggable.
type Set struct {
	symbols []rune
	pattern *regexp.Regexp
}

// New validates symbols and builds a Set. Every symbol must be exactly one
// character, not whitespace, and unique within the set.
func New(symbols ...string) (Set, error) {
	runes := make([]rune, 0, len(symbols))
	seen := make(map[rune]bool, len(symbols))

	for i, sym := range symbols {
		if utf8.RuneCountInString(sym) != 1 {
			return Set{}, errors.Errorf("%w: symbol %d %q must be exactly one character", ErrInvalidSymbol, i, sym)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		if r == utf8.RuneError {
			return Set{}, errors.Errorf("%w: symbol %d is not valid UTF-8", ErrInvalidSymbol, i)
		}
		if unicode.IsSpace(r) {
			return Set{}, errors.Errorf("%w: symbol %d %q is whitespace", ErrInvalidSymbol, i, sym)
		}
		if seen[r] {
			return Set{}, errors.Errorf("%w: symbol %q listed twice", ErrInvalidSymbol, sym)
		}
		seen[r] = true
		runes = append(runes, r)
	}

	return Set{symbols: runes, pattern: compilePattern(runes)}, nil
}

// Default returns the '@', '#' set.
func Default() Set {
	set, err := New(DefaultSymbols...)
	if err != nil {
		panic(err)
	}
	return set
}

// compilePattern matches one trigger immediately followed by one or more
// ASCII letters, digits or underscores.
func compilePattern(symbols []rune) *regexp.Regexp {
	if len(symbols) == 0 {
		return nil
	}
	alts := make([]string, len(symbols))
	for i, r := range symbols {
		alts[i] = regexp.QuoteMeta(string(r))
	}
	return regexp.MustCompile(`(?:` + strings.Join(alts, "|") + `)[a-zA-Z0-9_]+`)
}

func (s Set) Len() int {
	return len(s.symbols)
}

func (s Set) Strings() []string {
	out := make([]string, len(s.symbols))
	for i, r := range s.symbols {
		out[i] = string(r)
	}
	return out
}

// Has reports whether r is one of the trigger symbols.
func (s Set) Has(r rune) bool {
	for _, sym := range s.symbols {
		if sym == r {
			return true
		}
	}
	return false
}

// IsSymbol reports whether text is exactly one trigger symbol and nothing else.
func (s Set) IsSymbol(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return false
	}
	return s.Has(r)
}

// Pattern returns the candidate pattern, or nil for an empty set.
func (s Set) Pattern() *regexp.Regexp {
	return s.pattern
}

func (s Set) String() string {
	return strings.Join(s.Strings(), "")
}
