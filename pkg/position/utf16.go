package position

import (
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

var (
	ErrOutOfRange = errors.Base("offset out of range")
	ErrSplitRune  = errors.Base("offset splits a surrogate pair")
)

func runeUnits(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUnits(r)
	}
	return n
}

// ByteOffset converts a UTF-16 offset into s to the matching byte index.
func ByteOffset(s string, offset int) (int, error) {
	if offset < 0 {
		return 0, errors.Errorf("%w: %d < 0", ErrOutOfRange, offset)
	}

	units := 0
	for i, r := range s {
		if units == offset {
			return i, nil
		}
		units += runeUnits(r)
		if units > offset {
			return 0, errors.Errorf("%w: offset %d", ErrSplitRune, offset)
		}
	}

	if units == offset {
		return len(s), nil
	}

	return 0, errors.Errorf("%w: %d > %d", ErrOutOfRange, offset, units)
}

// UTF16Offset converts a byte index into s to the matching UTF-16 offset.
func UTF16Offset(s string, byteIndex int) int {
	if byteIndex > len(s) {
		byteIndex = len(s)
	}
	return UTF16Len(s[:byteIndex])
}

// Prefix returns the text preceding offset.
func Prefix(s string, offset int) (string, error) {
	end, err := ByteOffset(s, offset)
	if err != nil {
		return "", err
	}
	return s[:end], nil
}

func byteRange(s string, span Span) (int, int, error) {
	if span.Length < 0 {
		return 0, 0, errors.Errorf("%w: negative length %d", ErrOutOfRange, span.Length)
	}
	start, err := ByteOffset(s, span.Start)
	if err != nil {
		return 0, 0, errors.Errorf("span start: %w", err)
	}
	end, err := ByteOffset(s, span.End())
	if err != nil {
		return 0, 0, errors.Errorf("span end: %w", err)
	}
	return start, end, nil
}

// Slice returns the text covered by span.
func Slice(s string, span Span) (string, error) {
	start, end, err := byteRange(s, span)
	if err != nil {
		return "", err
	}
	return s[start:end], nil
}

// Splice replaces the text covered by span with replacement.
func Splice(s string, span Span, replacement string) (string, error) {
	start, end, err := byteRange(s, span)
	if err != nil {
		return "", err
	}
	return s[:start] + replacement + s[end:], nil
}

// LineAndColumn returns the zero-based line and UTF-16 column of offset.
func LineAndColumn(s string, offset int) (line, col int, err error) {
	prefix, err := Prefix(s, offset)
	if err != nil {
		return 0, 0, err
	}

	lastNewline := -1
	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '\n' {
			line++
			lastNewline = i
		}
	}

	return line, UTF16Len(prefix[lastNewline+1:]), nil
}
