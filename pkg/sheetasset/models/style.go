package models

import "strings"

// Document defaults for style attributes. An attribute matching its default is
// left out of the StyleSet so plain text stays plain.
const (
	// DefaultColor is pure black, lowercase hex without a leading '#'.
	DefaultColor = "000000"
	// DefaultFontSize is the document default point size.
	DefaultFontSize = 10
	// DefaultFontFamily is the document default font.
	DefaultFontFamily = "Arial"
)

// StyleSet is the set of formatting attributes active on one character.
// The zero value means unstyled. Two StyleSets compare equal iff their
// attribute sets are equal, so plain == comparison is the set comparison.
type StyleSet struct {
	Bold   bool
	Italic bool
	Strike bool
	// Color is a lowercase hex RGB triplet, empty when the color is the
	// document default.
	Color string
	// Size is the point size, 0 when it is the document default.
	Size float64
	// Font is the family name, empty when it is the document default.
	Font string
}

// NewStyleSet builds a StyleSet from raw attribute values, suppressing any
// attribute that matches the document default.
func NewStyleSet(bold, italic, strike bool, color string, size float64, font string) StyleSet {
	s := StyleSet{Bold: bold, Italic: italic, Strike: strike}
	if c := NormalizeColor(color); c != DefaultColor {
		s.Color = c
	}
	if size != 0 && size != DefaultFontSize {
		s.Size = size
	}
	if font != "" && font != DefaultFontFamily {
		s.Font = font
	}
	return s
}

// IsPlain reports whether no attribute is active.
func (s StyleSet) IsPlain() bool {
	return s == StyleSet{}
}

// NormalizeColor lowercases a hex color, strips a leading '#', and drops a
// leading alpha component from 8-digit ARGB values. Empty input normalizes to
// the default color.
func NormalizeColor(c string) string {
	c = strings.ToLower(strings.TrimPrefix(c, "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	if c == "" {
		return DefaultColor
	}
	return c
}

// StyledChar is one character of a rich text cell together with its effective
// StyleSet.
type StyledChar struct {
	Ch    rune
	Style StyleSet
}
