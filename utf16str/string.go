package utf16str

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// String is an immutable sequence of UTF-16 code units.
//
// Functions in this package never modify a String; results may share the
// backing array of their input.
type String []uint16

// FromString encodes a Go string as UTF-16.
func FromString(s string) String {
	return String(utf16.Encode([]rune(s)))
}

// Len returns the length in code units.
func (s String) Len() int {
	return len(s)
}

// String decodes s into a Go string. Unpaired surrogates become U+FFFD.
func (s String) String() string {
	return string(utf16.Decode(s))
}

// Equal reports whether s and other hold the same code units.
func (s String) Equal(other String) bool {
	return slices.Equal(s, other)
}

// CountUnits returns the UTF-16 length of a Go string without encoding it.
// Invalid UTF-8 bytes count as one unit each, matching FromString.
func CountUnits(text string) int {
	n := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		n += utf16.RuneLen(r)
	}
	return n
}

// ByteOffset returns the byte offset in text of UTF-16 unit index units,
// counted the same way as CountUnits. An index inside a surrogate pair maps
// to the end of that character; an index past the end maps to len(text).
//
// Slicing text at the returned offset keeps its original bytes, including
// invalid UTF-8 that FromString would have replaced.
func ByteOffset(text string, units int) int {
	n := 0
	for i, r := range text {
		if n >= units {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(text)
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}
