// Package utf16str slices and truncates UTF-16 text without splitting
// surrogate pairs.
//
// Lengths and indices are measured in UTF-16 code units, the unit used by
// JavaScript, Java, Android, and many wire protocols (Telegram entities,
// Firebase Analytics keys, Windows APIs). Cutting such a value at a fixed
// offset can leave a lone high or low surrogate behind. The functions here
// move the cut to the nearest character boundary instead.
//
// # Truncation
//
//	s := utf16str.FromString(strings.Repeat("あ", 19) + "👨")
//	out, truncated := utf16str.Truncate(s, 20)
//	// out is 19 units long; the emoji is dropped, not split
//
// # Substrings
//
// Substring takes a half-open range of code units. When either edge lands
// inside a pair, the Policy decides whether the whole pair is kept or
// dropped:
//
//	out, err := utf16str.Substring(s, 1, 4,
//		utf16str.WithIncludeStart(false),
//		utf16str.WithIncludeEnd(false),
//	)
//
// Invalid indices are reported as *IndexError values wrapping ErrOutOfRange
// or ErrInvalidRange.
//
// # Scope
//
// Only surrogate pairs are treated as units. Grapheme clusters (combining
// marks, emoji ZWJ sequences) may still be split.
package utf16str
