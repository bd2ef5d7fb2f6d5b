package truncate

import "github.com/randalmurphal/utf16kit/utf16str"

// ToUnits truncates text to at most maxUnits UTF-16 code units without
// splitting a surrogate pair. Returns the text unchanged and false if it
// already fits.
func ToUnits(text string, maxUnits int) (string, bool) {
	if utf16str.CountUnits(text) <= maxUnits {
		return text, false
	}
	cut, _ := utf16str.Truncate(utf16str.FromString(text), maxUnits)
	return text[:utf16str.ByteOffset(text, cut.Len())], true
}

// Substring returns the UTF-16 code units [start, end) of text, adjusted so
// that no surrogate pair is split. See utf16str.Substring.
func Substring(text string, start, end int, opts ...utf16str.Option) (string, error) {
	from, to, err := utf16str.SubstringBounds(utf16str.FromString(text), start, end, opts...)
	if err != nil {
		return "", err
	}
	return text[utf16str.ByteOffset(text, from):utf16str.ByteOffset(text, to)], nil
}

// SubstringFrom returns text from UTF-16 index start to the end.
func SubstringFrom(text string, start int, opts ...utf16str.Option) (string, error) {
	return Substring(text, start, utf16str.CountUnits(text), opts...)
}

// SubstringRange returns the UTF-16 code units of text in the closed range r.
func SubstringRange(text string, r utf16str.Range, opts ...utf16str.Option) (string, error) {
	return Substring(text, r.First, r.Last+1, opts...)
}
