package truncate

import "github.com/randalmurphal/utf16kit/utf16str"

// truncateEnd keeps at most target units from the start.
func (t *Truncator) truncateEnd(text string, s utf16str.String, target int) string {
	return head(text, s, target) + t.suffix
}

// truncateMiddle keeps the start and the end around the suffix.
func (t *Truncator) truncateMiddle(text string, s utf16str.String, target int) string {
	tailUnits := target / 2
	return head(text, s, target-tailUnits) + t.suffix + tail(text, s, tailUnits)
}

// truncateStart keeps at most target units from the end.
func (t *Truncator) truncateStart(text string, s utf16str.String, target int) string {
	return t.suffix + tail(text, s, target)
}

// head returns at most n units from the start of text.
func head(text string, s utf16str.String, n int) string {
	cut, _ := utf16str.Truncate(s, n)
	return text[:utf16str.ByteOffset(text, cut.Len())]
}

// tail returns at most n units from the end of text, dropping a pair split
// by the cut. n must be less than s.Len().
func tail(text string, s utf16str.String, n int) string {
	from, _, err := utf16str.SubstringBounds(s, s.Len()-n, s.Len(), utf16str.WithIncludeStart(false))
	if err != nil {
		return ""
	}
	return text[utf16str.ByteOffset(text, from):]
}
