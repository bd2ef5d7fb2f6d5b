package utf16str

// Truncate clamps s to at most maxLength code units.
//
// If s already fits it is returned unchanged with false. Otherwise the
// result is the longest prefix of at most maxLength units that does not end
// inside a surrogate pair, and the flag is true. A pair straddling the limit
// is dropped whole. A maxLength of zero or less yields an empty result.
func Truncate(s String, maxLength int) (String, bool) {
	if len(s) <= maxLength {
		return s, false
	}
	if maxLength <= 0 {
		return String{}, true
	}

	if SplitsPair(s, maxLength) {
		return s[:maxLength-1], true
	}
	return s[:maxLength], true
}
