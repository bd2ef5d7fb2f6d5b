package utf16str

// NextBoundary returns the index immediately after the character that
// begins at i. A valid surrogate pair counts as one character of two units;
// any other unit, including an unpaired surrogate, is a character of one.
//
// i must be in [0, s.Len()). NextBoundary never reads past the end of s.
func NextBoundary(s String, i int) int {
	if i+1 < len(s) && isHighSurrogate(s[i]) && isLowSurrogate(s[i+1]) {
		return i + 2
	}
	return i + 1
}

// SplitsPair reports whether index i falls strictly inside a surrogate pair,
// that is, on the pair's low half. The start and the end of s are always
// boundaries, as is any index outside [0, s.Len()].
func SplitsPair(s String, i int) bool {
	if i <= 0 || i >= len(s) {
		return false
	}
	// Step one character forward from the unit before i; overshooting i
	// means the character starting at i-1 spans i.
	return NextBoundary(s, i-1) >= i+1
}

// IsBoundary reports whether i is a valid cut point in s.
func IsBoundary(s String, i int) bool {
	return i >= 0 && i <= len(s) && !SplitsPair(s, i)
}
