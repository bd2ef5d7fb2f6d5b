package utf16str

// Range is a closed range of code-unit indices, First through Last.
type Range struct {
	First int
	Last  int
}

// Substring returns the code units in [start, end), widened or narrowed so
// that neither edge splits a surrogate pair.
//
// A pair split by start is kept whole (start moves left) unless
// WithIncludeStart(false) is given, in which case it is skipped (start moves
// right). A pair split by end is likewise kept (end moves right) or dropped
// (end moves left) per WithIncludeEnd.
//
// Substring fails with ErrOutOfRange when start or end lies outside
// [0, s.Len()] and with ErrInvalidRange when end < start.
func Substring(s String, start, end int, opts ...Option) (String, error) {
	from, to, err := SubstringBounds(s, start, end, opts...)
	if err != nil {
		return nil, err
	}
	if from == 0 && to == len(s) {
		return s, nil
	}
	if from == to {
		return String{}, nil
	}
	return s[from:to], nil
}

// SubstringBounds returns the adjusted indices [from, to) that Substring
// would slice s at, with the same validation.
func SubstringBounds(s String, start, end int, opts ...Option) (from, to int, err error) {
	length := len(s)

	switch {
	case start == 0 && end == length:
		return 0, length, nil
	case start < 0 || start > length:
		return 0, 0, newIndexError("substring", start, end, length, ErrOutOfRange)
	case end < start:
		return 0, 0, newIndexError("substring", start, end, length, ErrInvalidRange)
	case end > length:
		return 0, 0, newIndexError("substring", start, end, length, ErrOutOfRange)
	case start == end:
		return start, start, nil
	}

	policy := buildPolicy(opts)

	if start == 0 {
		// end < length here, so Truncate always cuts.
		truncated, cut := Truncate(s, end)
		if cut && len(truncated) != end && policy.IncludeEnd {
			// The pair at end was dropped; step past it to pull it back in.
			truncated, _ = Truncate(s, end+1)
		}
		return 0, len(truncated), nil
	}

	newStart := start
	if SplitsPair(s, start) {
		if policy.IncludeStart {
			newStart = start - 1
		} else {
			newStart = start + 1
		}
	}

	// The end of the string is always a boundary.
	newEnd := end
	if end != length && SplitsPair(s, end) {
		if policy.IncludeEnd {
			newEnd = end + 1
		} else {
			newEnd = end - 1
		}
	}

	return newStart, newEnd, nil
}

// SubstringFrom returns the code units from start to the end of s.
// Only the start boundary is adjusted.
func SubstringFrom(s String, start int, opts ...Option) (String, error) {
	return Substring(s, start, len(s), opts...)
}

// SubstringRange returns the code units in the closed range r.
func SubstringRange(s String, r Range, opts ...Option) (String, error) {
	return Substring(s, r.First, r.Last+1, opts...)
}
