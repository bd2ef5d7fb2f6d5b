// Package truncate shortens Go strings to limits measured in UTF-16 code
// units.
//
// Many systems cap text by UTF-16 length: JavaScript and Java string
// lengths, Android and Firebase parameter limits, chat protocol entity
// offsets. A Go string has to be measured and cut the same way, and the cut
// must not split a surrogate pair. This package wraps [utf16str] for Go
// strings and adds strategy-based truncation with a suffix.
//
// # Strategies
//
//   - FromEnd: Keep the start, remove content from the end (default)
//   - FromMiddle: Keep the start and the end, remove the middle
//   - FromStart: Keep the end, remove content from the start
//
// # Basic Usage
//
//	tr := truncate.NewFromEnd()
//	result, truncated := tr.Truncate("very long text...", 100)
//
// The suffix counts toward the limit, so the result never exceeds it:
//
//	tr := truncate.New(truncate.FromMiddle).WithSuffix("…")
//
// # Invalid UTF-8
//
// Text is measured as if encoded with [utf16str.FromString], so each invalid
// UTF-8 byte counts as one unit. Results are slices of the input: those
// bytes come back unchanged rather than as U+FFFD.
//
// # Convenience Functions
//
//	result, truncated := truncate.ToUnits(text, 40)   // Prefix of ≤ 40 units
//	result, err := truncate.Substring(text, 3, 10)     // Units [3, 10)
package truncate
