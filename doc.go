// Package utf16kit provides UTF-16 aware slicing and truncation for Go.
//
// Lengths and offsets are counted in UTF-16 code units, as JavaScript,
// Java, Android and many protocols count them, and no operation ever splits
// a surrogate pair. Each subpackage can be used independently:
//
//   - utf16str: UTF-16 String type, boundary checks, Truncate, Substring,
//     and a UTF-16 byte codec
//   - truncate: Go string helpers and suffix-aware truncation strategies
//   - keyfilter: Limit map key lengths by dropping or truncating keys
//   - config: File, environment and schema support for the defaults above
//
// # Quick Start
//
// Truncation:
//
//	import "github.com/randalmurphal/utf16kit/truncate"
//	out, truncated := truncate.ToUnits("héllo 👋 world", 7) // "héllo "
//
// Substrings on raw code units:
//
//	import "github.com/randalmurphal/utf16kit/utf16str"
//	s := utf16str.FromString("👨a👨")
//	out, err := utf16str.Substring(s, 1, 4, utf16str.WithIncludeEnd(false))
//
// Key filtering:
//
//	import "github.com/randalmurphal/utf16kit/keyfilter"
//	m, _ := keyfilter.FromJSON(data)
//	out := keyfilter.FilterKeyLength(m, 40, true)
package utf16kit
