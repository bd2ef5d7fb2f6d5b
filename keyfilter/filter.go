package keyfilter

import (
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/randalmurphal/utf16kit/utf16str"
)

// Options configures Apply.
type Options struct {
	// MaxKeyLength is the maximum key length in UTF-16 code units.
	MaxKeyLength int

	// Truncate rewrites overlong keys instead of dropping their entries.
	Truncate bool
}

// FilterKeyLength returns a new map whose keys are at most keyLength UTF-16
// code units long. The input is not modified.
//
// When truncate is false, entries with overlong keys are removed. When
// truncate is true, overlong keys are cut with utf16str.Truncate, so a
// surrogate pair at the limit is dropped rather than split. If a cut key
// equals a key already written, the later entry's value replaces the earlier
// one and the key keeps its first position.
func FilterKeyLength[V any](m *orderedmap.OrderedMap[string, V], keyLength int, truncate bool) *orderedmap.OrderedMap[string, V] {
	out := orderedmap.New[string, V]()
	if m == nil {
		return out
	}

	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key
		if utf16str.CountUnits(key) > keyLength {
			if !truncate {
				continue
			}
			cut, _ := utf16str.Truncate(utf16str.FromString(key), keyLength)
			key = cut.String()
		}

		if _, present := out.Set(key, pair.Value); present {
			slog.Debug("key collision after truncation, later value wins",
				slog.String("key", key),
				slog.String("source_key", pair.Key))
		}
	}

	return out
}

// Apply filters m according to opts.
func Apply[V any](m *orderedmap.OrderedMap[string, V], opts Options) *orderedmap.OrderedMap[string, V] {
	return FilterKeyLength(m, opts.MaxKeyLength, opts.Truncate)
}
