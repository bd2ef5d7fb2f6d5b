// Package keyfilter limits the UTF-16 length of map keys.
//
// Some sinks (analytics event parameters, user properties, header maps)
// reject keys longer than a fixed number of UTF-16 code units. Overlong keys
// can either be dropped or truncated. Truncation can make two keys equal; the
// entry that comes later in the map wins, so the maps here are
// insertion-ordered [orderedmap.OrderedMap] values.
//
//	m, _ := keyfilter.FromJSON(data)
//	out := keyfilter.FilterKeyLength(m, 40, true)
package keyfilter
