package utf16str

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const man = "👨"

func substring(t *testing.T, text string, start, end int, opts ...Option) string {
	t.Helper()
	result, err := Substring(FromString(text), start, end, opts...)
	require.NoError(t, err)
	return result.String()
}

func TestSubstring_ShortStrings(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    int
		end      int
		opts     []Option
		expected string
	}{
		{name: "whole single letter", text: "a", start: 0, end: 1, expected: "a"},
		{name: "prefix", text: "ab", start: 0, end: 1, expected: "a"},
		{name: "suffix", text: "aa", start: 1, end: 2, expected: "a"},
		{
			name:     "end splits pair, included",
			text:     "a" + man,
			start:    0,
			end:      2,
			opts:     []Option{WithIncludeEnd(true)},
			expected: "a" + man,
		},
		{
			name:     "end splits pair, excluded",
			text:     "a" + man,
			start:    0,
			end:      2,
			opts:     []Option{WithIncludeEnd(false)},
			expected: "a",
		},
		{
			name:     "start splits pair, included",
			text:     man + "a",
			start:    1,
			end:      3,
			opts:     []Option{WithIncludeStart(true)},
			expected: man + "a",
		},
		{
			name:     "start splits pair, excluded",
			text:     man + "a",
			start:    1,
			end:      3,
			opts:     []Option{WithIncludeStart(false)},
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substring(t, tt.text, tt.start, tt.end, tt.opts...))
		})
	}
}

func TestSubstring_BothBoundaries(t *testing.T) {
	text := man + "a" + man // H L a H L

	tests := []struct {
		name         string
		includeStart bool
		includeEnd   bool
		expected     string
	}{
		{name: "exclude both", expected: "a"},
		{name: "include start", includeStart: true, expected: man + "a"},
		{name: "include end", includeEnd: true, expected: "a" + man},
		{name: "include both", includeStart: true, includeEnd: true, expected: text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := substring(t, text, 1, 4,
				WithIncludeStart(tt.includeStart),
				WithIncludeEnd(tt.includeEnd),
			)
			assert.Equal(t, tt.expected, result)

			ranged, err := SubstringRange(FromString(text), Range{First: 1, Last: 3},
				WithPolicy(Policy{IncludeStart: tt.includeStart, IncludeEnd: tt.includeEnd}),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ranged.String())
		})
	}
}

func TestSubstringFrom(t *testing.T) {
	s := FromString(man + "a" + man)

	result, err := SubstringFrom(s, 1, WithIncludeStart(false))
	require.NoError(t, err)
	assert.Equal(t, "a"+man, result.String())

	result, err = SubstringFrom(s, 1)
	require.NoError(t, err)
	assert.Equal(t, man+"a"+man, result.String())

	result, err = SubstringFrom(FromString("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, "a", result.String())
}

func TestSubstringRange(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		r        Range
		opts     []Option
		expected string
	}{
		{name: "single letter", text: "a", r: Range{0, 0}, expected: "a"},
		{name: "prefix", text: "ab", r: Range{0, 0}, expected: "a"},
		{name: "end included", text: "a" + man, r: Range{0, 1}, expected: "a" + man},
		{
			name:     "end excluded",
			text:     "a" + man,
			r:        Range{0, 1},
			opts:     []Option{WithIncludeEnd(false)},
			expected: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SubstringRange(FromString(tt.text), tt.r, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestSubstring_MatchesPlainSliceOnBoundaries(t *testing.T) {
	tests := []struct {
		text  string
		start int
		end   int
	}{
		{text: "a little string", start: 0, end: 1},
		{text: "a " + man + " string", start: 0, end: 6},
		{text: "a " + man, start: 0, end: 4},
		{text: "a " + man + " string", start: 2, end: 5},
		{text: "a " + man + " string", start: 4, end: 11},
	}

	for _, tt := range tests {
		s := FromString(tt.text)
		result, err := Substring(s, tt.start, tt.end)
		require.NoError(t, err)
		assert.Equal(t, s[tt.start:tt.end], result, "%q[%d:%d]", tt.text, tt.start, tt.end)
	}
}

func TestSubstring_Empty(t *testing.T) {
	assert.Equal(t, "", substring(t, "a", 1, 1))
	assert.Equal(t, "", substring(t, "Testing", 3, 3))
	assert.Equal(t, "", substring(t, man, 1, 1))
}

func TestSubstring_Identity(t *testing.T) {
	s := String{0xDC68, 'a', 0xD83D}
	result, err := Substring(s, 0, s.Len())
	require.NoError(t, err)
	assert.Equal(t, s, result)

	empty, err := Substring(String{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestSubstringBounds(t *testing.T) {
	s := FromString(man + "a" + man)

	tests := []struct {
		name       string
		start, end int
		opts       []Option
		from, to   int
	}{
		{name: "identity", start: 0, end: 5, from: 0, to: 5},
		{name: "include both", start: 1, end: 4, from: 0, to: 5},
		{name: "exclude both", start: 1, end: 4, opts: []Option{WithIncludeStart(false), WithIncludeEnd(false)}, from: 2, to: 3},
		{name: "prefix pulls pair in", start: 0, end: 1, from: 0, to: 2},
		{name: "prefix drops pair", start: 0, end: 1, opts: []Option{WithIncludeEnd(false)}, from: 0, to: 0},
		{name: "empty", start: 2, end: 2, from: 2, to: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := SubstringBounds(s, tt.start, tt.end, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)

			result, err := Substring(s, tt.start, tt.end, tt.opts...)
			require.NoError(t, err)
			assert.True(t, result.Equal(s[from:to]))
		})
	}

	_, _, err := SubstringBounds(s, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSubstring_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    int
		end      int
		sentinel error
		message  string
	}{
		{
			name:     "negative start",
			text:     "a",
			start:    -1,
			end:      0,
			sentinel: ErrOutOfRange,
			message:  "substring: start index -1 not valid in string of length 1: index out of range",
		},
		{
			name:     "end past length",
			text:     "a",
			start:    0,
			end:      2,
			sentinel: ErrOutOfRange,
			message:  "substring: end index 2 not valid in string of length 1: index out of range",
		},
		{
			name:     "end before start",
			text:     "a",
			start:    1,
			end:      0,
			sentinel: ErrInvalidRange,
			message:  "substring: end index 0 precedes start index 1: invalid range",
		},
		{
			name:     "start past length",
			text:     "a",
			start:    10,
			end:      11,
			sentinel: ErrOutOfRange,
			message:  "substring: start index 10 not valid in string of length 1: index out of range",
		},
		{
			name:     "end before start in longer string",
			text:     "abc",
			start:    2,
			end:      1,
			sentinel: ErrInvalidRange,
			message:  "substring: end index 1 precedes start index 2: invalid range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Substring(FromString(tt.text), tt.start, tt.end)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.EqualError(t, err, tt.message)

			var idxErr *IndexError
			require.True(t, errors.As(err, &idxErr))
			assert.Equal(t, tt.start, idxErr.Start)
			assert.Equal(t, tt.end, idxErr.End)
			assert.Equal(t, FromString(tt.text).Len(), idxErr.Length)
		})
	}
}

func FuzzSubstring(f *testing.F) {
	f.Add(man+"a"+man, 1, 4)
	f.Add("a"+man, 0, 2)
	f.Add("hello", 2, 2)

	f.Fuzz(func(t *testing.T, text string, start, end int) {
		s := FromString(text)
		result, err := Substring(s, start, end)

		valid := start >= 0 && start <= end && end <= s.Len()
		if !valid {
			if err == nil {
				t.Fatalf("Substring(%q, %d, %d) accepted an invalid range", text, start, end)
			}
			return
		}
		if err != nil {
			t.Fatalf("Substring(%q, %d, %d): %v", text, start, end, err)
		}
		if n := result.Len(); n > 0 {
			if isLowSurrogate(result[0]) {
				t.Fatalf("Substring(%q, %d, %d) begins with a low surrogate", text, start, end)
			}
			if isHighSurrogate(result[n-1]) {
				t.Fatalf("Substring(%q, %d, %d) ends with a high surrogate", text, start, end)
			}
		}
	})
}
