package truncate

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/utf16kit/utf16str"
)

// Strategy defines how text is truncated.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// DefaultEndSuffix is the default suffix for end truncation.
const DefaultEndSuffix = "..."

// DefaultMiddleSuffix is the default suffix for middle truncation.
const DefaultMiddleSuffix = "\n...[content truncated]...\n"

// DefaultStartSuffix is the default suffix for start truncation.
const DefaultStartSuffix = "..."

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown truncation strategy")

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case FromEnd:
		return "end"
	case FromMiddle:
		return "middle"
	case FromStart:
		return "start"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "end", "middle" or "start" to a Strategy.
// The empty string selects FromEnd.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "end":
		return FromEnd, nil
	case "middle":
		return FromMiddle, nil
	case "start":
		return FromStart, nil
	default:
		return FromEnd, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Truncator truncates text to fit within a UTF-16 code unit limit.
type Truncator struct {
	strategy Strategy
	suffix   string
}

// New creates a truncator with the given strategy.
func New(strategy Strategy) *Truncator {
	suffix := DefaultEndSuffix
	switch strategy {
	case FromMiddle:
		suffix = DefaultMiddleSuffix
	case FromStart:
		suffix = DefaultStartSuffix
	}
	return &Truncator{
		strategy: strategy,
		suffix:   suffix,
	}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator {
	return New(FromEnd)
}

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator {
	return New(FromMiddle)
}

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator {
	return New(FromStart)
}

// WithSuffix sets a custom suffix for truncation.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// Truncate reduces the text to at most maxUnits UTF-16 code units,
// suffix included. Returns the truncated text and whether truncation
// occurred. If the suffix alone does not fit, the result is the suffix cut
// to maxUnits. Kept text is sliced from the input, so invalid UTF-8 bytes
// survive unchanged and count as one unit each.
func (t *Truncator) Truncate(text string, maxUnits int) (string, bool) {
	if utf16str.CountUnits(text) <= maxUnits {
		return text, false
	}

	target := maxUnits - utf16str.CountUnits(t.suffix)
	if target <= 0 {
		cut, _ := ToUnits(t.suffix, maxUnits)
		return cut, true
	}

	s := utf16str.FromString(text)
	switch t.strategy {
	case FromMiddle:
		return t.truncateMiddle(text, s, target), true
	case FromStart:
		return t.truncateStart(text, s, target), true
	default:
		return t.truncateEnd(text, s, target), true
	}
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Suffix returns the truncator's suffix.
func (t *Truncator) Suffix() string {
	return t.suffix
}
