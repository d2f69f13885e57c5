// Package rangespec parses start:end:step range lists and resolves them
// against the length of a segmented line.
//
// A list is a comma separated sequence of ranges. Each range is one of
//
//	K        the single unit K
//	A:B      units A up to, but not including, B
//	A:B:C    the same, taking every C-th unit; a negative C reverses the output
//
// Any component may be omitted: start defaults to 0, end to the line length n
// and step to 1. Negative indices count back from the end of the line.
package rangespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned for every malformed range token.
var ErrInvalidRange = errors.New("invalid range")

// Range is a half-open [Start, End) interval walked by Step.
type Range struct {
	Start int
	End   int
	Step  int
}

// String formats r so that Parse reads it back unchanged.
func (r Range) String() string {
	return fmt.Sprintf("%d:%d:%d", r.Start, r.End, r.Step)
}

// Reversed reports whether output selected by r comes out back to front.
func (r Range) Reversed() bool {
	return r.Step < 0
}

// ParseList parses a comma separated range list. The defaults depend on n,
// so a list is parsed again for every line.
func ParseList(spec string, n int) ([]Range, error) {
	var ranges []Range
	for _, token := range strings.Split(spec, ",") {
		r, err := Parse(token, n)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// Parse parses a single range token against a line of n units.
func Parse(token string, n int) (Range, error) {
	if token == "" {
		return Range{}, fmt.Errorf("%w: empty range", ErrInvalidRange)
	}

	parts := strings.Split(token, ":")
	if len(parts) > 3 {
		return Range{}, fmt.Errorf("%w %q: too many colons", ErrInvalidRange, token)
	}

	start, err := parseIndex(parts[0], 0)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: %s", ErrInvalidRange, token, err)
	}

	if len(parts) == 1 {
		return Range{Start: start, End: start + 1, Step: 1}, nil
	}

	end, err := parseIndex(parts[1], n)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: %s", ErrInvalidRange, token, err)
	}

	step := 1
	if len(parts) == 3 {
		step, err = parseIndex(parts[2], 1)
		if err != nil {
			return Range{}, fmt.Errorf("%w %q: %s", ErrInvalidRange, token, err)
		}
	}

	return Range{Start: start, End: end, Step: step}, nil
}

// parseIndex accepts an optional leading '-' followed by decimal digits.
// An empty string yields def.
func parseIndex(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, fmt.Errorf("missing digits in %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("unexpected %q in %q", digits[i], s)
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("out of range %q", s)
	}
	return v, nil
}
