// Package cut applies range lists to lines of text.
package cut

import (
	"slices"

	"github.com/haccht/sbcut/internal/rangespec"
)

// Assemble keeps the units whose index is in set, or not in set when
// complement is true, in their original order. The result is reversed as a
// whole when reverse is true.
func Assemble(units []string, set rangespec.Set, reverse, complement bool) []string {
	kept := make([]string, 0, len(units))
	for i, u := range units {
		if set.Contains(i) != complement {
			kept = append(kept, u)
		}
	}
	if reverse {
		slices.Reverse(kept)
	}
	return kept
}
