// Package segment splits a line into the units that ranges address.
package segment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Mode selects what a unit is.
type Mode int

const (
	Bytes Mode = iota
	Characters
	Graphemes
	Fields
)

var modeNames = map[Mode]string{
	Bytes:      "bytes",
	Characters: "characters",
	Graphemes:  "graphemes",
	Fields:     "fields",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode called name.
func ParseMode(name string) (Mode, error) {
	for m, s := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Split segments line under mode. delim is only used by Fields.
// An empty line always yields no units.
func Split(line string, mode Mode, delim string) []string {
	if line == "" {
		return nil
	}

	switch mode {
	case Bytes:
		return splitBytes(line)
	case Characters:
		return splitRunes(line)
	case Graphemes:
		return splitGraphemes(line)
	case Fields:
		return strings.Split(line, delim)
	}
	return nil
}

func splitBytes(line string) []string {
	units := make([]string, 0, len(line))
	for i := 0; i < len(line); i++ {
		units = append(units, byteUnit(line[i]))
	}
	return units
}

// byteUnit renders an ASCII byte as itself and any other byte as 0xhh.
func byteUnit(b byte) string {
	if b < utf8.RuneSelf {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

func splitRunes(line string) []string {
	units := make([]string, 0, utf8.RuneCountInString(line))
	for _, r := range line {
		units = append(units, string(r))
	}
	return units
}

func splitGraphemes(line string) []string {
	units := make([]string, 0, uniseg.GraphemeClusterCount(line))
	state := -1
	for rest := line; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		units = append(units, cluster)
	}
	return units
}
