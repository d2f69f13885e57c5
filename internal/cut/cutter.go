package cut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/haccht/sbcut/internal/rangespec"
	"github.com/haccht/sbcut/internal/segment"
)

// Cutter holds everything needed to cut a stream of lines.
// The range list is kept as text because it is resolved per line.
type Cutter struct {
	Mode            segment.Mode
	Spec            string
	Delimiter       string
	OutputDelimiter string
	Complement      bool
	OnlyDelimited   bool
	ZeroTerminated  bool

	Logger *slog.Logger
}

// Line cuts a single record. A range list that does not parse against this
// line's length returns an error wrapping rangespec.ErrInvalidRange.
func (c *Cutter) Line(line string) (string, error) {
	units := segment.Split(line, c.Mode, c.Delimiter)

	ranges, err := rangespec.ParseList(c.Spec, len(units))
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		set := rangespec.Select(r, len(units), c.Complement)
		kept := Assemble(units, set, r.Reversed(), c.Complement)
		parts = append(parts, strings.Join(kept, c.OutputDelimiter))
	}
	return strings.Join(parts, c.OutputDelimiter), nil
}

// Run cuts every record read from r and writes the results to w.
// A record whose range list is invalid is replaced by the error text and
// processing continues with the next record.
func (c *Cutter) Run(r io.Reader, w io.Writer) error {
	term := c.terminator()
	logger := c.logger()

	br := bufio.NewReaderSize(r, 1<<20)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for lineno := 1; ; lineno++ {
		record, err := br.ReadString(term)
		if err != nil && err != io.EOF {
			return fmt.Errorf("unable to read: %w", err)
		}
		if record == "" && err == io.EOF {
			return nil
		}
		line := strings.TrimSuffix(record, string(term))

		if c.skip(line) {
			logger.Debug("skipping undelimited line", "line", lineno)
		} else {
			out, cerr := c.Line(line)
			if cerr != nil {
				if !errors.Is(cerr, rangespec.ErrInvalidRange) {
					return cerr
				}
				logger.Debug("range list rejected", "line", lineno, "error", cerr)
				out = rangespec.ErrInvalidRange.Error()
			}
			bw.WriteString(out)
			bw.WriteByte(term)
			if ferr := bw.Flush(); ferr != nil {
				return fmt.Errorf("unable to write: %w", ferr)
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

func (c *Cutter) skip(line string) bool {
	return c.OnlyDelimited && c.Mode == segment.Fields && !strings.Contains(line, c.Delimiter)
}

func (c *Cutter) terminator() byte {
	if c.ZeroTerminated {
		return 0
	}
	return '\n'
}

func (c *Cutter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
