package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/haccht/sbcut/internal/cut"
	"github.com/haccht/sbcut/internal/logging"
	"github.com/haccht/sbcut/internal/segment"
)

const defaultDelimiter = "\t"

type options struct {
	Bytes      string `short:"b" long:"bytes" value-name:"LIST" description:"Select only these bytes"`
	Characters string `short:"c" long:"characters" value-name:"LIST" description:"Select only these characters"`
	Graphemes  string `short:"g" long:"graphemes" value-name:"LIST" description:"Select only these grapheme clusters"`
	Fields     string `short:"f" long:"fields" value-name:"LIST" description:"Select only these fields"`

	Delimiter       string `short:"d" long:"delimiter" value-name:"DELIM" description:"Field delimiter (default: TAB)"`
	OutputDelimiter string `long:"output-delimiter" value-name:"STRING" description:"Separator used when joining selected units (default: delimiter for fields, empty otherwise)"`
	Complement      bool   `long:"complement" description:"Complement the set of selected units"`
	OnlyDelimited   bool   `short:"s" long:"only-delimited" description:"Do not print lines not containing delimiters"`
	ZeroTerminated  bool   `short:"z" long:"zero-terminated" description:"Line delimiter is NUL, not newline"`

	Verbose   bool   `short:"v" long:"verbose" description:"Log diagnostics at debug level"`
	LogLevel  string `long:"log-level" env:"SBCUT_LOG_LEVEL" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Log level"`
	LogFormat string `long:"log-format" env:"SBCUT_LOG_FORMAT" default:"auto" choice:"auto" choice:"text" choice:"json" description:"Log format"`
}

func newCutter(p *flags.Parser, opts *options) (*cut.Cutter, error) {
	lists := []struct {
		long string
		mode segment.Mode
		spec string
	}{
		{"bytes", segment.Bytes, opts.Bytes},
		{"characters", segment.Characters, opts.Characters},
		{"graphemes", segment.Graphemes, opts.Graphemes},
		{"fields", segment.Fields, opts.Fields},
	}

	c := &cut.Cutter{
		Complement:     opts.Complement,
		OnlyDelimited:  opts.OnlyDelimited,
		ZeroTerminated: opts.ZeroTerminated,
	}

	var count int
	for _, l := range lists {
		if isSet(p, l.long) {
			c.Mode, c.Spec = l.mode, l.spec
			count++
		}
	}
	if count != 1 {
		return nil, errors.New("you must specify exactly one list of bytes, characters, graphemes or fields")
	}

	c.Delimiter = defaultDelimiter
	if isSet(p, "delimiter") {
		if opts.Delimiter == "" {
			return nil, errors.New("the delimiter must not be empty")
		}
		if c.Mode != segment.Fields {
			return nil, errors.New("a delimiter may be specified only when operating on fields")
		}
		c.Delimiter = opts.Delimiter
	}
	if opts.OnlyDelimited && c.Mode != segment.Fields {
		return nil, errors.New("suppressing non-delimited lines makes sense only when operating on fields")
	}

	switch {
	case isSet(p, "output-delimiter"):
		c.OutputDelimiter = opts.OutputDelimiter
	case c.Mode == segment.Fields:
		c.OutputDelimiter = c.Delimiter
	}

	return c, nil
}

func isSet(p *flags.Parser, long string) bool {
	opt := p.FindOptionByLongName(long)
	return opt != nil && opt.IsSet()
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = "sbcut"
	p.Usage = "(-b|-c|-g|-f) LIST [OPTIONS] [FILE...]"

	args, err := p.ParseArgs(argv)
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, fe.Message)
			return nil
		}
		return err
	}

	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Format: opts.LogFormat, Output: stderr})
	if err != nil {
		return err
	}

	c, err := newCutter(p, &opts)
	if err != nil {
		return err
	}
	c.Logger = logger
	logger.Debug("cutting", "mode", c.Mode, "list", c.Spec, "complement", c.Complement)

	if len(args) == 0 {
		args = []string{"-"}
	}

	var errs []error
	for _, name := range args {
		if err := cutFile(c, name, stdin, stdout); err != nil {
			logger.Debug("file failed", "file", name, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func cutFile(c *cut.Cutter, name string, stdin io.Reader, stdout io.Writer) error {
	if name == "-" {
		return c.Run(stdin, stdout)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Run(f, stdout); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		for _, msg := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "sbcut: %s\n", msg)
		}
		os.Exit(1)
	}
}
