package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/csvpeek"
)

// CommandType is the action selected by the command line.
type CommandType int

const (
	Head CommandType = iota
	Tail
	ColumnName
	ColumnIndex
	Help
)

// String returns the command name.
func (c CommandType) String() string {
	switch c {
	case Head:
		return "head"
	case Tail:
		return "tail"
	case ColumnName:
		return "column-name"
	case ColumnIndex:
		return "column-index"
	case Help:
		return "help"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

const defaultRows = 10

// Config is the parsed and validated command line.
type Config struct {
	InputFile   string
	Command     CommandType
	HasHeader   bool
	Pretty      bool
	NumRows     *int
	ColumnName  *string
	ColumnIndex *int
	Separator   byte
	Format      csvpeek.Format
	MaxWidth    int
	LogLevel    string
	LogFormat   string
}

// flags holds raw flag values before they are turned into a Config.
type flags struct {
	first       int
	last        int
	columnName  string
	columnIndex int
	sep         string
	pretty      bool
	noHeader    bool
	format      string
	maxWidth    int
	logLevel    string
	logFormat   string
	configFile  string
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.first, "first", "f", defaultRows, "show the N first rows")
	fs.IntVarP(&f.last, "last", "l", defaultRows, "show the N last rows")
	fs.StringVarP(&f.columnName, "column-name", "n", "", "show the column with this header name")
	fs.IntVarP(&f.columnIndex, "column-index", "i", 0, "show the column at this 1-based index")
	fs.StringVarP(&f.sep, "sep", "s", ",", `field separator, a single byte ("\t" or "tab" for tabs)`)
	fs.BoolVar(&f.pretty, "pretty", false, "print aligned, truncated columns (same as --format pretty)")
	fs.BoolVar(&f.noHeader, "no-header", false, "the file does not have a header row")
	fs.StringVar(&f.format, "format", string(csvpeek.Raw), "output format: raw|pretty|csv|tsv|markdown|html|json|jsonl|yaml|go-template=<tmpl>")
	fs.IntVar(&f.maxWidth, "max-width", csvpeek.DefaultMaxWidth, "widest pretty column before truncation")
	fs.StringVar(&f.logLevel, "log-level", "error", "log level: debug|info|warn|error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text|json|json-pretty")
	fs.StringVar(&f.configFile, "config", "", "YAML file with default flag values")
}

// modeFlags lists the row selection flags in precedence order.
var modeFlags = []string{"first", "last", "column-name", "column-index"}

// changedFlags returns the names of the flags set on the command line.
func changedFlags(fs *pflag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { set[f.Name] = true })
	return set
}

// selectMode returns the mode flag to act on. Mode flags given on the command
// line are considered first; flags filled from the environment or a config
// file only apply when the command line names no mode.
func selectMode(fs *pflag.FlagSet, explicit map[string]bool) string {
	for _, name := range modeFlags {
		if explicit[name] {
			return name
		}
	}
	for _, name := range modeFlags {
		if fs.Changed(name) {
			return name
		}
	}
	return ""
}

// newConfig builds a Config from parsed flags and positional arguments.
// explicit holds the flags set on the command line itself, as returned by
// changedFlags before the environment is bound. When several modes are
// given, help wins, then first, last, column-name and column-index in that
// order.
func newConfig(cmd *cobra.Command, f *flags, args []string, explicit map[string]bool) (*Config, error) {
	fs := cmd.Flags()
	cfg := &Config{
		HasHeader: !f.noHeader,
		Pretty:    f.pretty,
		MaxWidth:  f.maxWidth,
		LogLevel:  f.logLevel,
		LogFormat: f.logFormat,
	}
	if len(args) > 0 {
		cfg.InputFile = args[0]
	}

	sep, err := parseSeparator(f.sep)
	if err != nil {
		return nil, err
	}
	cfg.Separator = sep

	format, err := csvpeek.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	mode := selectMode(fs, explicit)
	switch {
	case cfg.InputFile == "":
		cfg.Command = Help
	case mode == "first":
		cfg.Command = Head
		cfg.NumRows = &f.first
	case mode == "last":
		cfg.Command = Tail
		cfg.NumRows = &f.last
	case mode == "column-name":
		if !cfg.HasHeader {
			return nil, fmt.Errorf("%w: --column-name can only be used with files that have a header row", csvpeek.ErrMissingHeader)
		}
		cfg.Command = ColumnName
		cfg.ColumnName = &f.columnName
	case mode == "column-index":
		cfg.Command = ColumnIndex
		cfg.ColumnIndex = &f.columnIndex
	default:
		n := defaultRows
		cfg.Command = Head
		cfg.NumRows = &n
	}

	if cfg.NumRows != nil && *cfg.NumRows < 0 {
		return nil, fmt.Errorf("%w: row count must not be negative, got %d", csvpeek.ErrInvalidSelection, *cfg.NumRows)
	}
	return cfg, nil
}

// parseSeparator accepts a single byte, or "\t" / "tab" for a tab.
func parseSeparator(s string) (byte, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("separator must be a single byte, got %q", s)
	}
	switch s[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("separator %q is not allowed", s)
	}
	return s[0], nil
}

// Selection maps the command to a row selection.
func (c *Config) Selection() (csvpeek.Selection, error) {
	switch c.Command {
	case Head:
		return csvpeek.Head(*c.NumRows), nil
	case Tail:
		return csvpeek.Tail(*c.NumRows), nil
	case ColumnName:
		return csvpeek.Column(csvpeek.ByName(*c.ColumnName)), nil
	case ColumnIndex:
		return csvpeek.Column(csvpeek.ByIndex(*c.ColumnIndex)), nil
	default:
		return csvpeek.Selection{}, fmt.Errorf("%w: command %s selects no rows", csvpeek.ErrInvalidSelection, c.Command)
	}
}

// RenderFormat returns the output format; --pretty overrides --format.
func (c *Config) RenderFormat() csvpeek.Format {
	if c.Pretty {
		return csvpeek.Pretty
	}
	return c.Format
}

// Options returns the decoder options for the input file.
func (c *Config) Options() csvpeek.Options {
	return csvpeek.Options{Comma: rune(c.Separator), HasHeader: c.HasHeader}
}
