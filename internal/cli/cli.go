// Package cli implements the csvpeek command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/csvpeek"
	"github.com/bjaus/csvpeek/internal/logging"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks problems with the command line itself rather than with
// the input file.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// NewCommand returns the root csvpeek command writing tables to stdout and
// logs to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "csvpeek FILE [options]",
		Short: "Show the head, tail or a single column of a delimited file",
		Long: `csvpeek prints a window of a CSV/TSV file.

By default the first 10 rows are shown. Use --first or --last to pick a row
count from either end, or --column-name / --column-index to show a single
column. Fields are printed quoted and comma-joined unless --pretty (or another
--format) is given.`,
		Example: "  csvpeek wine.csv -f 3\n  csvpeek wine.csv -l 5 --pretty\n  csvpeek wine.csv -n Proanth\n  csvpeek data.tsv -s tab -i 2 --no-header",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError{fmt.Errorf("accepts at most 1 file, received %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := changedFlags(cmd.Flags())
			if err := bindEnvironment(cmd, f.configFile); err != nil {
				return usageError{err}
			}
			cfg, err := newConfig(cmd, f, args, explicit)
			if err != nil {
				return usageError{err}
			}
			if cfg.Command == Help {
				return cmd.Help()
			}
			log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return usageError{err}
			}
			return Run(cfg, stdout, log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	f.register(cmd)
	return cmd
}

// Run opens the input, selects rows and writes the rendered table to w.
// Nothing is written unless selection and rendering both succeed.
func Run(cfg *Config, w io.Writer, log logrus.FieldLogger) error {
	sel, err := cfg.Selection()
	if err != nil {
		return err
	}
	format := cfg.RenderFormat()
	entry := log.WithFields(logrus.Fields{
		"file":      cfg.InputFile,
		"selection": sel.String(),
		"format":    format.String(),
	})

	src, err := csvpeek.Open(cfg.InputFile, cfg.Options())
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			entry.WithError(err).Warn("Failed to close input.")
		}
	}()
	entry.WithField("header", src.Header() != nil).Debug("Opened input.")

	t, err := csvpeek.Select(src, sel)
	if err != nil {
		return err
	}
	entry.WithField("rows", len(t.Rows)).Debug("Selected rows.")

	out, err := csvpeek.Marshal(format, t, csvpeek.WithMaxWidth(cfg.MaxWidth))
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	entry.WithField("bytes", len(out)).Debug("Rendered table.")
	return nil
}

// Execute runs the command with args and returns the process exit status.
// Errors are reported on stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
	}
	return ExitCode(err)
}
