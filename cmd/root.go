// Package cmd implements the asciimaid command line.
package cmd

import (
	"asciimaid/config"
	"asciimaid/export"
	"asciimaid/logging"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions holds the flag values and the configuration loaded for one run.
type rootOptions struct {
	cfgFile     string
	logFile     string
	verbose     bool
	output      string
	format      string
	inputFormat string
	block       int

	cfg *config.Config
}

// NewRootCmd builds the asciimaid command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "asciimaid [file]",
		Short: "Render Mermaid diagrams as ASCII art",
		Long: `asciimaid reads a Mermaid flowchart, state diagram or sequence diagram
from a file or stdin and draws it as plain ASCII text.

The layout can also be exported as JSON or YAML, or written back as Mermaid.`,
		Example: `  asciimaid flow.mmd
  cat flow.mmd | asciimaid
  asciimaid -f json -o layout.json flow.mmd
  asciimaid --block 2 README.md
  asciimaid view sequence.mmd`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.asciimaid.yaml)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log each processing step")
	pf.StringVar(&opts.inputFormat, "input-format", "", "input format: mermaid, json (auto-detected when empty)")
	pf.IntVar(&opts.block, "block", 0, "render only the Nth mermaid block of a markdown file (1-based, 0 = all)")

	f := root.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	f.StringVarP(&opts.format, "format", "f", string(export.FormatASCII), "output format: ascii, json, yaml, mermaid")

	root.AddCommand(newViewCmd(opts), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := finish(NewRootCmd().Execute(), logging.Close)
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// finish closes the log file and folds a close failure into err.
func finish(err error, closeLog func() error) error {
	cerr := closeLog()
	switch {
	case cerr == nil:
		return err
	case err == nil:
		return fmt.Errorf("closing log file: %w", cerr)
	default:
		return fmt.Errorf("%w (closing log file: %v)", err, cerr)
	}
}

// setup loads the configuration and configures logging.
func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logOpts := cfg.Log
	logOpts.Verbose = o.verbose
	if o.logFile != "" {
		logOpts.File = o.logFile
	}
	if err := logging.Init(logOpts); err != nil {
		return err
	}

	if cfg.File != "" {
		logging.Logger.WithField("path", cfg.File).Debug("loaded config")
	}
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format, o.cfg.Render)
	if err != nil {
		return err
	}

	diagrams, err := o.load(cmd, args)
	if err != nil {
		return err
	}

	parts := make([]string, 0, len(diagrams))
	for _, d := range diagrams {
		part, err := exporter.Export(d)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", exporter.GetFormatName(), err)
		}
		parts = append(parts, strings.TrimRight(part, "\n"))
	}
	out := strings.Join(parts, "\n\n") + "\n"

	if o.output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	if err := os.WriteFile(o.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logging.Logger.WithFields(logrus.Fields{
		"path":   o.output,
		"format": format,
		"bytes":  len(out),
	}).Debug("wrote output")
	return nil
}

// printError writes err to w with a red "Error:" prefix.
func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}

// warn writes a yellow warning line to w.
func warn(w io.Writer, msg string) {
	color.New(color.FgYellow).Fprintln(w, msg)
}
