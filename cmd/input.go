package cmd

import (
	"asciimaid/diagram"
	"asciimaid/importer"
	"asciimaid/logging"
	"asciimaid/markdown"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errNoInput is returned when the file or stdin holds nothing but whitespace.
var errNoInput = errors.New("no input provided")

// readInput returns the content of the file argument, or of stdin when no
// argument is given, along with a name for the source.
func readInput(cmd *cobra.Command, args []string) (content, source string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		warn(cmd.ErrOrStderr(), "Reading diagram from the terminal, press Ctrl-D when done.")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// load reads and imports the diagrams named by args. A markdown file yields
// one diagram per selected mermaid block; anything else yields one diagram.
func (o *rootOptions) load(cmd *cobra.Command, args []string) ([]*diagram.Diagram, error) {
	content, source, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errNoInput
	}
	logging.Logger.WithFields(logrus.Fields{
		"source": source,
		"bytes":  len(content),
	}).Debug("read input")

	registry := importer.NewImporterRegistry()

	if len(args) == 1 && markdown.IsMarkdownFile(source) {
		blocks, err := markdown.Select(markdown.FindBlocks(content), o.block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		diagrams := make([]*diagram.Diagram, 0, len(blocks))
		for _, b := range blocks {
			d, err := registry.ImportWithFormat(b.Content, "mermaid")
			if err != nil {
				return nil, fmt.Errorf("importing %s block at line %d: %w", source, b.StartLine, err)
			}
			logImported(d)
			diagrams = append(diagrams, d)
		}
		return diagrams, nil
	}

	var d *diagram.Diagram
	switch {
	case o.inputFormat != "":
		d, err = registry.ImportWithFormat(content, o.inputFormat)
	case len(args) == 1:
		d, err = registry.ImportFile(source, content)
	default:
		d, err = registry.Import(content)
	}
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", source, err)
	}
	logImported(d)
	return []*diagram.Diagram{d}, nil
}

func logImported(d *diagram.Diagram) {
	fields := logrus.Fields{"type": d.Type}
	if d.Type == diagram.TypeSequence {
		fields["participants"] = len(d.Participants)
		fields["messages"] = len(d.Messages)
	} else {
		fields["direction"] = d.Direction
		fields["nodes"] = d.Nodes.Len()
		fields["edges"] = len(d.Edges)
	}
	logging.Logger.WithFields(fields).Debug("imported diagram")
}
