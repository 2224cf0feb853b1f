package cmd

import (
	"asciimaid/render"
	"asciimaid/viewer"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// showViewer is replaced in tests.
var showViewer = viewer.Show

func newViewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Render a diagram and page through it in the terminal",
		Long: `view renders the diagram as ASCII art and opens it in a scrollable pager.

Keys: arrows or hjkl scroll, PgUp/PgDn page, Home/g top, End/G bottom,
q, Esc or Ctrl-C quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			parts := make([]string, 0, len(diagrams))
			for _, d := range diagrams {
				out, err := render.Render(d, opts.cfg.Render)
				if err != nil {
					return err
				}
				parts = append(parts, out)
			}

			title := "stdin"
			if len(args) == 1 {
				title = filepath.Base(args[0])
			}
			return showViewer(strings.Join(parts, "\n\n"), title)
		},
	}
}
