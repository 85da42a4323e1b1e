package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/etfcalc/etf-calculator/internal/domain"
	"github.com/etfcalc/etf-calculator/internal/output"
)

//go:embed docs.md
var formulaDocs string

func newDocsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show the finance formula reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), formulaDocs)
				return nil
			}
			rendered, err := renderMarkdown(formulaDocs)
			if err != nil {
				// fall back to the raw markdown
				fmt.Fprint(cmd.OutOrStdout(), formulaDocs)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without terminal styling")
	return cmd
}

// renderMarkdown styles markdown for the terminal.
func renderMarkdown(source string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(source)
}

// renderMarkdownToTerminal formats the report as markdown and writes the
// styled result to the command's stdout, falling back to the raw markdown
// when no terminal styling is possible.
func renderMarkdownToTerminal(cmd *cobra.Command, report *domain.ProjectionReport) error {
	data, err := output.MarkdownFormatter{}.Format(report)
	if err != nil {
		return err
	}
	rendered, err := renderMarkdown(string(data))
	if err != nil {
		_, werr := cmd.OutOrStdout().Write(data)
		return werr
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
