package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	searchLimit   int
	searchContext bool
)

var (
	resultTitleStyle = lipgloss.NewStyle().Bold(true)
	resultScoreStyle = lipgloss.NewStyle().Faint(true)
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Embeds the query and ranks every stored chunk by cosine similarity,
returning the closest matches.

With --context the matched chunk texts are printed as a single blob,
separated by the configured delimiter, ready to paste into a prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 3, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchContext, "context", false, "print raw context blob")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	if searchContext {
		blob, err := searchService.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		cmd.Println(blob)
		return nil
	}

	results, err := searchService.SearchResults(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		header := fmt.Sprintf("[%d] %s", i+1, results[i].Chunk.SourcePath)
		score := fmt.Sprintf("(%.4f)", results[i].Score)
		cmd.Printf("  %s %s\n", resultTitleStyle.Render(header), resultScoreStyle.Render(score))
		cmd.Printf("      %s\n", snippet(results[i].Chunk.Content))
		cmd.Println()
	}

	return nil
}

// snippet trims a chunk to a single display line.
func snippet(content string) string {
	const maxLen = 160
	runes := []rune(content)
	if len(runes) > maxLen {
		content = string(runes[:maxLen]) + "…"
	}
	out := make([]rune, 0, len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}
