package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and index changed files",
	Long: `Watches the given directories and re-indexes supported files as they
are created or modified. Events are debounced so an editor writing a
file several times in quick succession triggers one ingestion.

Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	cmd.Printf("Watching %d directories. Press Ctrl+C to stop.\n", len(args))

	if err := watchService.Watch(cmd.Context(), args); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
