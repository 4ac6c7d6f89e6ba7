package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jfmyers9/kavalock/internal/config"
	"github.com/jfmyers9/kavalock/internal/history"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past lock runs",
	Long: `Show recent lock runs recorded in the local history database
(~/.local/share/kavalock/history.db), newest first.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := history.Open(filepath.Join(config.GetDataDir(), "history.db"))
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		mode := ""
		if run.DryRun {
			mode = "dry run"
		}
		rows = append(rows, []string{
			run.StartedAt.Format("2006-01-02 15:04"),
			strings.Join(run.Libraries, ", "),
			strings.Join(run.Fields, ", "),
			strconv.Itoa(run.Total),
			strconv.Itoa(run.Locked),
			strconv.Itoa(run.Skipped),
			mode,
		})
	}
	fmt.Println(renderTable(
		[]string{"Started", "Libraries", "Fields", "Total", "Locked", "Skipped", "Mode"},
		rows, 4, 5, 6))
	return nil
}
