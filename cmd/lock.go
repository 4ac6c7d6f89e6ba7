package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jfmyers9/kavalock/internal/config"
	"github.com/jfmyers9/kavalock/internal/history"
	"github.com/jfmyers9/kavalock/internal/lockfield"
	"github.com/jfmyers9/kavalock/internal/locker"
	"github.com/jfmyers9/kavalock/pkg/kavita"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	lockURL         string
	lockUsername    string
	lockAPIKey      string
	lockFields      string
	lockLibraryIDs  string
	lockHideSkipped bool
	lockDryRun      bool
	lockLogLevel    string
)

// lockCmd represents the lock command
var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock metadata fields across selected libraries",
	Long: `Lock metadata fields for every series in the selected libraries.

For each series, kavalock fetches the full metadata object and checks the
selected fields. A series is updated only when at least one selected field
is unlocked and holds a non-empty value; the update sets the lock flag on
every selected field while leaving all other metadata untouched.

Connection details, fields and libraries can be supplied via flags; any
that are missing fall back to the config file and then to interactive
prompts. Field names match labels or metadata keys, case-insensitively
(e.g. "Genres", "genres", "Age Rating", "ageRating").`,
	RunE: runLock,
}

func init() {
	rootCmd.AddCommand(lockCmd)

	// Command-line flags
	lockCmd.Flags().StringVarP(&lockURL, "url", "u", "", "Kavita server URL (e.g. https://kavita.example.com)")
	lockCmd.Flags().StringVarP(&lockUsername, "username", "U", "", "Username for authentication")
	lockCmd.Flags().StringVarP(&lockAPIKey, "api-key", "k", "", "API key for authentication")
	lockCmd.Flags().StringVarP(&lockFields, "fields", "f", "", "Comma-separated metadata fields (keys or labels) to lock")
	lockCmd.Flags().StringVarP(&lockLibraryIDs, "library-ids", "l", "", "Comma-separated library IDs to process")
	lockCmd.Flags().BoolVar(&lockHideSkipped, "hide-skipped", false, "Do not report skipped series")
	lockCmd.Flags().BoolVar(&lockDryRun, "dry-run", false, "Report what would be locked without updating anything")
	lockCmd.Flags().StringVar(&lockLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runLock(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := setupLogger(lockLogLevel)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	server, err := resolveServer(cfg, lockURL, lockUsername, lockAPIKey)
	if err != nil {
		return err
	}

	// Field selection
	interactive := lockFields == ""
	var selection []lockfield.Spec
	if interactive {
		selection, err = promptFields()
		if err != nil {
			return err
		}
	} else {
		var unknown []string
		selection, unknown = lockfield.Parse(strings.Split(lockFields, ","))
		for _, name := range unknown {
			logger.Warn().Str("field", name).Msg("Unknown field, skipping")
		}
		if len(selection) == 0 {
			return fmt.Errorf("no valid fields provided")
		}
	}

	hideSkipped := lockHideSkipped || cfg.HideSkipped
	if interactive && !cmd.Flags().Changed("hide-skipped") {
		hideSkipped = promptYesNo("Do you want to hide skipped series messages? (y/n): ")
		fmt.Println("\nLogging in…")
	}

	// Connect and authenticate
	client, err := kavita.NewClient(kavita.Config{
		BaseURL:  server.URL,
		Username: server.Username,
		APIKey:   server.APIKey,
		Logger:   zerologAdapter{logger},
	})
	if err != nil {
		return err
	}
	if err := client.Login(ctx); err != nil {
		return err
	}

	// Library selection
	libs, err := client.Libraries(ctx)
	if err != nil {
		return err
	}
	if len(libs) == 0 {
		return fmt.Errorf("no libraries found")
	}

	var chosen []kavita.Library
	if lockLibraryIDs != "" {
		ids, err := parseLibraryIDs(lockLibraryIDs)
		if err != nil {
			return err
		}
		chosen = filterLibraries(libs, ids)
		if len(chosen) == 0 {
			return fmt.Errorf("no matching libraries found")
		}
	} else {
		chosen, err = promptLibraries(libs)
		if err != nil {
			return err
		}
	}

	// Run the lock pass
	runner, err := locker.New(client, locker.Config{
		Selection:   selection,
		HideSkipped: hideSkipped,
		DryRun:      lockDryRun,
	}, logger)
	if err != nil {
		return err
	}

	started := time.Now()
	stats, runErr := runner.Run(ctx, chosen)
	recordRun(ctx, logger, chosen, selection, stats, started)
	if runErr != nil {
		return runErr
	}

	fmt.Printf("\nProcessed %d series: Locked %d, Skipped %d.\n", stats.Total, stats.Locked, stats.Skipped)
	return nil
}

// recordRun appends the run to the history database. History is best
// effort: failures are logged, never fatal.
func recordRun(ctx context.Context, logger zerolog.Logger, chosen []kavita.Library, selection []lockfield.Spec, stats locker.Stats, started time.Time) {
	store, err := history.Open(filepath.Join(config.GetDataDir(), "history.db"))
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open history database")
		return
	}
	defer store.Close()

	names := make([]string, len(chosen))
	for i, lib := range chosen {
		names[i] = lib.Name
	}

	if _, err := store.Record(ctx, history.Run{
		StartedAt: started,
		Duration:  time.Since(started),
		Libraries: names,
		Fields:    lockfield.Labels(selection),
		Total:     stats.Total,
		Locked:    stats.Locked,
		Skipped:   stats.Skipped,
		DryRun:    lockDryRun,
	}); err != nil {
		logger.Warn().Err(err).Msg("Failed to record run history")
	}
}
