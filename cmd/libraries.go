package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jfmyers9/kavalock/internal/config"
	"github.com/jfmyers9/kavalock/pkg/kavita"
	"github.com/spf13/cobra"
)

var (
	librariesURL      string
	librariesUsername string
	librariesAPIKey   string
	librariesLogLevel string
)

// librariesCmd represents the libraries command
var librariesCmd = &cobra.Command{
	Use:   "libraries",
	Short: "List libraries on the Kavita server",
	Long: `Authenticate against the Kavita server and list its libraries.

Useful for finding the IDs to pass to 'kavalock lock --library-ids'.`,
	RunE: runLibraries,
}

func init() {
	rootCmd.AddCommand(librariesCmd)

	librariesCmd.Flags().StringVarP(&librariesURL, "url", "u", "", "Kavita server URL (e.g. https://kavita.example.com)")
	librariesCmd.Flags().StringVarP(&librariesUsername, "username", "U", "", "Username for authentication")
	librariesCmd.Flags().StringVarP(&librariesAPIKey, "api-key", "k", "", "API key for authentication")
	librariesCmd.Flags().StringVar(&librariesLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runLibraries(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := setupLogger(librariesLogLevel)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	server, err := resolveServer(cfg, librariesURL, librariesUsername, librariesAPIKey)
	if err != nil {
		return err
	}

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

	libs, err := client.Libraries(ctx)
	if err != nil {
		return err
	}
	if len(libs) == 0 {
		return fmt.Errorf("no libraries found")
	}

	rows := make([][]string, 0, len(libs))
	for _, lib := range libs {
		rows = append(rows, []string{strconv.Itoa(lib.ID), lib.Name})
	}
	fmt.Println(renderTable([]string{"ID", "Name"}, rows, 1))
	return nil
}
