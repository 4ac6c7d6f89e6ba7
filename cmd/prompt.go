package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jfmyers9/kavalock/internal/config"
	"github.com/jfmyers9/kavalock/internal/lockfield"
	"github.com/jfmyers9/kavalock/pkg/kavita"
	"github.com/mattn/go-runewidth"
)

// stdin is shared across prompts so buffered input is not lost between
// questions.
var stdin = bufio.NewReader(os.Stdin)

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptYesNo(prompt string) bool {
	answer, err := promptLine(prompt)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// resolveServer fills in server connection details from flags, falling
// back to the config file, then to interactive prompts.
func resolveServer(cfg *config.Config, url, username, apiKey string) (config.ServerConfig, error) {
	server := cfg.Server
	if url != "" {
		server.URL = url
	}
	if username != "" {
		server.Username = username
	}
	if apiKey != "" {
		server.APIKey = apiKey
	}

	if server.URL != "" && server.Username != "" && server.APIKey != "" {
		return server, nil
	}

	fmt.Println("Configure Kavita connection")
	var err error
	if server.URL == "" {
		server.URL, err = promptLine("Kavita Server URL (e.g. https://kavita.example.com): ")
		if err != nil {
			return server, err
		}
	}
	if server.Username == "" {
		server.Username, err = promptLine("Username: ")
		if err != nil {
			return server, err
		}
	}
	if server.APIKey == "" {
		server.APIKey, err = promptLine("API Key: ")
		if err != nil {
			return server, err
		}
	}

	if server.URL == "" || server.Username == "" || server.APIKey == "" {
		return server, fmt.Errorf("server URL, username and API key are required")
	}

	// Offer to persist interactively entered details so the next run
	// can skip the prompts.
	if promptYesNo("Save connection details to config? (y/n): ") {
		cfg.Server = server
		if err := cfg.Save(); err != nil {
			return server, fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Connection details saved to %s/config.yaml\n", config.GetConfigDir())
	}

	return server, nil
}

// promptFields shows a numbered menu of lockable fields and returns the
// user's selection. Invalid entries are ignored; an empty selection is
// an error.
func promptFields() ([]lockfield.Spec, error) {
	fmt.Println("\nSelect metadata fields to lock:")

	// Align the data-key column on display width, labels may contain
	// wide runes.
	labelWidth := 0
	for _, spec := range lockfield.Catalog {
		if w := runewidth.StringWidth(spec.Label); w > labelWidth {
			labelWidth = w
		}
	}
	for i, spec := range lockfield.Catalog {
		fmt.Printf("%2d. %s (%s)\n", i+1, runewidth.FillRight(spec.Label, labelWidth), spec.DataKey)
	}

	line, err := promptLine("Enter comma-separated field numbers (e.g. 2,3): ")
	if err != nil {
		return nil, err
	}

	var selected []lockfield.Spec
	seen := make(map[int]bool)
	for _, part := range strings.Split(line, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(lockfield.Catalog) {
			continue
		}
		if !seen[idx] {
			seen[idx] = true
			selected = append(selected, lockfield.Catalog[idx-1])
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no valid fields selected")
	}
	return selected, nil
}

// promptLibraries shows a numbered menu of server libraries and returns
// the user's selection. Invalid entries are ignored; an empty selection
// is an error.
func promptLibraries(libs []kavita.Library) ([]kavita.Library, error) {
	fmt.Println("Available libraries:")

	nameWidth := 0
	for _, lib := range libs {
		if w := runewidth.StringWidth(lib.Name); w > nameWidth {
			nameWidth = w
		}
	}
	for i, lib := range libs {
		fmt.Printf("%2d. %s (ID: %d)\n", i+1, runewidth.FillRight(lib.Name, nameWidth), lib.ID)
	}

	line, err := promptLine("Select libraries (comma-separated numbers): ")
	if err != nil {
		return nil, err
	}

	var chosen []kavita.Library
	seen := make(map[int]bool)
	for _, part := range strings.Split(line, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(libs) {
			continue
		}
		if !seen[idx] {
			seen[idx] = true
			chosen = append(chosen, libs[idx-1])
		}
	}

	if len(chosen) == 0 {
		return nil, fmt.Errorf("no valid libraries selected")
	}
	return chosen, nil
}

// parseLibraryIDs parses a comma-separated list of numeric library IDs.
func parseLibraryIDs(arg string) ([]int, error) {
	var ids []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid library ID %q", part)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no library IDs provided")
	}
	return ids, nil
}

// filterLibraries keeps the libraries whose IDs appear in ids.
func filterLibraries(libs []kavita.Library, ids []int) []kavita.Library {
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var chosen []kavita.Library
	for _, lib := range libs {
		if want[lib.ID] {
			chosen = append(chosen, lib)
		}
	}
	return chosen
}
