package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jfmyers9/kavalock/internal/config"
	"github.com/jfmyers9/kavalock/pkg/kavita"
)

// feedStdin replaces the shared prompt reader with scripted input for
// the duration of the test.
func feedStdin(t *testing.T, input string) {
	t.Helper()
	old := stdin
	stdin = bufio.NewReader(strings.NewReader(input))
	t.Cleanup(func() { stdin = old })
}

func TestResolveServerFlagsSkipPrompts(t *testing.T) {
	// No stdin is provided: any prompt would fail the resolve.
	feedStdin(t, "")

	cfg := &config.Config{}
	server, err := resolveServer(cfg, "https://kavita.example.com", "admin", "key")
	if err != nil {
		t.Fatalf("resolveServer failed: %v", err)
	}
	if server.URL != "https://kavita.example.com" || server.Username != "admin" || server.APIKey != "key" {
		t.Errorf("unexpected server config: %+v", server)
	}
}

func TestResolveServerPromptsAndSaves(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	feedStdin(t, "https://kavita.example.com\nadmin\nsecret-key\ny\n")

	cfg := &config.Config{}
	server, err := resolveServer(cfg, "", "", "")
	if err != nil {
		t.Fatalf("resolveServer failed: %v", err)
	}
	if server.URL != "https://kavita.example.com" || server.Username != "admin" || server.APIKey != "secret-key" {
		t.Errorf("unexpected server config: %+v", server)
	}

	// Answering yes persists the entered details for the next run.
	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server != server {
		t.Errorf("expected saved server %+v, got %+v", server, loaded.Server)
	}
}

func TestResolveServerDeclineSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	feedStdin(t, "https://kavita.example.com\nadmin\nsecret-key\nn\n")

	cfg := &config.Config{}
	if _, err := resolveServer(cfg, "", "", ""); err != nil {
		t.Fatalf("resolveServer failed: %v", err)
	}

	configFile := filepath.Join(config.GetConfigDir(), "config.yaml")
	if _, err := os.Stat(configFile); !os.IsNotExist(err) {
		t.Errorf("expected no config file after declining, stat err: %v", err)
	}
}

func TestParseLibraryIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{
			name:  "single id",
			input: "3",
			want:  []int{3},
		},
		{
			name:  "multiple ids with spaces",
			input: " 1, 2 ,3 ",
			want:  []int{1, 2, 3},
		},
		{
			name:  "duplicates collapsed",
			input: "2,2,2",
			want:  []int{2},
		},
		{
			name:    "non-numeric",
			input:   "1,two",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   " , ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLibraryIDs(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLibraryIDs failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterLibraries(t *testing.T) {
	libs := []kavita.Library{
		{ID: 1, Name: "Comics"},
		{ID: 2, Name: "Books"},
		{ID: 3, Name: "Manga"},
	}

	chosen := filterLibraries(libs, []int{3, 1})
	if len(chosen) != 2 {
		t.Fatalf("expected 2 libraries, got %d", len(chosen))
	}
	// Server order is preserved regardless of the id order given.
	if chosen[0].Name != "Comics" || chosen[1].Name != "Manga" {
		t.Errorf("unexpected selection: %+v", chosen)
	}

	if got := filterLibraries(libs, []int{99}); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}
