package lockfield

import (
	"testing"
)

func TestCatalogKeysAreUnique(t *testing.T) {
	dataKeys := make(map[string]bool)
	lockKeys := make(map[string]bool)

	for _, spec := range Catalog {
		if dataKeys[spec.DataKey] {
			t.Errorf("duplicate data key %q in catalog", spec.DataKey)
		}
		dataKeys[spec.DataKey] = true

		if lockKeys[spec.LockKey] {
			t.Errorf("duplicate lock key %q in catalog", spec.LockKey)
		}
		lockKeys[spec.LockKey] = true
	}

	if len(Catalog) != 20 {
		t.Errorf("expected 20 catalog entries, got %d", len(Catalog))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantLabels  []string
		wantUnknown []string
	}{
		{
			name:       "data keys",
			input:      []string{"genres", "tags"},
			wantLabels: []string{"Genres", "Tags"},
		},
		{
			name:       "labels",
			input:      []string{"Summary", "Age Rating"},
			wantLabels: []string{"Summary", "Age Rating"},
		},
		{
			name:       "case insensitive",
			input:      []string{"GENRES", "age rating", "SuMmArY"},
			wantLabels: []string{"Genres", "Age Rating", "Summary"},
		},
		{
			name:       "irregular lock key fields match by data key",
			input:      []string{"writers", "coverArtists"},
			wantLabels: []string{"Writers", "Cover Artists"},
		},
		{
			name:        "unknown names reported, valid ones kept",
			input:       []string{"genres", "bogus", "tags"},
			wantLabels:  []string{"Genres", "Tags"},
			wantUnknown: []string{"bogus"},
		},
		{
			name:        "all unknown",
			input:       []string{"nope", "nada"},
			wantUnknown: []string{"nope", "nada"},
		},
		{
			name:       "duplicates collapsed",
			input:      []string{"genres", "Genres", "genres"},
			wantLabels: []string{"Genres"},
		},
		{
			name:       "whitespace and empty entries ignored",
			input:      []string{" genres ", "", "  "},
			wantLabels: []string{"Genres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, unknown := Parse(tt.input)

			if len(selected) != len(tt.wantLabels) {
				t.Fatalf("expected %d selected fields, got %d", len(tt.wantLabels), len(selected))
			}
			for i, want := range tt.wantLabels {
				if selected[i].Label != want {
					t.Errorf("selected[%d]: expected label %q, got %q", i, want, selected[i].Label)
				}
			}

			if len(unknown) != len(tt.wantUnknown) {
				t.Fatalf("expected %d unknown names, got %d (%v)", len(tt.wantUnknown), len(unknown), unknown)
			}
			for i, want := range tt.wantUnknown {
				if unknown[i] != want {
					t.Errorf("unknown[%d]: expected %q, got %q", i, want, unknown[i])
				}
			}
		})
	}
}

func TestLabels(t *testing.T) {
	specs, _ := Parse([]string{"genres", "tags"})
	labels := Labels(specs)
	if len(labels) != 2 || labels[0] != "Genres" || labels[1] != "Tags" {
		t.Errorf("unexpected labels: %v", labels)
	}
}
