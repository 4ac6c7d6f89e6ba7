package lockfield

import (
	"reflect"
	"testing"

	"github.com/jfmyers9/kavalock/pkg/kavita"
)

func mustParse(t *testing.T, names ...string) []Spec {
	t.Helper()
	specs, unknown := Parse(names)
	if len(unknown) > 0 {
		t.Fatalf("unknown fields in test selection: %v", unknown)
	}
	return specs
}

func TestNeedsLock(t *testing.T) {
	tests := []struct {
		name      string
		meta      kavita.Metadata
		selection []string
		want      bool
	}{
		{
			name: "unlocked non-empty field needs lock",
			meta: kavita.Metadata{
				"genres":       []any{"Action"},
				"genresLocked": false,
			},
			selection: []string{"genres"},
			want:      true,
		},
		{
			name: "one non-empty unlocked among empty ones is enough",
			meta: kavita.Metadata{
				"genres":       []any{"Action"},
				"genresLocked": false,
				"tags":         []any{},
				"tagsLocked":   false,
			},
			selection: []string{"genres", "tags"},
			want:      true,
		},
		{
			name: "empty value is never locked even when unlocked",
			meta: kavita.Metadata{
				"summary":       "",
				"summaryLocked": false,
			},
			selection: []string{"summary"},
			want:      false,
		},
		{
			name: "already locked field is skipped",
			meta: kavita.Metadata{
				"writers":      []any{"A"},
				"writerLocked": true,
			},
			selection: []string{"writers"},
			want:      false,
		},
		{
			name: "absent lock flag counts as unlocked",
			meta: kavita.Metadata{
				"language": "en",
			},
			selection: []string{"language"},
			want:      true,
		},
		{
			name: "absent value counts as empty",
			meta: kavita.Metadata{
				"languageLocked": false,
			},
			selection: []string{"language"},
			want:      false,
		},
		{
			name: "numeric zero counts as empty",
			meta: kavita.Metadata{
				"releaseYear":       float64(0),
				"releaseYearLocked": false,
			},
			selection: []string{"releaseYear"},
			want:      false,
		},
		{
			name: "numeric non-zero counts as present",
			meta: kavita.Metadata{
				"releaseYear":       float64(1999),
				"releaseYearLocked": false,
			},
			selection: []string{"releaseYear"},
			want:      true,
		},
		{
			name: "unselected fields are ignored",
			meta: kavita.Metadata{
				"genres":       []any{"Action"},
				"genresLocked": false,
				"tags":         []any{"Shounen"},
				"tagsLocked":   false,
			},
			selection: []string{"tags"},
			want:      true,
		},
		{
			name:      "empty metadata",
			meta:      kavita.Metadata{},
			selection: []string{"genres"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsLock(tt.meta, mustParse(t, tt.selection...))
			if got != tt.want {
				t.Errorf("NeedsLock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildUpdatePayload(t *testing.T) {
	meta := kavita.Metadata{
		"seriesId":     float64(42),
		"genres":       []any{"Action"},
		"genresLocked": false,
		"tags":         []any{},
		"tagsLocked":   false,
		"summary":      "a summary",
		"publisher":    []any{"ACME"},
	}
	selection := mustParse(t, "genres", "tags")

	payload := BuildUpdatePayload(meta, selection)

	// Selected lock flags are set, including on empty fields.
	if payload["genresLocked"] != true {
		t.Errorf("expected genresLocked true, got %v", payload["genresLocked"])
	}
	if payload["tagsLocked"] != true {
		t.Errorf("expected tagsLocked true, got %v", payload["tagsLocked"])
	}

	// Every other key survives unchanged: the server replaces the whole
	// object, so dropped keys would be cleared.
	for key, want := range meta {
		if key == "genresLocked" || key == "tagsLocked" {
			continue
		}
		if !reflect.DeepEqual(payload[key], want) {
			t.Errorf("key %q changed: expected %v, got %v", key, want, payload[key])
		}
	}
	if len(payload) != len(meta) {
		t.Errorf("expected %d keys in payload, got %d", len(meta), len(payload))
	}

	// The input metadata is not mutated.
	if meta["genresLocked"] != false {
		t.Errorf("input metadata was mutated: genresLocked = %v", meta["genresLocked"])
	}
}

func TestLockIsIdempotent(t *testing.T) {
	meta := kavita.Metadata{
		"genres":       []any{"Action"},
		"genresLocked": false,
		"tags":         []any{"Shounen"},
		"tagsLocked":   false,
	}
	selection := mustParse(t, "genres", "tags")

	if !NeedsLock(meta, selection) {
		t.Fatal("expected initial metadata to need a lock")
	}

	once := BuildUpdatePayload(meta, selection)
	if NeedsLock(once, selection) {
		t.Error("expected no further lock needed after first update")
	}

	twice := BuildUpdatePayload(once, selection)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second update changed the payload: %v vs %v", once, twice)
	}
}
