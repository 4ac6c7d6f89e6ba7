// Package lockfield holds the catalog of lockable Kavita metadata
// fields and the decision logic for when a series needs its lock flags
// set.
package lockfield

import "strings"

// Spec describes one lockable metadata field: its human label, the key
// holding the field value in the metadata object, and the key holding
// the corresponding boolean lock flag.
type Spec struct {
	Label   string
	DataKey string
	LockKey string
}

// Catalog is the fixed, ordered table of lockable fields exposed by the
// Kavita series metadata endpoint. Data keys and lock keys are unique
// across the table. Note the lock key is not always the data key plus
// "Locked" (e.g. writers/writerLocked).
//
// https://www.kavitareader.com/docs/api/#/Series/post_api_Series_metadata
var Catalog = []Spec{
	{"Summary", "summary", "summaryLocked"},
	{"Genres", "genres", "genresLocked"},
	{"Tags", "tags", "tagsLocked"},
	{"Age Rating", "ageRating", "ageRatingLocked"},
	{"Publication Status", "publicationStatus", "publicationStatusLocked"},
	{"Release Year", "releaseYear", "releaseYearLocked"},
	{"Language", "language", "languageLocked"},
	{"Writers", "writers", "writerLocked"},
	{"Cover Artists", "coverArtists", "coverArtistLocked"},
	{"Publishers", "publishers", "publisherLocked"},
	{"Characters", "characters", "characterLocked"},
	{"Pencillers", "pencillers", "pencillerLocked"},
	{"Inkers", "inkers", "inkerLocked"},
	{"Imprints", "imprints", "imprintLocked"},
	{"Colorists", "colorists", "coloristLocked"},
	{"Letterers", "letterers", "lettererLocked"},
	{"Editors", "editors", "editorLocked"},
	{"Translators", "translators", "translatorLocked"},
	{"Teams", "teams", "teamLocked"},
	{"Locations", "locations", "locationLocked"},
}

// Parse resolves user-supplied field names against the catalog. Names
// match either the label or the data key, case-insensitively. Matched
// specs are returned in input order without duplicates; names that
// match nothing are returned separately so the caller can warn about
// them.
func Parse(names []string) (selected []Spec, unknown []string) {
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		spec, ok := lookup(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if !seen[spec.DataKey] {
			seen[spec.DataKey] = true
			selected = append(selected, spec)
		}
	}
	return selected, unknown
}

func lookup(name string) (Spec, bool) {
	lower := strings.ToLower(name)
	for _, spec := range Catalog {
		if lower == strings.ToLower(spec.Label) || lower == strings.ToLower(spec.DataKey) {
			return spec, true
		}
	}
	return Spec{}, false
}

// Labels returns the labels of the given specs, in order.
func Labels(specs []Spec) []string {
	labels := make([]string, len(specs))
	for i, spec := range specs {
		labels[i] = spec.Label
	}
	return labels
}
