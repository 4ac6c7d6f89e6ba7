package kavita

import "encoding/json"

// Library is a top-level collection grouping multiple series.
type Library struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// Series is a summary entry returned by the series listing endpoint.
// Some server versions return the display name under "name", others
// under "title"; Name resolves to whichever is present.
type Series struct {
	ID        int
	Name      string
	LibraryID int
}

// seriesWire is the wire form of a series summary.
type seriesWire struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	LibraryID int    `json:"libraryId"`
}

// UnmarshalJSON decodes a series summary, preferring "name" over "title"
// for the display name.
func (s *Series) UnmarshalJSON(data []byte) error {
	var w seriesWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = w.ID
	s.LibraryID = w.LibraryID
	s.Name = w.Name
	if s.Name == "" {
		s.Name = w.Title
	}
	return nil
}

// Metadata is the full metadata object for a series, containing both
// field values (e.g. "genres") and their boolean lock flags (e.g.
// "genresLocked"). It is kept opaque so that updates can echo back every
// key the server sent; the update endpoint replaces the whole object.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
