package kavita

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// seriesFilter is the v2 filter body for /api/Series/v2. The zero
// statements/combination and sortField 1 ascending mirror what the
// Kavita web UI sends for a plain per-library listing.
type seriesFilter struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Statements  []any       `json:"statements"`
	Combination int         `json:"combination"`
	SortOptions sortOptions `json:"sortOptions"`
	LimitTo     int         `json:"limitTo"`
	LibraryIDs  []int       `json:"libraryIds"`
}

type sortOptions struct {
	SortField   int  `json:"sortField"`
	IsAscending bool `json:"isAscending"`
}

// AllSeries fetches every series summary for the given library.
//
// PageNumber=0 and PageSize=0 disable pagination server-side. The
// endpoint has been observed to return series outside the requested
// library, so callers should still filter by LibraryID.
func (c *Client) AllSeries(ctx context.Context, libraryID int) ([]Series, error) {
	query := map[string]string{
		"PageNumber": "0",
		"PageSize":   "0",
	}
	body := seriesFilter{
		Statements:  []any{},
		SortOptions: sortOptions{SortField: 1, IsAscending: true},
		LibraryIDs:  []int{libraryID},
	}

	var series []Series
	if err := c.doJSON(ctx, http.MethodPost, "/api/Series/v2", query, body, true, &series); err != nil {
		return nil, fmt.Errorf("list series for library %d: %w", libraryID, err)
	}
	return series, nil
}

// SeriesMetadata fetches the full metadata object for a series,
// including every field value and lock flag.
func (c *Client) SeriesMetadata(ctx context.Context, seriesID int) (Metadata, error) {
	query := map[string]string{"seriesId": strconv.Itoa(seriesID)}

	var meta Metadata
	if err := c.doJSON(ctx, http.MethodGet, "/api/Series/metadata", query, nil, true, &meta); err != nil {
		return nil, fmt.Errorf("get metadata for series %d: %w", seriesID, err)
	}
	return meta, nil
}

// UpdateSeriesMetadata posts a metadata object back to the server.
//
// The endpoint performs a full-object replace: meta must be the
// complete object previously fetched via SeriesMetadata, with only the
// intended keys changed, or the server may clear anything omitted.
func (c *Client) UpdateSeriesMetadata(ctx context.Context, meta Metadata) error {
	body := map[string]any{"seriesMetadata": meta}
	if err := c.doJSON(ctx, http.MethodPost, "/api/Series/metadata", nil, body, true, nil); err != nil {
		return fmt.Errorf("update series metadata: %w", err)
	}
	return nil
}
