package kavita

import (
	"context"
	"fmt"
	"net/http"
)

// Libraries retrieves all libraries visible to the authenticated user.
func (c *Client) Libraries(ctx context.Context) ([]Library, error) {
	var libs []Library
	if err := c.doJSON(ctx, http.MethodGet, "/api/Library/libraries", nil, nil, true, &libs); err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	return libs, nil
}
