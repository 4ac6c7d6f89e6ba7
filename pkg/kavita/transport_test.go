package kavita

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSONEscapesQueryValues(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A raw '&' in a value must not split into a second parameter.
		q := r.URL.Query()
		if got := q.Get("name"); got != "Cats & Dogs" {
			t.Errorf("expected decoded value %q, got %q", "Cats & Dogs", got)
		}
		if got := q.Get("page"); got != "1" {
			t.Errorf("expected page=1, got %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newAuthedClient(t, server.URL)
	query := map[string]string{
		"name": "Cats & Dogs",
		"page": "1",
	}
	var out map[string]any
	if err := client.doJSON(context.Background(), http.MethodGet, "/api/test", query, nil, true, &out); err != nil {
		t.Fatalf("doJSON failed: %v", err)
	}
}
