// internal/catalog/source_http.go
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPSource fetches the catalog document with a single GET. There is no retry and no
// timeout beyond the one carried by the context.
type HTTPSource struct {
	url        string
	collection string
	client     *http.Client
}

func NewHTTPSource(url, collection string) *HTTPSource {
	return &HTTPSource{url: url, collection: collection, client: http.DefaultClient}
}

// WithClient replaces the HTTP client used for the fetch.
func (s *HTTPSource) WithClient(client *http.Client) *HTTPSource {
	s.client = client
	return s
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return decodeJSON(data, s.collection)
}

func (s *HTTPSource) String() string {
	return s.url
}
