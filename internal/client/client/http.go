package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPSeedClient reads the seed listing with a single GET.
type HTTPSeedClient struct {
	endpoint string
	http     *http.Client
}

// NewHTTPSeedClient returns a client for endpoint. A nil httpClient means
// http.DefaultClient. No timeout is imposed beyond the request context.
func NewHTTPSeedClient(endpoint string, httpClient *http.Client) *HTTPSeedClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPSeedClient{endpoint: endpoint, http: httpClient}
}

func (c *HTTPSeedClient) FetchUsers(ctx context.Context) ([]RemoteUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status %s; body: %s", ErrFetchFailure, resp.Status, string(b))
	}

	var users []RemoteUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %w", ErrFetchFailure, err)
	}
	return users, nil
}
