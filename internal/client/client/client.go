package client

import "context"

// RemoteUser is one entry of the seed listing. Only the fields the client
// maps are decoded.
type RemoteUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	URL       string `json:"url"`
	SiteAdmin bool   `json:"site_admin"`
}

// SeedClient fetches the initial user batch.
type SeedClient interface {
	FetchUsers(ctx context.Context) ([]RemoteUser, error)
}
