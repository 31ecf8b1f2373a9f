package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSeedClient_FetchUsers(t *testing.T) {
	srv := newSeedServer(t, http.StatusOK, `[
		{"id":1,"login":"mojombo","url":"https://api.github.com/users/mojombo","site_admin":false,"type":"User"},
		{"id":2,"login":"defunkt","url":"https://api.github.com/users/defunkt","site_admin":true}
	]`)

	users, err := NewHTTPSeedClient(srv.URL+"/users", srv.Client()).FetchUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []RemoteUser{
		{ID: 1, Login: "mojombo", URL: "https://api.github.com/users/mojombo"},
		{ID: 2, Login: "defunkt", URL: "https://api.github.com/users/defunkt", SiteAdmin: true},
	}, users)
}

func TestHTTPSeedClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`},
		{"rate limited", http.StatusForbidden, `{"message":"API rate limit exceeded"}`},
		{"malformed json", http.StatusOK, `[{"id":`},
		{"not a list", http.StatusOK, `{"id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newSeedServer(t, tt.status, tt.body)

			users, err := NewHTTPSeedClient(srv.URL+"/users", srv.Client()).FetchUsers(context.Background())
			require.ErrorIs(t, err, ErrFetchFailure)
			assert.Nil(t, users)
		})
	}
}

func TestHTTPSeedClient_Unreachable(t *testing.T) {
	srv := newSeedServer(t, http.StatusOK, `[]`)
	url := srv.URL + "/users"
	srv.Close()

	_, err := NewHTTPSeedClient(url, nil).FetchUsers(context.Background())
	require.ErrorIs(t, err, ErrFetchFailure)

	var uerr *neturl.Error
	require.ErrorAs(t, err, &uerr)
}

func TestHTTPSeedClient_DecodeErrorIsKept(t *testing.T) {
	srv := newSeedServer(t, http.StatusOK, `{"id":1}`)

	_, err := NewHTTPSeedClient(srv.URL+"/users", srv.Client()).FetchUsers(context.Background())
	require.ErrorIs(t, err, ErrFetchFailure)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestHTTPSeedClient_CancelledContext(t *testing.T) {
	srv := newSeedServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSeedClient(srv.URL+"/users", srv.Client()).FetchUsers(ctx)
	require.ErrorIs(t, err, ErrFetchFailure)
	require.ErrorIs(t, err, context.Canceled)
}
