package twitter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewriteHost sends every request to the test server.
type rewriteHost struct {
	target *url.URL
}

func (rt rewriteHost) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClientWithHTTP(&http.Client{Transport: rewriteHost{target: target}})
}

func TestFetchPostsByIDs(t *testing.T) {
	var gotIDs string
	mux := http.NewServeMux()
	mux.HandleFunc("/1.1/statuses/lookup.json", func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id_str": "10", "created_at": "Sat Jun 15 10:00:00 +0000 2024", "user": {"id_str": "42"}},
			{"id_str": "11", "created_at": "Sat Jun 15 11:30:00 +0200 2024"}
		]`))
	})
	c := newTestClient(t, mux)

	posts, err := c.FetchPostsByIDs(context.Background(), []string{"10", "11", "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "10,11", gotIDs)
	require.Len(t, posts, 1, "statuses without a user are skipped")
	assert.Equal(t, "10", posts[0].ID)
	assert.Equal(t, "42", posts[0].AuthorID)
	assert.Equal(t, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), posts[0].CreatedAt)
}

func TestFetchPostsByIDsUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/1.1/statuses/lookup.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"errors":[{"code":88,"message":"Rate limit exceeded"}]}`))
	})
	c := newTestClient(t, mux)

	_, err := c.FetchPostsByIDs(context.Background(), []string{"1"})
	require.Error(t, err)
}

func TestLookupUsers(t *testing.T) {
	var gotNames string
	mux := http.NewServeMux()
	mux.HandleFunc("/1.1/users/lookup.json", func(w http.ResponseWriter, r *http.Request) {
		gotNames = r.URL.Query().Get("screen_name")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_str": "7", "name": "Ada", "screen_name": "ada", "location": "London",
			"profile_image_url_https": "https://img.example/ada.png"}]`))
	})
	c := newTestClient(t, mux)

	users, err := c.LookupUsers(context.Background(), []string{"ada", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "ada,ghost", gotNames)
	require.Len(t, users, 1)
	assert.Equal(t, "7", users[0].ID)
	assert.Equal(t, "Ada", users[0].Name)
	assert.Equal(t, "London", users[0].Location)
	assert.Equal(t, "https://img.example/ada.png", users[0].Image)
}

func TestFetchPostsByIDsCancelled(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchPostsByIDs(ctx, []string{"1"})
	require.ErrorIs(t, err, context.Canceled)
}
