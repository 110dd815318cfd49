package twitter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"

	"campaign-tracker/internal/config/configs"
	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// lookupLimit is the number of ids the lookup endpoints accept per call.
const lookupLimit = 100

// Client implements port.PostSource and port.ProfileSource on the Twitter
// REST API.
type Client struct {
	api *twitter.Client
}

var (
	_ port.PostSource    = (*Client)(nil)
	_ port.ProfileSource = (*Client)(nil)
)

// NewClient builds an OAuth1 authenticated client from cfg.
func NewClient(cfg configs.Twitter) *Client {
	config := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	httpClient := config.Client(context.Background(), token)
	httpClient.Timeout = cfg.Timeout
	return NewClientWithHTTP(httpClient)
}

// NewClientWithHTTP wraps an already configured HTTP client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{api: twitter.NewClient(httpClient)}
}

// FetchPostsByIDs returns id, author and creation time of every status
// that exists. Ids that are not numeric or not found are skipped.
func (c *Client) FetchPostsByIDs(ctx context.Context, ids []string) ([]domain.SubmittedTweet, error) {
	numeric := make([]int64, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		numeric = append(numeric, n)
	}

	posts := make([]domain.SubmittedTweet, 0, len(numeric))
	for start := 0; start < len(numeric); start += lookupLimit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+lookupLimit, len(numeric))
		tweets, _, err := c.api.Statuses.Lookup(numeric[start:end], &twitter.StatusLookupParams{
			TrimUser: twitter.Bool(false),
		})
		if err != nil {
			return nil, fmt.Errorf("statuses lookup: %w", err)
		}
		for _, t := range tweets {
			if t.User == nil {
				continue
			}
			createdAt, err := time.Parse(time.RubyDate, t.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("parse created_at of %s: %w", t.IDStr, err)
			}
			posts = append(posts, domain.SubmittedTweet{
				ID:        t.IDStr,
				AuthorID:  t.User.IDStr,
				CreatedAt: createdAt.UTC(),
			})
		}
	}
	return posts, nil
}

// LookupUsers resolves screen names into user profiles.
func (c *Client) LookupUsers(ctx context.Context, screenNames []string) ([]domain.User, error) {
	users := make([]domain.User, 0, len(screenNames))
	for start := 0; start < len(screenNames); start += lookupLimit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+lookupLimit, len(screenNames))
		found, _, err := c.api.Users.Lookup(&twitter.UserLookupParams{
			ScreenName: screenNames[start:end],
		})
		if err != nil {
			return nil, fmt.Errorf("users lookup: %w", err)
		}
		for _, u := range found {
			users = append(users, domain.User{
				ID:         u.IDStr,
				Name:       u.Name,
				ScreenName: u.ScreenName,
				Image:      u.ProfileImageURLHttps,
				Location:   u.Location,
			})
		}
	}
	return users, nil
}
