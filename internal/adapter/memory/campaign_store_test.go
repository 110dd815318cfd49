package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

func TestCampaignStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	c := domain.Campaign{ID: "c1", Creator: "owner", Influencers: []string{"a"}}
	require.NoError(t, s.InsertCampaign(ctx, c))

	c.Influencers[0] = "mutated"
	got, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Influencers)

	got.Influencers[0] = "mutated"
	again, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Influencers)

	missing, err := s.GetCampaign(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCampaignStoreUpdateKeepsProtectedFields(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	added := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.InsertCampaign(ctx, domain.Campaign{ID: "c1", Creator: "owner", DateAdded: added}))
	require.NoError(t, s.AttachTweet(ctx, "c1", domain.SubmittedTweet{ID: "1", AuthorID: "a"}))
	require.NoError(t, s.SetHidden(ctx, "a", []string{"c1"}, true))

	require.NoError(t, s.UpdateCampaign(ctx, domain.Campaign{ID: "c1", Name: "new", Creator: "intruder"}))

	got, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "owner", got.Creator)
	assert.Equal(t, added, got.DateAdded)
	assert.Equal(t, []string{"a"}, got.HiddenFor)
	assert.Len(t, got.SubmittedTweets, 1)
}

func TestCampaignStoreAttachTweetIsExclusive(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	for _, id := range []string{"c1", "c2"} {
		require.NoError(t, s.InsertCampaign(ctx, domain.Campaign{ID: id}))
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			campaign := []string{"c1", "c2"}[i%2]
			if err := s.AttachTweet(ctx, campaign, domain.SubmittedTweet{ID: "same"}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, port.ErrDuplicateTweet)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)

	indexed, err := s.FindIndexedTweet(ctx, "same")
	require.NoError(t, err)
	require.NotNil(t, indexed)
	c, err := s.GetCampaign(ctx, indexed.CampaignID)
	require.NoError(t, err)
	assert.True(t, c.HasTweet("same"))
}

func TestCampaignStoreFindVisibleAndByIDs(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()
	require.NoError(t, s.InsertCampaign(ctx, domain.Campaign{ID: "c1", Creator: "owner", Managers: []string{"m"}}))
	require.NoError(t, s.InsertCampaign(ctx, domain.Campaign{ID: "c2", Creator: "other", Influencers: []string{"m"}}))
	require.NoError(t, s.InsertCampaign(ctx, domain.Campaign{ID: "c3", Creator: "other"}))

	visible, err := s.FindVisible(ctx, "m")
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	found, err := s.FindByIDs(ctx, []string{"c3", "missing", "c1", "c3"})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "c3", found[0].ID)
	assert.Equal(t, "c1", found[1].ID)
}

func TestUserStoreKeepsDateAdded(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpsertUser(ctx, domain.User{ID: "1", Name: "Old", ScreenName: "one", DateAdded: first}))
	require.NoError(t, s.UpsertUser(ctx, domain.User{ID: "1", Name: "New", ScreenName: "one", DateAdded: first.AddDate(1, 0, 0)}))

	got, err := s.FindUsersByScreenNames(ctx, []string{"one"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Name)
	assert.Equal(t, first, got[0].DateAdded)
}

func TestCampaignStoreAttachTweetToMissingCampaign(t *testing.T) {
	ctx := context.Background()
	s := NewCampaignStore()

	err := s.AttachTweet(ctx, "gone", domain.SubmittedTweet{ID: "1", AuthorID: "a"})
	require.ErrorIs(t, err, port.ErrCampaignNotFound)

	indexed, err := s.FindIndexedTweet(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, indexed, "the id stays free for another campaign")
}
