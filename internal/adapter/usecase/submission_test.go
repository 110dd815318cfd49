package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

func TestSubmitTweetsRejectsResubmission(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"100"}).
		Return([]domain.SubmittedTweet{post("100", "alice")}, nil).
		Times(2)

	status, tweets, err := f.uc.SubmitTweets(ctx, "alice", "c1", []string{"https://twitter.com/alice/status/100"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoContent, status)
	assert.Equal(t, []port.TweetStatus{{ID: "100", Status: domain.StatusNoContent}}, tweets)

	// A manager resubmitting the same post hits the dedup index.
	status, tweets, err = f.uc.SubmitTweets(ctx, "mgr", "c1", []string{"100"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConflict, status)
	assert.Equal(t, []port.TweetStatus{{ID: "100", Status: domain.StatusConflict}}, tweets)

	c := f.stored(t, "c1")
	assert.Len(t, c.SubmittedTweets, 1)

	indexed, err := f.campaigns.FindIndexedTweet(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, indexed)
	assert.Equal(t, "c1", indexed.CampaignID)
	assert.Equal(t, "alice", indexed.AuthorID)
}

func TestSubmitTweetsConflictAcrossCampaigns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"), standardCampaign("c2"))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"100"}).
		Return([]domain.SubmittedTweet{post("100", "alice")}, nil)

	require.NoError(t, f.campaigns.AttachTweet(ctx, "c1", post("100", "alice")))

	status, _, err := f.uc.SubmitTweets(ctx, "alice", "c2", []string{"100"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConflict, status)
	assert.Empty(t, f.stored(t, "c2").SubmittedTweets)
}

func TestSubmitTweetsAuthorEligibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"200"}).
		Return([]domain.SubmittedTweet{post("200", "stranger")}, nil)
	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"201"}).
		Return([]domain.SubmittedTweet{post("201", "bob")}, nil)

	status, _, err := f.uc.SubmitTweets(ctx, "mgr", "c1", []string{"200"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotEligible, status)

	indexed, err := f.campaigns.FindIndexedTweet(ctx, "200")
	require.NoError(t, err)
	assert.Nil(t, indexed)

	// Managers may submit posts written by listed influencers.
	status, _, err = f.uc.SubmitTweets(ctx, "mgr", "c1", []string{"201"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoContent, status)
	assert.True(t, f.stored(t, "c1").HasTweet("201"))
}

func TestSubmitTweetsOutsiderForbidden(t *testing.T) {
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"300"}).
		Return([]domain.SubmittedTweet{post("300", "eve")}, nil)

	status, tweets, err := f.uc.SubmitTweets(context.Background(), "eve", "c1", []string{"300"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusForbidden, status)
	assert.Equal(t, []port.TweetStatus{{ID: "300", Status: domain.StatusForbidden}}, tweets)
}

func TestSubmitTweetsMixedAuthorsFromInfluencer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"1", "2"}).
		Return([]domain.SubmittedTweet{post("1", "alice"), post("2", "bob")}, nil)

	status, tweets, err := f.uc.SubmitTweets(ctx, "alice", "c1", []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalid, status)
	assert.Nil(t, tweets)
	assert.Empty(t, f.stored(t, "c1").SubmittedTweets)
}

func TestSubmitTweetsPartialBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))
	require.NoError(t, f.campaigns.AttachTweet(ctx, "c1", post("2", "bob")))

	f.posts.EXPECT().
		FetchPostsByIDs(mock.Anything, []string{"1", "2", "3"}).
		Return([]domain.SubmittedTweet{post("1", "alice"), post("2", "bob"), post("3", "bob")}, nil)

	status, tweets, err := f.uc.SubmitTweets(ctx, "mgr", "c1", []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConflict, status)
	assert.Equal(t, []port.TweetStatus{
		{ID: "1", Status: domain.StatusNoContent},
		{ID: "2", Status: domain.StatusConflict},
		{ID: "3", Status: domain.StatusNoContent},
	}, tweets)
	assert.Len(t, f.stored(t, "c1").SubmittedTweets, 3)
}

func TestSubmitTweetsRequestErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))

	status, _, err := f.uc.SubmitTweets(ctx, "alice", "c1", []string{"not a tweet"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalid, status)

	status, _, err = f.uc.SubmitTweets(ctx, "alice", "c1", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalid, status)

	status, _, err = f.uc.SubmitTweets(ctx, "alice", "missing", []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, status)

	f.posts.EXPECT().FetchPostsByIDs(mock.Anything, []string{"404"}).Return(nil, nil)
	status, _, err = f.uc.SubmitTweets(ctx, "alice", "c1", []string{"404"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, status)
}

func TestDeleteTweet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"), standardCampaign("c2"))
	require.NoError(t, f.campaigns.AttachTweet(ctx, "c1", post("100", "alice")))
	require.NoError(t, f.campaigns.AttachTweet(ctx, "c2", post("200", "alice")))

	for _, tc := range []struct {
		name     string
		actor    string
		campaign string
		tweet    string
		expected domain.Status
	}{
		{"unknown campaign", "alice", "missing", "100", domain.StatusNotFound},
		{"tweet never indexed", "alice", "c1", "999", domain.StatusNotFound},
		{"other influencer", "bob", "c1", "100", domain.StatusForbidden},
		{"campaign does not hold tweet", "alice", "c1", "200", domain.StatusStale},
	} {
		t.Run(tc.name, func(t *testing.T) {
			status, err := f.uc.DeleteTweet(ctx, tc.actor, tc.campaign, tc.tweet)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	status, err := f.uc.DeleteTweet(ctx, "mgr", "c1", "100")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoContent, status)
	assert.Empty(t, f.stored(t, "c1").SubmittedTweets)

	indexed, err := f.campaigns.FindIndexedTweet(ctx, "100")
	require.NoError(t, err)
	assert.Nil(t, indexed)

	status, err = f.uc.DeleteTweet(ctx, "alice", "c2", "200")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoContent, status)
}

func TestSubmitPostsCampaignDeletedMeanwhile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.insert(t, standardCampaign("c1"))
	loaded := f.stored(t, "c1")
	require.NoError(t, f.campaigns.DeleteCampaigns(ctx, []string{"c1"}))

	statuses, err := f.uc.SubmitPosts(ctx, "alice", loaded, []domain.SubmittedTweet{post("100", "alice")})
	require.NoError(t, err)
	assert.Equal(t, []domain.Status{domain.StatusNotFound}, statuses)
	assert.False(t, loaded.HasTweet("100"))

	indexed, err := f.campaigns.FindIndexedTweet(ctx, "100")
	require.NoError(t, err)
	assert.Nil(t, indexed)
}
