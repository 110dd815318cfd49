package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func window(before, after time.Duration) (*time.Time, *time.Time) {
	return ptr(now.Add(-before)), ptr(now.Add(after))
}

func TestScoreCampaignHalfDone(t *testing.T) {
	start, end := window(10*24*time.Hour, 10*24*time.Hour)
	c := Campaign{
		StartDate:   start,
		EndDate:     end,
		TweetCount:  ptr(2),
		Influencers: []string{"inf"},
		SubmittedTweets: []SubmittedTweet{
			{ID: "1", AuthorID: "inf", CreatedAt: now.Add(-24 * time.Hour)},
		},
	}

	got := ScoreCampaign(c, "inf", now)

	assert.InDelta(t, 0.5, got.DatePercentage, 1e-9)
	assert.InDelta(t, 0.5, got.TweetPercentage, 1e-9)
	assert.InDelta(t, 0.4, got.CompletionOffBy, 1e-9)
	assert.InDelta(t, 0.5, got.UserTweetPercentage, 1e-9)
	assert.InDelta(t, 0.4, got.ViewerUrgency, 1e-9)
}

func TestScoreCampaignNoPosts(t *testing.T) {
	start, end := window(10*24*time.Hour, 10*24*time.Hour)
	c := Campaign{StartDate: start, EndDate: end, TweetCount: ptr(2), Influencers: []string{"inf"}, SubmittedTweets: []SubmittedTweet{}}

	got := ScoreCampaign(c, "inf", now)

	assert.Equal(t, 0.0, got.TweetPercentage)
	assert.InDelta(t, 1.23, got.CompletionOffBy, 1e-9)
	// The viewer value never exceeds the default cap of 1.
	assert.InDelta(t, 1.0, got.ViewerUrgency, 1e-9)
}

func TestScoreCampaignCooldown(t *testing.T) {
	start, end := window(10*24*time.Hour, 10*24*time.Hour)
	c := Campaign{
		StartDate:   start,
		EndDate:     end,
		TweetCount:  ptr(4),
		Influencers: []string{"inf", "other"},
		SubmittedTweets: []SubmittedTweet{
			{ID: "1", AuthorID: "inf", CreatedAt: now.Add(-3 * time.Hour)},
		},
	}

	got := ScoreCampaign(c, "inf", now)
	assert.InDelta(t, 0.25*0.33, got.ViewerUrgency, 1e-9)
	assert.Greater(t, got.CompletionOffBy, got.ViewerUrgency)

	// Another viewer has not posted and sees the plain score.
	other := ScoreCampaign(c, "other", now)
	assert.InDelta(t, other.CompletionOffBy, other.ViewerUrgency, 1e-9)
}

func TestDatePercentageEdges(t *testing.T) {
	start, end := window(24*time.Hour, 24*time.Hour)

	assert.Equal(t, 0.0, DatePercentage(nil, end, now))
	assert.Equal(t, 0.0, DatePercentage(start, nil, now))
	assert.Equal(t, 0.0, DatePercentage(ptr(now.Add(time.Hour)), ptr(now.Add(2*time.Hour)), now), "not started")
	assert.Equal(t, 0.0, DatePercentage(start, start, now), "empty window")
	assert.InDelta(t, 0.5, DatePercentage(start, end, now), 1e-9)

	overdue := DatePercentage(ptr(now.Add(-4*time.Hour)), ptr(now.Add(-2*time.Hour)), now)
	assert.InDelta(t, 2.0, overdue, 1e-9)
}

func TestTweetPercentageEdges(t *testing.T) {
	tweets := []SubmittedTweet{{ID: "1", AuthorID: "a"}}

	assert.Equal(t, 0.0, TweetPercentage(Campaign{TweetCount: ptr(0), Influencers: []string{"a"}, SubmittedTweets: tweets}))
	assert.Equal(t, 0.0, TweetPercentage(Campaign{Influencers: []string{"a"}, SubmittedTweets: tweets}))
	assert.Equal(t, 0.0, TweetPercentage(Campaign{TweetCount: ptr(1), Influencers: []string{"a"}}))
	assert.Equal(t, 0.0, TweetPercentage(Campaign{TweetCount: ptr(1), SubmittedTweets: tweets}), "no influencers")
	assert.Equal(t, 0.5, TweetPercentage(Campaign{TweetCount: ptr(1), Influencers: []string{"a", "b"}, SubmittedTweets: tweets}))
}

func TestCompletionOffByBounds(t *testing.T) {
	for _, tc := range []struct {
		name     string
		date     float64
		tweet    float64
		expected float64
	}{
		{"not started", 0, 0.5, 0},
		{"target met", 0.5, 1, 0},
		{"target exceeded", 3, 1.5, 0},
		{"ahead of schedule", 0.1, 0.9, -0.4},
		{"overdue and untouched", 1.5, 0, 2.23},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CompletionOffBy(tc.date, tc.tweet), 1e-9)
		})
	}
}

func TestViewerUrgencyNeverNegative(t *testing.T) {
	start, end := window(time.Hour, 99*time.Hour)
	c := Campaign{
		StartDate: start, EndDate: end, TweetCount: ptr(2), Influencers: []string{"a"},
		SubmittedTweets: []SubmittedTweet{{ID: "1", AuthorID: "a", CreatedAt: now.Add(-48 * time.Hour)}},
	}

	got := ScoreCampaign(c, "a", now)
	assert.Less(t, got.CompletionOffBy, 0.0)
	assert.Equal(t, 0.0, got.ViewerUrgency)
	assert.GreaterOrEqual(t, got.TweetPercentage, 0.0)
}
