package domain

import (
	"slices"
	"sort"
	"time"
)

// Campaign represents a promotional ask tracked by the service. Role
// assignments are stored as user ids; ownership is derived from Creator.
// HiddenFor is a per-user view preference and is never serialised to
// clients.
type Campaign struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Creator      string     `json:"creator"`
	DateAdded    time.Time  `json:"dateAdded"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	TweetCount   *int       `json:"tweetCount,omitempty"`
	ExternalLink string     `json:"externalLink,omitempty"`
	Image        string     `json:"image,omitempty"`
	Managers     []string   `json:"managers"`
	Influencers  []string   `json:"influencers"`
	HiddenFor    []string   `json:"-"`

	SubmittedTweets []SubmittedTweet `json:"submittedTweets"`
}

// SubmittedTweet is a reference to an external post attached to a campaign.
// CreatedAt is the post's own timestamp, not the submission time.
type SubmittedTweet struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// IndexedTweet is an entry of the global dedup index. Every attached tweet
// id appears there exactly once together with the campaign that owns it.
type IndexedTweet struct {
	ID         string
	CampaignID string
	AuthorID   string
}

// HasTweet reports whether the campaign currently holds the given tweet id.
func (c *Campaign) HasTweet(id string) bool {
	return slices.ContainsFunc(c.SubmittedTweets, func(t SubmittedTweet) bool { return t.ID == id })
}

// IsInfluencer reports literal membership in the influencer list.
func (c *Campaign) IsInfluencer(userID string) bool {
	return slices.Contains(c.Influencers, userID)
}

// IsHiddenFor reports whether userID has hidden the campaign.
func (c *Campaign) IsHiddenFor(userID string) bool {
	return slices.Contains(c.HiddenFor, userID)
}

// TweetsBy returns the submitted tweets authored by userID, preserving order.
func (c *Campaign) TweetsBy(userID string) []SubmittedTweet {
	out := make([]SubmittedTweet, 0)
	for _, t := range c.SubmittedTweets {
		if t.AuthorID == userID {
			out = append(out, t)
		}
	}
	return out
}

// SortTweets orders submitted tweets newest first.
func SortTweets(tweets []SubmittedTweet) {
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
}

// MemberIDs returns managers, creator and influencers in that order with
// duplicates removed.
func (c *Campaign) MemberIDs() []string {
	ids := make([]string, 0, len(c.Managers)+len(c.Influencers)+1)
	seen := make(map[string]struct{}, cap(ids))
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range c.Managers {
		add(id)
	}
	add(c.Creator)
	for _, id := range c.Influencers {
		add(id)
	}
	return ids
}

// CampaignView is a campaign as returned to a particular viewer: the stored
// document plus every viewer-relative derived field.
type CampaignView struct {
	Campaign
	Completion

	Users       []User           `json:"users"`
	UserTweets  []SubmittedTweet `json:"userTweets"`
	Permissions Permissions      `json:"permissions"`
	Hidden      bool             `json:"hidden"`
}
