package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// CampaignStore implements port.CampaignRepository in process memory. All
// values are copied in and out so callers never share state with the store.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
	index     map[string]domain.IndexedTweet
}

var _ port.CampaignRepository = (*CampaignStore)(nil)

// NewCampaignStore returns an empty store.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{
		campaigns: make(map[string]domain.Campaign),
		index:     make(map[string]domain.IndexedTweet),
	}
}

// FindVisible returns campaigns where viewerID holds any role.
func (s *CampaignStore) FindVisible(_ context.Context, viewerID string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0)
	for _, c := range s.campaigns {
		if domain.ResolvePermissions(viewerID, c).Influencer {
			out = append(out, clone(c))
		}
	}
	return out, nil
}

// GetCampaign returns the campaign or nil.
func (s *CampaignStore) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	c = clone(c)
	return &c, nil
}

// FindByIDs returns the existing campaigns among ids, in ids order.
func (s *CampaignStore) FindByIDs(_ context.Context, ids []string) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if c, ok := s.campaigns[id]; ok {
			out = append(out, clone(c))
		}
	}
	return out, nil
}

func (s *CampaignStore) InsertCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = clone(c)
	return nil
}

// UpdateCampaign replaces the mutable fields of a stored campaign. Tweets
// and hide state are kept from the stored copy.
func (s *CampaignStore) UpdateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.campaigns[c.ID]
	if !ok {
		return nil
	}
	next := clone(c)
	next.Creator = stored.Creator
	next.DateAdded = stored.DateAdded
	next.HiddenFor = stored.HiddenFor
	next.SubmittedTweets = stored.SubmittedTweets
	s.campaigns[c.ID] = next
	return nil
}

// DeleteCampaigns removes campaigns. Their tweets stay in the dedup index.
func (s *CampaignStore) DeleteCampaigns(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.campaigns, id)
	}
	return nil
}

func (s *CampaignStore) SetHidden(_ context.Context, userID string, ids []string, hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		c, ok := s.campaigns[id]
		if !ok {
			continue
		}
		c.HiddenFor = slices.DeleteFunc(slices.Clone(c.HiddenFor), func(u string) bool { return u == userID })
		if hidden {
			c.HiddenFor = append(c.HiddenFor, userID)
		}
		s.campaigns[id] = c
	}
	return nil
}

func (s *CampaignStore) FindIndexedTweet(_ context.Context, tweetID string) (*domain.IndexedTweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.index[tweetID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// AttachTweet claims the id in the index and appends the tweet under one
// lock.
func (s *CampaignStore) AttachTweet(_ context.Context, campaignID string, tweet domain.SubmittedTweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[tweet.ID]; ok {
		return port.ErrDuplicateTweet
	}
	c, ok := s.campaigns[campaignID]
	if !ok {
		return port.ErrCampaignNotFound
	}
	s.index[tweet.ID] = domain.IndexedTweet{ID: tweet.ID, CampaignID: campaignID, AuthorID: tweet.AuthorID}
	c.SubmittedTweets = append(slices.Clone(c.SubmittedTweets), tweet)
	s.campaigns[campaignID] = c
	return nil
}

func (s *CampaignStore) DetachTweet(_ context.Context, campaignID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.index, tweetID)
	c, ok := s.campaigns[campaignID]
	if !ok {
		return nil
	}
	c.SubmittedTweets = slices.DeleteFunc(slices.Clone(c.SubmittedTweets), func(t domain.SubmittedTweet) bool {
		return t.ID == tweetID
	})
	s.campaigns[campaignID] = c
	return nil
}

func clone(c domain.Campaign) domain.Campaign {
	c.Managers = slices.Clone(c.Managers)
	c.Influencers = slices.Clone(c.Influencers)
	c.HiddenFor = slices.Clone(c.HiddenFor)
	c.SubmittedTweets = slices.Clone(c.SubmittedTweets)
	if c.StartDate != nil {
		t := *c.StartDate
		c.StartDate = &t
	}
	if c.EndDate != nil {
		t := *c.EndDate
		c.EndDate = &t
	}
	if c.TweetCount != nil {
		n := *c.TweetCount
		c.TweetCount = &n
	}
	return c
}
