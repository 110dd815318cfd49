package port

import (
	"context"
	"errors"

	"campaign-tracker/internal/core/domain"
)

var (
	// ErrDuplicateTweet is returned by AttachTweet when the tweet id is
	// already present in the dedup index.
	ErrDuplicateTweet = errors.New("tweet already submitted")
	// ErrCampaignNotFound is returned by AttachTweet when the campaign no
	// longer exists. Nothing is written in that case.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// CampaignRepository defines the persistence layer for campaigns and the
// global submitted-tweet dedup index. It is an outbound port in hexagonal
// architecture. Every mutation touches a single campaign atomically.
type CampaignRepository interface {
	// FindVisible returns every campaign where viewerID is creator,
	// manager or influencer.
	FindVisible(ctx context.Context, viewerID string) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// FindByIDs returns the existing campaigns among ids.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Campaign, error)

	// InsertCampaign stores a new campaign.
	InsertCampaign(ctx context.Context, c domain.Campaign) error
	// UpdateCampaign overwrites the mutable fields of an existing campaign.
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	// DeleteCampaigns removes the campaigns with the given ids.
	DeleteCampaigns(ctx context.Context, ids []string) error
	// SetHidden adds userID to, or removes it from, hiddenFor of each
	// campaign. Repeating the call is a no-op.
	SetHidden(ctx context.Context, userID string, ids []string, hidden bool) error

	// FindIndexedTweet looks a tweet id up in the dedup index. It returns
	// nil when the id was never attached.
	FindIndexedTweet(ctx context.Context, tweetID string) (*domain.IndexedTweet, error)
	// AttachTweet records the tweet in the dedup index and appends it to
	// the campaign. It returns ErrDuplicateTweet if the id is taken and
	// ErrCampaignNotFound if the campaign is gone.
	AttachTweet(ctx context.Context, campaignID string, tweet domain.SubmittedTweet) error
	// DetachTweet removes the tweet from the campaign and the index.
	DetachTweet(ctx context.Context, campaignID, tweetID string) error
}

// UserRepository stores resolved user identities.
type UserRepository interface {
	// FindUsersByIDs returns the known users among ids.
	FindUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	// FindUsersByScreenNames returns the known users among screen names.
	FindUsersByScreenNames(ctx context.Context, names []string) ([]domain.User, error)
	// UpsertUser inserts or refreshes a user. DateAdded is set on insert.
	UpsertUser(ctx context.Context, u domain.User) error
}
