package port

import (
	"context"

	"campaign-tracker/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// service. This interface is the primary port into the application domain.
// Business outcomes are returned as domain.Status values; a non-nil error
// always means an infrastructure failure.
type CampaignUseCase interface {
	// ListCampaigns returns one page of the campaigns visible to viewerID.
	ListCampaigns(ctx context.Context, viewerID string, opts domain.ListOptions) ([]domain.CampaignView, error)
	// GetCampaigns returns the named campaigns visible to viewerID.
	GetCampaigns(ctx context.Context, viewerID string, ids []string) ([]domain.CampaignView, domain.Status, error)

	// UpsertCampaign creates a campaign when in.ID is empty, otherwise
	// updates it. It returns the campaign id.
	UpsertCampaign(ctx context.Context, actorID string, in domain.CampaignInput) (string, domain.Status, error)
	// DeleteCampaigns deletes all campaigns or none.
	DeleteCampaigns(ctx context.Context, actorID string, ids []string) (domain.Status, error)
	// HideCampaigns hides campaigns from actorID's own view.
	HideCampaigns(ctx context.Context, actorID string, ids []string) error
	// UnhideCampaigns reverts HideCampaigns.
	UnhideCampaigns(ctx context.Context, actorID string, ids []string) error

	// SubmitTweets resolves tweet references and attaches them to the
	// campaign. It returns the overall status and one status per tweet
	// that reached the submission engine.
	SubmitTweets(ctx context.Context, actorID, campaignID string, refs []string) (domain.Status, []TweetStatus, error)
	// DeleteTweet detaches a submitted tweet.
	DeleteTweet(ctx context.Context, actorID, campaignID, tweetID string) (domain.Status, error)

	// ResolveUsers returns profiles for the screen names, fetching and
	// storing the ones not seen before.
	ResolveUsers(ctx context.Context, screenNames []string) ([]domain.User, error)
}

// TweetStatus is the submission outcome of a single tweet.
type TweetStatus struct {
	ID     string        `json:"id"`
	Status domain.Status `json:"status"`
}
