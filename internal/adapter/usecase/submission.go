package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// SubmitTweets resolves tweet references through the post source and hands
// the authoritative posts to SubmitPosts. The overall status is the first
// per-tweet failure; tweets before it may already be persisted.
func (u *CampaignUseCase) SubmitTweets(ctx context.Context, actorID, campaignID string, refs []string) (domain.Status, []port.TweetStatus, error) {
	ids, ok := domain.ParseTweetRefs(refs)
	if !ok {
		return domain.StatusInvalid, nil, nil
	}

	campaign, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return 0, nil, fmt.Errorf("get campaign: %w", err)
	}
	if campaign == nil {
		return domain.StatusNotFound, nil, nil
	}

	posts, err := u.posts.FetchPostsByIDs(ctx, ids)
	if err != nil {
		return 0, nil, fmt.Errorf("fetch posts: %w", err)
	}
	if len(posts) == 0 {
		return domain.StatusNotFound, nil, nil
	}

	// Only managers may submit tweets written by someone else.
	if !domain.ResolvePermissions(actorID, *campaign).Manager {
		for _, p := range posts {
			if p.AuthorID != actorID {
				return domain.StatusInvalid, nil, nil
			}
		}
	}

	statuses, err := u.SubmitPosts(ctx, actorID, campaign, posts)
	if err != nil {
		return 0, nil, err
	}
	result := make([]port.TweetStatus, len(posts))
	for i, p := range posts {
		result[i] = port.TweetStatus{ID: p.ID, Status: statuses[i]}
	}
	return domain.FirstFailure(statuses), result, nil
}

// SubmitPosts attaches posts to the campaign one by one and returns one
// status per post. A failing post does not stop the remaining ones. The
// campaign is updated in place as posts are attached.
func (u *CampaignUseCase) SubmitPosts(ctx context.Context, actorID string, campaign *domain.Campaign, posts []domain.SubmittedTweet) ([]domain.Status, error) {
	statuses := make([]domain.Status, len(posts))
	for i, post := range posts {
		status, err := u.submitPost(ctx, actorID, campaign, post)
		if err != nil {
			return nil, err
		}
		statuses[i] = status
		u.logger.Debug("tweet submitted",
			slog.String("campaign_id", campaign.ID),
			slog.String("tweet_id", post.ID),
			slog.Int("status", status.Code()),
		)
	}
	return statuses, nil
}

func (u *CampaignUseCase) submitPost(ctx context.Context, actorID string, campaign *domain.Campaign, post domain.SubmittedTweet) (domain.Status, error) {
	if !domain.ResolvePermissions(actorID, *campaign).Influencer {
		return domain.StatusForbidden, nil
	}

	indexed, err := u.campaigns.FindIndexedTweet(ctx, post.ID)
	if err != nil {
		return 0, fmt.Errorf("find indexed tweet: %w", err)
	}
	if indexed != nil || campaign.HasTweet(post.ID) {
		return domain.StatusConflict, nil
	}

	if post.AuthorID != actorID && !campaign.IsInfluencer(post.AuthorID) {
		return domain.StatusNotEligible, nil
	}

	err = u.campaigns.AttachTweet(ctx, campaign.ID, post)
	if errors.Is(err, port.ErrDuplicateTweet) {
		return domain.StatusConflict, nil
	}
	if errors.Is(err, port.ErrCampaignNotFound) {
		return domain.StatusNotFound, nil
	}
	if err != nil {
		return 0, fmt.Errorf("attach tweet: %w", err)
	}
	campaign.SubmittedTweets = append(campaign.SubmittedTweets, post)
	return domain.StatusNoContent, nil
}

// DeleteTweet detaches a tweet from a campaign. Only the tweet's author or
// a manager of the campaign may do so.
func (u *CampaignUseCase) DeleteTweet(ctx context.Context, actorID, campaignID, tweetID string) (domain.Status, error) {
	campaign, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return 0, fmt.Errorf("get campaign: %w", err)
	}
	if campaign == nil {
		return domain.StatusNotFound, nil
	}
	return u.DeletePost(ctx, actorID, campaign, tweetID)
}

// DeletePost removes postID from the campaign and the dedup index.
func (u *CampaignUseCase) DeletePost(ctx context.Context, actorID string, campaign *domain.Campaign, postID string) (domain.Status, error) {
	indexed, err := u.campaigns.FindIndexedTweet(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("find indexed tweet: %w", err)
	}
	if indexed == nil {
		return domain.StatusNotFound, nil
	}
	if indexed.AuthorID != actorID && !domain.ResolvePermissions(actorID, *campaign).Manager {
		return domain.StatusForbidden, nil
	}
	if !campaign.HasTweet(postID) {
		return domain.StatusStale, nil
	}
	if err = u.campaigns.DetachTweet(ctx, campaign.ID, postID); err != nil {
		return 0, fmt.Errorf("detach tweet: %w", err)
	}
	u.logger.Info("tweet removed",
		slog.String("campaign_id", campaign.ID),
		slog.String("tweet_id", postID),
		slog.String("actor_id", actorID),
	)
	return domain.StatusNoContent, nil
}
