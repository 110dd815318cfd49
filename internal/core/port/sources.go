package port

import (
	"context"

	"campaign-tracker/internal/core/domain"
)

// PostSource fetches authoritative post data from the external social
// network. Ids that do not resolve are omitted from the result.
type PostSource interface {
	FetchPostsByIDs(ctx context.Context, ids []string) ([]domain.SubmittedTweet, error)
}

// ProfileSource looks user profiles up by screen name on the external
// social network.
type ProfileSource interface {
	LookupUsers(ctx context.Context, screenNames []string) ([]domain.User, error)
}
