package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"campaign-tracker/internal/core/domain"
)

// ResolveUsers returns the users for screenNames. Names not yet stored are
// looked up on the profile source and saved before returning.
func (u *CampaignUseCase) ResolveUsers(ctx context.Context, screenNames []string) ([]domain.User, error) {
	if len(screenNames) == 0 {
		return []domain.User{}, nil
	}
	known, err := u.users.FindUsersByScreenNames(ctx, screenNames)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	unknown := make([]string, 0, len(screenNames))
	for _, name := range screenNames {
		if !slices.ContainsFunc(known, func(usr domain.User) bool { return usr.ScreenName == name }) &&
			!slices.Contains(unknown, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return known, nil
	}

	fetched, err := u.profiles.LookupUsers(ctx, unknown)
	if err != nil {
		return nil, fmt.Errorf("lookup users: %w", err)
	}
	for _, usr := range fetched {
		if usr.DateAdded.IsZero() {
			usr.DateAdded = u.now()
		}
		if err = u.users.UpsertUser(ctx, usr); err != nil {
			return nil, fmt.Errorf("upsert user: %w", err)
		}
		known = append(known, usr)
	}
	u.logger.Debug("users resolved", slog.Int("known", len(known)-len(fetched)), slog.Int("fetched", len(fetched)))
	return known, nil
}
