package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"campaign-tracker/internal/core/domain"
)

// UpsertCampaign inserts a campaign owned by actorID when in.ID is empty.
// Otherwise it updates the stored campaign, provided actorID manages it
// according to the stored role lists.
func (u *CampaignUseCase) UpsertCampaign(ctx context.Context, actorID string, in domain.CampaignInput) (string, domain.Status, error) {
	if err := in.Validate(); err != nil {
		u.logger.Debug("invalid campaign input", slog.Any("error", err))
		return "", domain.StatusInvalid, nil
	}

	if in.ID == "" {
		c := domain.Campaign{
			ID:        uuid.NewString(),
			Creator:   actorID,
			DateAdded: u.now(),
		}
		in.ApplyTo(&c)
		if err := u.campaigns.InsertCampaign(ctx, c); err != nil {
			return "", 0, fmt.Errorf("insert campaign: %w", err)
		}
		u.logger.Info("campaign created", slog.String("campaign_id", c.ID), slog.String("creator", actorID))
		return c.ID, domain.StatusCreated, nil
	}

	stored, err := u.campaigns.GetCampaign(ctx, in.ID)
	if err != nil {
		return "", 0, fmt.Errorf("get campaign: %w", err)
	}
	if stored == nil {
		return "", domain.StatusNotFound, nil
	}
	if !domain.ResolvePermissions(actorID, *stored).Manager {
		return "", domain.StatusForbidden, nil
	}
	in.ApplyTo(stored)
	if err = u.campaigns.UpdateCampaign(ctx, *stored); err != nil {
		return "", 0, fmt.Errorf("update campaign: %w", err)
	}
	return stored.ID, domain.StatusOK, nil
}

// DeleteCampaigns deletes the named campaigns only if actorID created every
// one of them. Ids that do not exist are ignored.
func (u *CampaignUseCase) DeleteCampaigns(ctx context.Context, actorID string, ids []string) (domain.Status, error) {
	if len(ids) == 0 {
		return domain.StatusInvalid, nil
	}
	found, err := u.campaigns.FindByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("find campaigns: %w", err)
	}
	if len(found) == 0 {
		return domain.StatusNotFound, nil
	}
	owned := make([]string, 0, len(found))
	for _, c := range found {
		if !domain.ResolvePermissions(actorID, c).Owner {
			return domain.StatusForbidden, nil
		}
		owned = append(owned, c.ID)
	}
	if err = u.campaigns.DeleteCampaigns(ctx, owned); err != nil {
		return 0, fmt.Errorf("delete campaigns: %w", err)
	}
	u.logger.Info("campaigns deleted", slog.Any("campaign_ids", owned), slog.String("actor_id", actorID))
	return domain.StatusNoContent, nil
}

// HideCampaigns adds actorID to hiddenFor of each campaign.
func (u *CampaignUseCase) HideCampaigns(ctx context.Context, actorID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := u.campaigns.SetHidden(ctx, actorID, ids, true); err != nil {
		return fmt.Errorf("hide campaigns: %w", err)
	}
	return nil
}

// UnhideCampaigns removes actorID from hiddenFor of each campaign.
func (u *CampaignUseCase) UnhideCampaigns(ctx context.Context, actorID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := u.campaigns.SetHidden(ctx, actorID, ids, false); err != nil {
		return fmt.Errorf("unhide campaigns: %w", err)
	}
	return nil
}
