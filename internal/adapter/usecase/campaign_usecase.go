package usecase

import (
	"log/slog"
	"time"

	"campaign-tracker/internal/core/port"
)

// CampaignUseCase provides business logic for campaign reads, mutations
// and tweet submission. It orchestrates domain functions and the outbound
// ports to implement the port.CampaignUseCase interface.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	users     port.UserRepository
	posts     port.PostSource
	profiles  port.ProfileSource
	logger    *slog.Logger

	// now is the clock used for scoring and creation dates.
	now func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided ports. A nil
// logger discards output.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	users port.UserRepository,
	posts port.PostSource,
	profiles port.ProfileSource,
	logger *slog.Logger,
) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{
		campaigns: campaigns,
		users:     users,
		posts:     posts,
		profiles:  profiles,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
