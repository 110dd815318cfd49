package domain

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// CampaignInput is the client-writable part of a campaign. Fields such as
// creator, permissions, users or submittedTweets are not part of the type
// and are therefore dropped when a request body is decoded into it.
type CampaignInput struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" validate:"required,max=200"`
	Description  string     `json:"description" validate:"max=5000"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	TweetCount   *int       `json:"tweetCount" validate:"omitempty,min=0"`
	Influencers  []string   `json:"influencers" validate:"dive,required"`
	Managers     []string   `json:"managers" validate:"dive,required"`
	ExternalLink string     `json:"externalLink" validate:"omitempty,url"`
	Image        string     `json:"image" validate:"omitempty,url"`
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	ErrEndBeforeStart = errors.New("end date precedes start date")
)

// Validate checks the input before it reaches persistence.
func (in CampaignInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// ApplyTo copies the mutable fields onto c. Identity, ownership, creation
// date, hide state and submitted tweets are left untouched.
func (in CampaignInput) ApplyTo(c *Campaign) {
	c.Name = in.Name
	c.Description = in.Description
	c.StartDate = in.StartDate
	c.EndDate = in.EndDate
	c.TweetCount = in.TweetCount
	c.Influencers = dedupe(in.Influencers)
	c.Managers = dedupe(in.Managers)
	c.ExternalLink = in.ExternalLink
	c.Image = in.Image
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
