package db

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// SeedUsers is the number of demo users Seed creates.
const SeedUsers = 6

// Seed inserts demo users, campaigns and submitted tweets. User ids are
// "seed-user-1".."seed-user-N"; user 1 owns every campaign.
func Seed(ctx context.Context, campaigns port.CampaignRepository, users port.UserRepository, now time.Time) error {
	r := rand.New(rand.NewSource(now.UnixNano()))

	ids := make([]string, 0, SeedUsers)
	for i := 1; i <= SeedUsers; i++ {
		u := domain.User{
			ID:         fmt.Sprintf("seed-user-%d", i),
			Name:       fmt.Sprintf("Demo User %d", i),
			ScreenName: fmt.Sprintf("demo_user_%d", i),
			DateAdded:  now,
		}
		if err := users.UpsertUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		ids = append(ids, u.ID)
	}

	tweetSeq := now.Unix() * 1000
	for i := 1; i <= 5; i++ {
		start := now.AddDate(0, 0, -r.Intn(20))
		end := start.AddDate(0, 0, 7+r.Intn(30))
		tweetCount := 1 + r.Intn(4)
		c := domain.Campaign{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("Campaign %d", i),
			Description: "Demo campaign",
			Creator:     ids[0],
			DateAdded:   now.Add(-time.Duration(i) * time.Hour),
			StartDate:   &start,
			EndDate:     &end,
			TweetCount:  &tweetCount,
			Managers:    []string{ids[1]},
			Influencers: ids[2:],
		}
		if err := campaigns.InsertCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}

		for _, author := range c.Influencers {
			for j := r.Intn(tweetCount + 1); j > 0; j-- {
				tweetSeq++
				t := domain.SubmittedTweet{
					ID:        strconv.FormatInt(tweetSeq, 10),
					AuthorID:  author,
					CreatedAt: now.Add(-time.Duration(r.Intn(72)) * time.Hour),
				}
				if err := campaigns.AttachTweet(ctx, c.ID, t); err != nil {
					return fmt.Errorf("seed tweet %s: %w", t.ID, err)
				}
			}
		}
	}
	return nil
}
