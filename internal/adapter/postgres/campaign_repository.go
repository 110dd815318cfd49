package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

const campaignColumns = `id, name, description, creator, date_added, start_date, end_date, tweet_count,
    external_link, image, managers, influencers, hidden_for, submitted_tweets`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Each campaign is one row; its submitted tweets live in a JSONB
// array on that row so every tweet mutation is a single-row update.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// FindVisible returns campaigns where viewerID is creator, manager or
// influencer.
func (r *CampaignRepository) FindVisible(ctx context.Context, viewerID string) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE creator = $1 OR $1 = ANY(managers) OR $1 = ANY(influencers)`
	rows, err := r.pool.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDs returns the existing campaigns among ids.
func (r *CampaignRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ANY($1) ORDER BY date_added`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// InsertCampaign stores a new campaign with an empty tweet list.
func (r *CampaignRepository) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, creator, date_added, start_date, end_date, tweet_count,
     external_link, image, managers, influencers)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Description, c.Creator, c.DateAdded, c.StartDate, c.EndDate, c.TweetCount,
		c.ExternalLink, c.Image, nonNil(c.Managers), nonNil(c.Influencers))
	return err
}

// UpdateCampaign overwrites the mutable fields. Creator, creation date,
// hide state and tweets are never written here.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET
    name = $2, description = $3, start_date = $4, end_date = $5, tweet_count = $6,
    external_link = $7, image = $8, managers = $9, influencers = $10
WHERE id = $1`,
		c.ID, c.Name, c.Description, c.StartDate, c.EndDate, c.TweetCount,
		c.ExternalLink, c.Image, nonNil(c.Managers), nonNil(c.Influencers))
	return err
}

// DeleteCampaigns removes campaigns. Index rows of their tweets are kept so
// the ids cannot be submitted again.
func (r *CampaignRepository) DeleteCampaigns(ctx context.Context, ids []string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = ANY($1)`, ids)
	return err
}

// SetHidden toggles userID in hidden_for. Both directions are idempotent.
func (r *CampaignRepository) SetHidden(ctx context.Context, userID string, ids []string, hidden bool) error {
	query := `UPDATE campaigns SET hidden_for = array_remove(hidden_for, $1) WHERE id = ANY($2)`
	if hidden {
		query = `UPDATE campaigns SET hidden_for = array_append(hidden_for, $1)
        WHERE id = ANY($2) AND NOT ($1 = ANY(hidden_for))`
	}
	_, err := r.pool.Exec(ctx, query, userID, ids)
	return err
}

// FindIndexedTweet returns the dedup index entry for tweetID.
func (r *CampaignRepository) FindIndexedTweet(ctx context.Context, tweetID string) (*domain.IndexedTweet, error) {
	var t domain.IndexedTweet
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, author_id FROM submitted_tweet_index WHERE id = $1`, tweetID).
		Scan(&t.ID, &t.CampaignID, &t.AuthorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AttachTweet claims the id in the dedup index and appends the tweet to the
// campaign in one transaction.
func (r *CampaignRepository) AttachTweet(ctx context.Context, campaignID string, tweet domain.SubmittedTweet) (err error) {
	payload, err := json.Marshal([]domain.SubmittedTweet{tweet})
	if err != nil {
		return err
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO submitted_tweet_index (id, campaign_id, author_id)
VALUES ($1,$2,$3) ON CONFLICT (id) DO NOTHING`, tweet.ID, campaignID, tweet.AuthorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrDuplicateTweet
	}
	tag, err = tx.Exec(ctx, `UPDATE campaigns SET submitted_tweets = submitted_tweets || $2::jsonb WHERE id = $1`, campaignID, payload)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// DetachTweet removes the tweet from the campaign array and the index.
func (r *CampaignRepository) DetachTweet(ctx context.Context, campaignID, tweetID string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `UPDATE campaigns SET submitted_tweets = COALESCE((
        SELECT jsonb_agg(t.elem ORDER BY t.ord)
        FROM jsonb_array_elements(submitted_tweets) WITH ORDINALITY AS t(elem, ord)
        WHERE t.elem->>'id' <> $2
    ), '[]'::jsonb)
WHERE id = $1`, campaignID, tweetID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM submitted_tweet_index WHERE id = $1`, tweetID)
	return err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		tweetsRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Creator,
		&c.DateAdded,
		&c.StartDate,
		&c.EndDate,
		&c.TweetCount,
		&c.ExternalLink,
		&c.Image,
		&c.Managers,
		&c.Influencers,
		&c.HiddenFor,
		&tweetsRaw,
	)
	if err != nil {
		return c, err
	}
	if err = json.Unmarshal(tweetsRaw, &c.SubmittedTweets); err != nil {
		return c, fmt.Errorf("decode submitted tweets of %s: %w", c.ID, err)
	}
	return c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
