package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ port.UserRepository = (*UserRepository)(nil)

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindUsersByIDs returns the known users among ids.
func (r *UserRepository) FindUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, screen_name, image, location, date_added FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanUser)
}

// FindUsersByScreenNames returns the known users among screen names.
func (r *UserRepository) FindUsersByScreenNames(ctx context.Context, names []string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, screen_name, image, location, date_added FROM users WHERE screen_name = ANY($1)`, names)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanUser)
}

// UpsertUser inserts u or refreshes its profile fields. date_added is only
// written on insert.
func (r *UserRepository) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, name, screen_name, image, location, date_added)
VALUES ($1,$2,$3,$4,$5,COALESCE($6, now()))
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    screen_name = EXCLUDED.screen_name,
    image = EXCLUDED.image,
    location = EXCLUDED.location`,
		u.ID, u.Name, u.ScreenName, u.Image, u.Location, nullTime(u))
	return err
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.ScreenName, &u.Image, &u.Location, &u.DateAdded)
	return u, err
}

func nullTime(u domain.User) any {
	if u.DateAdded.IsZero() {
		return nil
	}
	return u.DateAdded
}
