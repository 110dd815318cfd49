package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
)

func TestResolveUsersFetchesUnknownOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.users.UpsertUser(ctx, domain.User{ID: "1", Name: "Known", ScreenName: "known", DateAdded: testNow.AddDate(0, -1, 0)}))

	f.profiles.EXPECT().
		LookupUsers(mock.Anything, []string{"fresh"}).
		Return([]domain.User{{ID: "2", Name: "Fresh", ScreenName: "fresh"}}, nil).
		Once()

	got, err := f.uc.ResolveUsers(ctx, []string{"known", "fresh", "fresh"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "known", got[0].ScreenName)
	assert.Equal(t, "fresh", got[1].ScreenName)
	assert.Equal(t, testNow, got[1].DateAdded)

	// Now stored, so no second lookup.
	got, err = f.uc.ResolveUsers(ctx, []string{"fresh"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestResolveUsersEmpty(t *testing.T) {
	f := newFixture(t)
	got, err := f.uc.ResolveUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveUsersLookupFailure(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().LookupUsers(mock.Anything, []string{"ghost"}).Return(nil, errors.New("rate limited"))

	_, err := f.uc.ResolveUsers(context.Background(), []string{"ghost"})
	require.Error(t, err)
}
