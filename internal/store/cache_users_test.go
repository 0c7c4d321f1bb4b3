package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserCache struct {
	entries map[int64]models.User
	getErr  error
	sets    int
}

func (c *fakeUserCache) Get(_ context.Context, ids []int64) (map[int64]models.User, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := map[int64]models.User{}
	for _, id := range ids {
		if u, ok := c.entries[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (c *fakeUserCache) Set(_ context.Context, users []models.User) error {
	c.sets++
	for _, u := range users {
		c.entries[u.ID] = u
	}
	return nil
}

type fakeUserRepository struct {
	users     map[int64]models.User
	requested [][]int64
}

func (r *fakeUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindUsersByIDs(_ context.Context, ids []int64) ([]models.User, error) {
	r.requested = append(r.requested, ids)
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepository) ListUsersByRole(_ context.Context, _ models.Role) ([]models.User, error) {
	return nil, nil
}

func directory() map[int64]models.User {
	return map[int64]models.User{
		1: {ID: 1, FullName: "One"},
		2: {ID: 2, FullName: "Two"},
		3: {ID: 3, FullName: "Three"},
	}
}

func TestCachedUserRepository_LoadsOnlyMisses(t *testing.T) {
	cache := &fakeUserCache{entries: map[int64]models.User{1: {ID: 1, FullName: "One"}}}
	repo := &fakeUserRepository{users: directory()}
	cached := NewCachedUserRepository(repo, cache)

	users, err := cached.FindUsersByIDs(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, [][]int64{{2, 3}}, repo.requested)
	assert.Len(t, cache.entries, 3)
}

func TestCachedUserRepository_AllHitsSkipRepository(t *testing.T) {
	cache := &fakeUserCache{entries: directory()}
	repo := &fakeUserRepository{users: directory()}
	cached := NewCachedUserRepository(repo, cache)

	users, err := cached.FindUsersByIDs(context.Background(), []int64{2, 3})

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Empty(t, repo.requested)
	assert.Zero(t, cache.sets)
}

func TestCachedUserRepository_CacheFailureFallsBack(t *testing.T) {
	cache := &fakeUserCache{entries: map[int64]models.User{}, getErr: errors.New("redis down")}
	repo := &fakeUserRepository{users: directory()}
	cached := NewCachedUserRepository(repo, cache)

	users, err := cached.FindUsersByIDs(context.Background(), []int64{1})

	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, [][]int64{{1}}, repo.requested)
}

func TestCachedUserRepository_FindUserByID_NotFound(t *testing.T) {
	cached := NewCachedUserRepository(&fakeUserRepository{users: directory()}, &fakeUserCache{entries: map[int64]models.User{}})

	_, err := cached.FindUserByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserCacheKey(t *testing.T) {
	assert.Equal(t, "legal:user:42", userCacheKey(42))
}
