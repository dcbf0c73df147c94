package database

import (
	"testing"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthStateRepo(t *testing.T) {
	db := SetupTestDB(t)
	repo := newOAuthStateRepo(db.conn)

	now := time.Unix(1700000000, 0)

	t.Run("should consume a live state once", func(t *testing.T) {
		state := &entity.OAuthState{State: "live", ExpireAt: now.Add(120 * time.Second)}
		require.NoError(t, repo.Create(state))
		assert.NotZero(t, state.ID)

		ok, err := repo.Consume("live", now.Add(119*time.Second))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Consume("live", now.Add(119*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should reject an expired state", func(t *testing.T) {
		require.NoError(t, repo.Create(&entity.OAuthState{State: "stale", ExpireAt: now.Add(120 * time.Second)}))

		ok, err := repo.Consume("stale", now.Add(120*time.Second))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should reject an unknown state", func(t *testing.T) {
		ok, err := repo.Consume("unknown", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should reject a duplicate state", func(t *testing.T) {
		require.NoError(t, repo.Create(&entity.OAuthState{State: "dup", ExpireAt: now}))
		require.Error(t, repo.Create(&entity.OAuthState{State: "dup", ExpireAt: now}))
	})

	t.Run("should sweep expired states", func(t *testing.T) {
		require.NoError(t, repo.Create(&entity.OAuthState{State: "fresh", ExpireAt: now.Add(time.Hour)}))

		n, err := repo.DeleteExpired(now.Add(30 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n) // stale and dup

		ok, err := repo.Consume("fresh", now.Add(30*time.Minute))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
