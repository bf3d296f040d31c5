package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzapos-backend/internal/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	sess := &domain.Session{
		User: domain.AppUser{
			ID: "u1", Name: "Maria", Role: domain.RoleAdmin, IsActive: true,
			AllowedModules: []domain.Module{domain.ModuleSales},
		},
		IssuedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Maria", loaded.User.Name)
	assert.Equal(t, domain.RoleAdmin, loaded.User.Role)
}

func TestStore_LoadEmptySlot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&domain.Session{User: domain.AppUser{ID: "u1"}}))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing again is a no-op.
	assert.NoError(t, store.Clear())
}

func TestStore_CreatesParentDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "session.json"))
	require.NoError(t, store.Save(&domain.Session{User: domain.AppUser{ID: "u1"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "u1", loaded.User.ID)
}
