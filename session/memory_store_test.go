// session/memory_store_test.go
package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/session"
)

func TestMemoryStoreSessions(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	sess := &session.Session{
		ID:        "s1",
		User:      model.User{ID: "2", Email: "doctor@secure.med", Role: model.RoleDoctor},
		Verified:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.SaveSession(ctx, sess))

	got, err := store.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "doctor@secure.med", got.User.Email)

	// Unknown ids are (nil, nil), not errors.
	got, err = store.GetSession(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.DeleteSession(ctx, "s1"))
	got, err = store.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStorePendingLogins(t *testing.T) {
	store := session.NewMemoryStore()
	ctx := context.Background()

	pending := &session.PendingLogin{
		Token:     "t1",
		User:      model.User{ID: "1", Email: "admin@secure.med", Role: model.RoleAdmin},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.SavePending(ctx, pending))

	got, err := store.GetPending(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.RoleAdmin, got.User.Role)

	require.NoError(t, store.DeletePending(ctx, "t1"))
	got, err = store.GetPending(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
