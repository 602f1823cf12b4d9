// db/session_store.go
package db

import (
	"context"

	"github.com/meridianhealth/clinicgate/session"
)

// RedisSessionStore implements session.Store on top of the encrypted redis
// cache. Sessions expire with the configured TTL, mirroring the original
// client's tab-scoped session storage.
type RedisSessionStore struct{}

var _ session.Store = &RedisSessionStore{}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

func (r *RedisSessionStore) SaveSession(ctx context.Context, s *session.Session) error {
	return CacheSession(ctx, s)
}

func (r *RedisSessionStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return GetCachedSession(ctx, id)
}

func (r *RedisSessionStore) DeleteSession(ctx context.Context, id string) error {
	return DeleteCachedSession(ctx, id)
}

func (r *RedisSessionStore) SavePending(ctx context.Context, p *session.PendingLogin) error {
	return CachePendingLogin(ctx, p)
}

func (r *RedisSessionStore) GetPending(ctx context.Context, token string) (*session.PendingLogin, error) {
	return GetCachedPendingLogin(ctx, token)
}

func (r *RedisSessionStore) DeletePending(ctx context.Context, token string) error {
	return DeleteCachedPendingLogin(ctx, token)
}
