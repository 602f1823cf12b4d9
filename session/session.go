// session/session.go
package session

import (
	"context"
	"time"

	"github.com/meridianhealth/clinicgate/model"
)

// Session is the per-client record of an authenticated identity. At most one
// identity is attached to a session; the Verified flag records that any
// required second-factor step has completed.
type Session struct {
	ID        string     `json:"id"`
	User      model.User `json:"user"`
	Verified  bool       `json:"verified"`
	CreatedAt time.Time  `json:"created_at"`
}

// PendingLogin holds an identity between credential validation and
// second-factor completion. It exists only for privileged logins and is
// distinct from an authenticated session.
type PendingLogin struct {
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

// Store persists sessions and pending logins. Lookups return (nil, nil) when
// the key is unknown or expired.
type Store interface {
	SaveSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error

	SavePending(ctx context.Context, p *PendingLogin) error
	GetPending(ctx context.Context, token string) (*PendingLogin, error)
	DeletePending(ctx context.Context, token string) error
}
