// audit/service.go
package audit

import (
	"context"
)

type Service interface {
	Record(ctx context.Context, log AuditLog) error
	List(ctx context.Context) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, log AuditLog) error {
	return s.repo.Record(ctx, log)
}

func (s *service) List(ctx context.Context) ([]AuditLog, error) {
	return s.repo.List(ctx)
}
