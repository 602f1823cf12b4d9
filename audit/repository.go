// audit/repository.go
package audit

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repository is an append-only audit trail. Entries are never mutated or
// deleted; List returns them newest first.
type Repository interface {
	Record(ctx context.Context, log AuditLog) error
	List(ctx context.Context) ([]AuditLog, error)
}

// MemoryRepository keeps the trail in process memory, starting from the
// seeded clinic dataset.
type MemoryRepository struct {
	mu   sync.RWMutex
	logs []AuditLog
}

var _ Repository = &MemoryRepository{}

// NewMemoryRepository creates a repository pre-populated with the given
// entries, typically SeedLogs().
func NewMemoryRepository(seed []AuditLog) *MemoryRepository {
	logs := make([]AuditLog, len(seed))
	copy(logs, seed)
	return &MemoryRepository{logs: logs}
}

func (r *MemoryRepository) Record(ctx context.Context, log AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.ID == "" {
		log.ID = fmt.Sprintf("l%03d", len(r.logs)+1)
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	logs := make([]AuditLog, len(r.logs))
	copy(logs, r.logs)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}
