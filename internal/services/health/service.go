package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service reports liveness and, when a database is configured, its reachability.
type Service struct {
	DB *sql.DB
}

// NewService constructs a health service. db may be nil for the in-memory store.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns the health payload and whether every dependency is reachable.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	if s == nil || s.DB == nil {
		return map[string]any{"ok": true, "store": "memory"}, true
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return map[string]any{"ok": false, "store": "postgres", "error": "database unreachable"}, false
	}
	return map[string]any{"ok": true, "store": "postgres"}, true
}
