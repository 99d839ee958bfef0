package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/pomodoro/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	// Create stores the session with its phases, all or nothing.
	Create(ctx context.Context, rec *domain.SessionRecord) error
	GetByID(ctx context.Context, id string) (*domain.SessionRecord, error)
	ListRecent(ctx context.Context, days int) ([]*domain.SessionRecord, error)
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	CreateBatch(ctx context.Context, sessionID string, phases []domain.PhaseResult) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.PhaseResult, error)
}
