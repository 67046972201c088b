package repository

import (
	"context"

	"healthhub-directory/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores open directory pages. FindByID returns nil, nil when the
// session does not exist or has expired.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
