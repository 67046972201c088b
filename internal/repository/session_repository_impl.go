package repository

import (
	"context"
	"sync"
	"time"

	"healthhub-directory/internal/domain/entity"
	domainRepo "healthhub-directory/internal/domain/repository"

	"github.com/google/uuid"
)

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
	now      func() time.Time
}

// NewMemorySessionRepository keeps sessions in process memory. Expired sessions are
// dropped when looked up.
func NewMemorySessionRepository() domainRepo.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]entity.Session),
		now:      time.Now,
	}
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if session.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, nil
	}
	found := cloneSession(&session)
	return &found, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func cloneSession(s *entity.Session) entity.Session {
	c := *s
	if s.Filters.Specialties != nil {
		c.Filters.Specialties = append([]string(nil), s.Filters.Specialties...)
	}
	return c
}
