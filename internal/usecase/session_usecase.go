package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthhub-directory/internal/converter"
	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/domain/repository"
	"healthhub-directory/internal/infrastructure/metrics"
	"healthhub-directory/pkg/urlstate"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sessionLockStripes bounds the number of mutexes serializing session updates.
const sessionLockStripes = 64

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownAction   = errors.New("unknown filter action")
)

// SessionUsecase drives a directory page through hydration and filter changes.
type SessionUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error)
	ApplyMutation(ctx context.Context, id uuid.UUID, req *dto.SessionMutationRequest) (*dto.SessionResponse, error)
	CloseSession(ctx context.Context, id uuid.UUID) error
}

type sessionUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	doctorRepo  repository.DoctorRepository
	loader      LoadStatusReader
	ttl         time.Duration
	placeholder string
	now         func() time.Time

	// locks serialize read-modify-write cycles per session within this process.
	locks [sessionLockStripes]sync.Mutex
}

func (u *sessionUsecase) lock(id uuid.UUID) func() {
	mu := &u.locks[int(id[len(id)-1])%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

func NewSessionUsecase(
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	doctorRepo repository.DoctorRepository,
	loader LoadStatusReader,
	ttl time.Duration,
	placeholder string,
) SessionUsecase {
	return &sessionUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		doctorRepo:  doctorRepo,
		loader:      loader,
		ttl:         ttl,
		placeholder: placeholder,
		now:         time.Now,
	}
}

func (u *sessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	session := entity.NewSession(req.URLQuery, u.now(), u.ttl)

	if _, err := u.hydrate(ctx, session); err != nil {
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"phase":      session.Phase,
	}).Debug("Directory session opened")

	return u.toResponse(ctx, session, nil)
}

func (u *sessionUsecase) GetSession(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	defer u.lock(id)()

	session, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	hydrated, err := u.hydrate(ctx, session)
	if err != nil {
		return nil, err
	}
	if hydrated {
		if err := u.save(ctx, session); err != nil {
			return nil, err
		}
	}

	return u.toResponse(ctx, session, nil)
}

func (u *sessionUsecase) ApplyMutation(ctx context.Context, id uuid.UUID, req *dto.SessionMutationRequest) (*dto.SessionResponse, error) {
	defer u.lock(id)()

	session, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	// Hydration happens as soon as data is present, so it precedes any change made now.
	if _, err := u.hydrate(ctx, session); err != nil {
		return nil, err
	}

	mutation := entity.Mutation{
		Action:  entity.MutationAction(req.Action),
		Value:   req.Value,
		Checked: req.Checked,
	}
	if !session.Apply(mutation) {
		return nil, ErrUnknownAction
	}
	metrics.SessionTransitions.WithLabelValues(req.Action).Inc()

	if err := u.save(ctx, session); err != nil {
		return nil, err
	}

	var suggestions *dto.SuggestionListResponse
	switch mutation.Action {
	case entity.ActionSetQuery:
		doctors, err := u.doctorRepo.FindAll(ctx)
		if err != nil {
			u.log.Warnf("Failed to find doctors: %+v", err)
			return nil, err
		}
		suggestions = converter.DoctorsToSuggestions(Suggest(doctors, mutation.Value), u.placeholder)
	case entity.ActionSelectSuggestion:
		suggestions = &dto.SuggestionListResponse{Suggestions: []dto.SuggestionResponse{}}
	}

	return u.toResponse(ctx, session, suggestions)
}

func (u *sessionUsecase) CloseSession(ctx context.Context, id uuid.UUID) error {
	defer u.lock(id)()

	if _, err := u.find(ctx, id); err != nil {
		return err
	}
	if err := u.sessionRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *sessionUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := u.sessionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *sessionUsecase) save(ctx context.Context, session *entity.Session) error {
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	return nil
}

// hydrate moves an uninitialized session to active once the directory has data.
func (u *sessionUsecase) hydrate(ctx context.Context, session *entity.Session) (bool, error) {
	if session.IsActive() {
		return false, nil
	}
	count, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return false, err
	}
	return session.Hydrate(count, urlstate.ParseQuery(session.PendingQuery)), nil
}

func (u *sessionUsecase) toResponse(ctx context.Context, session *entity.Session, suggestions *dto.SuggestionListResponse) (*dto.SessionResponse, error) {
	view, err := buildView(ctx, u.doctorRepo, u.loader, session.Filters, u.placeholder)
	if err != nil {
		u.log.Warnf("Failed to build directory view: %+v", err)
		return nil, err
	}

	resp := &dto.SessionResponse{
		ID:          session.ID,
		Phase:       string(session.Phase),
		ExpiresAt:   session.ExpiresAt,
		Directory:   converter.DirectoryToResponse(view),
		Suggestions: suggestions,
	}

	// Only an active session writes its URL; before hydration the page URL is left alone.
	if session.IsActive() {
		resp.URL = &dto.URLUpdate{
			Query:   urlstate.Query(session.Filters),
			Href:    urlstate.Href(session.Filters),
			Replace: true,
		}
	}
	return resp, nil
}
