package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionPhase sequences URL hydration before URL writes.
type SessionPhase string

const (
	// PhaseUninitialized sessions have not read their URL yet and never write it.
	PhaseUninitialized SessionPhase = "uninitialized"
	// PhaseActive sessions mirror every filter change back to the URL.
	PhaseActive SessionPhase = "active"
)

// Session is one open directory page: its filters and where it is in its lifecycle.
type Session struct {
	ID           uuid.UUID    `json:"id"`
	Phase        SessionPhase `json:"phase"`
	PendingQuery string       `json:"pending_query,omitempty"`
	Filters      FilterState  `json:"filters"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

func NewSession(rawQuery string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:           uuid.New(),
		Phase:        PhaseUninitialized,
		PendingQuery: rawQuery,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

func (s *Session) IsActive() bool {
	return s.Phase == PhaseActive
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Hydrate replaces the filters with the ones read from the page URL. It happens at most
// once, and only after the directory holds at least one doctor. It reports whether the
// session changed phase.
func (s *Session) Hydrate(directorySize int, fromURL FilterState) bool {
	if s.Phase != PhaseUninitialized || directorySize == 0 {
		return false
	}
	s.Filters = fromURL
	s.PendingQuery = ""
	s.Phase = PhaseActive
	return true
}

// MutationAction names a user interaction on the page.
type MutationAction string

const (
	ActionSetQuery         MutationAction = "set_query"
	ActionSelectSuggestion MutationAction = "select_suggestion"
	ActionSetConsult       MutationAction = "set_consult"
	ActionClearConsult     MutationAction = "clear_consult"
	ActionToggleSpecialty  MutationAction = "toggle_specialty"
	ActionRemoveSpecialty  MutationAction = "remove_specialty"
	ActionSetSort          MutationAction = "set_sort"
	ActionClearSort        MutationAction = "clear_sort"
	ActionClearAll         MutationAction = "clear_all"
)

// Mutation is a single filter transition.
type Mutation struct {
	Action  MutationAction
	Value   string
	Checked bool
}

// Apply runs m against the session filters. Unknown actions leave the filters untouched
// and return false.
func (s *Session) Apply(m Mutation) bool {
	f := s.Filters
	switch m.Action {
	case ActionSetQuery, ActionSelectSuggestion:
		f.Query = m.Value
	case ActionSetConsult:
		f.ConsultType = ConsultType(m.Value)
	case ActionClearConsult:
		f.ConsultType = ConsultAny
	case ActionToggleSpecialty:
		if m.Checked {
			f = f.WithSpecialty(m.Value)
		} else {
			f = f.WithoutSpecialty(m.Value)
		}
	case ActionRemoveSpecialty:
		f = f.WithoutSpecialty(m.Value)
	case ActionSetSort:
		f.Sort = SortKey(m.Value)
	case ActionClearSort:
		f.Sort = SortNone
	case ActionClearAll:
		f = FilterState{}
	default:
		return false
	}
	s.Filters = f
	return true
}
