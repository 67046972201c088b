package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSessionRequest struct {
	URLQuery string `json:"url_query" validate:"max=4096"`
}

type SessionMutationRequest struct {
	Action  string `json:"action" validate:"required,oneof=set_query select_suggestion set_consult clear_consult toggle_specialty remove_specialty set_sort clear_sort clear_all"`
	Value   string `json:"value" validate:"max=200"`
	Checked bool   `json:"checked"`
}

// Response DTOs

// URLUpdate tells the page how to rewrite its address. Replace is always true: filter
// changes never add history entries.
type URLUpdate struct {
	Query   string `json:"query"`
	Href    string `json:"href"`
	Replace bool   `json:"replace"`
}

type SessionResponse struct {
	ID          uuid.UUID               `json:"id"`
	Phase       string                  `json:"phase"`
	ExpiresAt   time.Time               `json:"expires_at"`
	Directory   *DirectoryResponse      `json:"directory"`
	URL         *URLUpdate              `json:"url,omitempty"`
	Suggestions *SuggestionListResponse `json:"suggestions,omitempty"`
}
