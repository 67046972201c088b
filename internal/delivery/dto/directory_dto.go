package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// MaxFilterQueryLength caps the raw filter query string. The same cap applies to the
// page URL a session is opened with.
const MaxFilterQueryLength = 4096

// DoctorFilterRequest carries the raw filter query string. Individual values are read
// verbatim; only the total size is bounded.
type DoctorFilterRequest struct {
	RawQuery string `validate:"max=4096"`
}

type SuggestionRequest struct {
	Input string `validate:"max=200"`
}

// Response DTOs

type ClinicResponse struct {
	Name         string `json:"name"`
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	LogoURL      string `json:"logo_url,omitempty"`
}

type DoctorCardResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	NameInitials    string          `json:"name_initials"`
	PhotoURL        string          `json:"photo_url"`
	HasPhoto        bool            `json:"has_photo"`
	Introduction    string          `json:"introduction,omitempty"`
	Specialities    []string        `json:"specialities"`
	SpecialityText  string          `json:"speciality_text"`
	ExperienceYears int             `json:"experience_years"`
	ExperienceLabel string          `json:"experience_label"`
	Fee             string          `json:"fee"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
	Languages       []string        `json:"languages"`
	Clinic          ClinicResponse  `json:"clinic"`
	VideoConsult    bool            `json:"video_consult"`
	InClinic        bool            `json:"in_clinic"`
}

type FilterStateResponse struct {
	Query       string   `json:"query"`
	Consult     string   `json:"consult"`
	Specialties []string `json:"specialties"`
	Sort        string   `json:"sort"`
}

// FilterChipResponse is one removable active filter. RemoveQuery is the page query
// with this filter taken out.
type FilterChipResponse struct {
	Kind        string `json:"kind"`
	Value       string `json:"value"`
	Label       string `json:"label"`
	RemoveQuery string `json:"remove_query"`
}

type SpecialtyOptionResponse struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	TestID   string `json:"test_id"`
}

type DirectoryResponse struct {
	Status            string                    `json:"status"`
	Loading           bool                      `json:"loading"`
	Doctors           []DoctorCardResponse      `json:"doctors"`
	Total             int                       `json:"total"`
	CountLabel        string                    `json:"count_label"`
	Empty             bool                      `json:"empty"`
	Filters           FilterStateResponse       `json:"filters"`
	ActiveFilterCount int                       `json:"active_filter_count"`
	Chips             []FilterChipResponse      `json:"chips"`
	SortLabel         string                    `json:"sort_label"`
	Specialties       []SpecialtyOptionResponse `json:"specialties"`
	CanonicalQuery    string                    `json:"canonical_query"`
}

type DirectoryStatusResponse struct {
	Status      string `json:"status"`
	Loading     bool   `json:"loading"`
	Doctors     int    `json:"doctors"`
	Specialties int    `json:"specialties"`
}

type SuggestionResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PhotoURL       string `json:"photo_url"`
	SpecialityText string `json:"speciality_text"`
}

type SuggestionListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	Visible     bool                 `json:"visible"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
