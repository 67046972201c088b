package usecase

import (
	"cmp"
	"slices"
	"strings"

	"healthhub-directory/internal/domain/entity"
)

// MaxSuggestions caps the search-as-you-type list.
const MaxSuggestions = 3

// ApplyFilters returns the doctors matching f, in display order. Filters run first,
// then at most one sort. The input slice is never modified.
func ApplyFilters(doctors []entity.Doctor, f entity.FilterState) []entity.Doctor {
	filtered := make([]entity.Doctor, 0, len(doctors))
	var specialties map[string]struct{}
	if len(f.Specialties) > 0 {
		specialties = f.SpecialtySet()
	}

	for _, d := range doctors {
		if f.Query != "" && !d.NameContains(f.Query) {
			continue
		}
		if !matchesConsult(d, f.ConsultType) {
			continue
		}
		if specialties != nil && !d.HasAnySpeciality(specialties) {
			continue
		}
		filtered = append(filtered, d)
	}

	switch f.Sort {
	case entity.SortFees:
		slices.SortStableFunc(filtered, func(a, b entity.Doctor) int {
			return cmp.Compare(a.FeeAmount(), b.FeeAmount())
		})
	case entity.SortExperience:
		slices.SortStableFunc(filtered, func(a, b entity.Doctor) int {
			return cmp.Compare(b.ExperienceYears(), a.ExperienceYears())
		})
	}

	return filtered
}

// matchesConsult passes everything through for an unset or unrecognized mode.
func matchesConsult(d entity.Doctor, mode entity.ConsultType) bool {
	switch mode {
	case entity.ConsultVideo:
		return d.VideoConsult
	case entity.ConsultClinic:
		return d.InClinic
	default:
		return true
	}
}

// Suggest returns up to MaxSuggestions doctors, in feed order, whose name contains
// input. Blank input yields nothing.
func Suggest(doctors []entity.Doctor, input string) []entity.Doctor {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	matches := make([]entity.Doctor, 0, MaxSuggestions)
	for _, d := range doctors {
		if d.NameContains(input) {
			matches = append(matches, d)
			if len(matches) == MaxSuggestions {
				break
			}
		}
	}
	return matches
}
