package converter

import (
	"regexp"
	"strconv"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/pkg/urlstate"
)

var testIDUnsafe = regexp.MustCompile(`[/\s]`)

// SpecialtyTestID is the data-testid of a specialty checkbox.
func SpecialtyTestID(name string) string {
	return "filter-specialty-" + testIDUnsafe.ReplaceAllString(name, "-")
}

// CountLabel is the "N doctors available" line above the results.
func CountLabel(n int) string {
	if n == 1 {
		return "1 doctor available"
	}
	return strconv.Itoa(n) + " doctors available"
}

// DirectoryView groups what the directory page shows for one filter state.
type DirectoryView struct {
	Status      string
	Loading     bool
	Results     []entity.Doctor
	Filters     entity.FilterState
	Specialties []string
	Placeholder string
}

func FilterStateToResponse(f entity.FilterState) dto.FilterStateResponse {
	specialties := f.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.FilterStateResponse{
		Query:       f.Query,
		Consult:     string(f.ConsultType),
		Specialties: specialties,
		Sort:        string(f.Sort),
	}
}

// FilterChips lists the active consultation and specialty filters in display order.
func FilterChips(f entity.FilterState) []dto.FilterChipResponse {
	chips := []dto.FilterChipResponse{}
	if f.ConsultType != entity.ConsultAny {
		without := f
		without.ConsultType = entity.ConsultAny
		chips = append(chips, dto.FilterChipResponse{
			Kind:        "consult",
			Value:       string(f.ConsultType),
			Label:       f.ConsultType.Label(),
			RemoveQuery: urlstate.Query(without),
		})
	}
	for _, s := range f.Specialties {
		chips = append(chips, dto.FilterChipResponse{
			Kind:        "specialty",
			Value:       s,
			Label:       s,
			RemoveQuery: urlstate.Query(f.WithoutSpecialty(s)),
		})
	}
	return chips
}

func SpecialtyOptions(all []string, f entity.FilterState) []dto.SpecialtyOptionResponse {
	options := make([]dto.SpecialtyOptionResponse, len(all))
	for i, name := range all {
		options[i] = dto.SpecialtyOptionResponse{
			Name:     name,
			Selected: f.HasSpecialty(name),
			TestID:   SpecialtyTestID(name),
		}
	}
	return options
}

func DirectoryToResponse(view DirectoryView) *dto.DirectoryResponse {
	return &dto.DirectoryResponse{
		Status:            view.Status,
		Loading:           view.Loading,
		Doctors:           DoctorsToCards(view.Results, view.Placeholder),
		Total:             len(view.Results),
		CountLabel:        CountLabel(len(view.Results)),
		Empty:             len(view.Results) == 0,
		Filters:           FilterStateToResponse(view.Filters),
		ActiveFilterCount: view.Filters.ActiveFilterCount(),
		Chips:             FilterChips(view.Filters),
		SortLabel:         view.Filters.Sort.Label(),
		Specialties:       SpecialtyOptions(view.Specialties, view.Filters),
		CanonicalQuery:    urlstate.Query(view.Filters),
	}
}
