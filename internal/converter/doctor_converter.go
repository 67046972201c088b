package converter

import (
	"regexp"
	"strconv"
	"strings"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`\D`)

// FormatFee renders a fee string as the rupee sign followed by every digit in it.
func FormatFee(fees string) string {
	return "₹" + nonDigits.ReplaceAllString(fees, "")
}

// FeeDecimal is the amount FormatFee displays, or zero when the string has no digits.
func FeeDecimal(fees string) decimal.Decimal {
	amount, err := decimal.NewFromString(nonDigits.ReplaceAllString(fees, ""))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// DoctorToCard converts a Doctor entity to the card shown in the result list.
func DoctorToCard(doctor *entity.Doctor, placeholderBase string) dto.DoctorCardResponse {
	specialities := doctor.SpecialityNames()
	years := doctor.ExperienceYears()

	languages := doctor.Languages
	if languages == nil {
		languages = []string{}
	}

	return dto.DoctorCardResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		NameInitials:    doctor.NameInitials,
		PhotoURL:        doctor.PhotoURL(placeholderBase),
		HasPhoto:        doctor.HasPhoto(),
		Introduction:    doctor.DoctorIntroduction,
		Specialities:    specialities,
		SpecialityText:  strings.Join(specialities, ", "),
		ExperienceYears: years,
		ExperienceLabel: strconv.Itoa(years) + " Years",
		Fee:             FormatFee(doctor.Fees),
		FeeAmount:       FeeDecimal(doctor.Fees),
		Languages:       languages,
		Clinic: dto.ClinicResponse{
			Name:         doctor.Clinic.Name,
			Locality:     doctor.Clinic.Address.Locality,
			City:         doctor.Clinic.Address.City,
			AddressLine1: doctor.Clinic.Address.AddressLine1,
			LogoURL:      doctor.Clinic.Address.LogoURL,
		},
		VideoConsult: doctor.VideoConsult,
		InClinic:     doctor.InClinic,
	}
}

// DoctorsToCards converts a slice of Doctor entities to cards, keeping order.
func DoctorsToCards(doctors []entity.Doctor, placeholderBase string) []dto.DoctorCardResponse {
	cards := make([]dto.DoctorCardResponse, len(doctors))
	for i := range doctors {
		cards[i] = DoctorToCard(&doctors[i], placeholderBase)
	}
	return cards
}

// DoctorsToSuggestions converts matched doctors to search suggestions.
func DoctorsToSuggestions(doctors []entity.Doctor, placeholderBase string) *dto.SuggestionListResponse {
	suggestions := make([]dto.SuggestionResponse, len(doctors))
	for i, d := range doctors {
		suggestions[i] = dto.SuggestionResponse{
			ID:             d.ID,
			Name:           d.Name,
			PhotoURL:       d.PhotoURL(placeholderBase),
			SpecialityText: strings.Join(d.SpecialityNames(), ", "),
		}
	}
	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Visible:     len(suggestions) > 0,
	}
}
