package entity_test

import (
	"math"
	"testing"

	"healthhub-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDoctor_FeeAmount(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"₹500":       500,
		"₹ 1000":     1000,
		"Rs. 300/-":  300,
		"free":       0,
		"":           0,
		"₹1,200":     1,
		"99999999999999999999999": 0,
	}
	for fees, want := range cases {
		assert.Equal(t, want, entity.Doctor{Fees: fees}.FeeAmount(), "fees %q", fees)
	}
}

func TestDoctor_FeeAmountSaturates(t *testing.T) {
	t.Parallel()

	huge := entity.Doctor{Fees: "₹ 99999999999999999999"}
	assert.Equal(t, math.MaxInt, huge.FeeAmount())
	assert.Greater(t, huge.FeeAmount(), entity.Doctor{Fees: "₹ 500"}.FeeAmount())
}

func TestDoctor_ExperienceYears(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 13, entity.Doctor{Experience: "13 Years of experience"}.ExperienceYears())
	assert.Equal(t, 0, entity.Doctor{Experience: "Fresher"}.ExperienceYears())
	assert.Equal(t, 7, entity.Doctor{Experience: "Exp: 7 yrs, 2 clinics"}.ExperienceYears())
}

func TestDoctor_NameContains(t *testing.T) {
	t.Parallel()

	d := entity.Doctor{Name: "Dr. Anita Sharma"}
	assert.True(t, d.NameContains("sharma"))
	assert.True(t, d.NameContains("ANITA"))
	assert.True(t, d.NameContains(""))
	assert.False(t, d.NameContains("Verma"))
}

func TestDoctor_PhotoURL(t *testing.T) {
	t.Parallel()

	t.Run("uses photo when present", func(t *testing.T) {
		t.Parallel()
		d := entity.Doctor{Name: "Dr. A", Photo: "https://cdn.example/a.jpg"}
		assert.True(t, d.HasPhoto())
		assert.Equal(t, "https://cdn.example/a.jpg", d.PhotoURL("/placeholder.svg"))
	})

	t.Run("falls back for the null sentinel", func(t *testing.T) {
		t.Parallel()
		d := entity.Doctor{Name: "Dr. A", Photo: "null"}
		assert.False(t, d.HasPhoto())
		assert.Equal(t, "/placeholder.svg?height=100&query=doctor+Dr.+A&width=100", d.PhotoURL("/placeholder.svg"))
	})

	t.Run("falls back for an empty photo", func(t *testing.T) {
		t.Parallel()
		d := entity.Doctor{Name: "Dr. B"}
		assert.Contains(t, d.PhotoURL("/p.svg"), "query=doctor+Dr.+B")
	})
}

func TestDistinctSpecialities(t *testing.T) {
	t.Parallel()

	doctors := []entity.Doctor{
		{Specialities: []entity.Speciality{{Name: "Dentist"}, {Name: "Cardiologist"}}},
		{Specialities: []entity.Speciality{{Name: "Cardiologist"}}},
		{Specialities: nil},
		{Specialities: []entity.Speciality{{Name: "Ayurveda"}}},
	}

	assert.Equal(t, []string{"Ayurveda", "Cardiologist", "Dentist"}, entity.DistinctSpecialities(doctors))
	assert.Empty(t, entity.DistinctSpecialities(nil))
}
