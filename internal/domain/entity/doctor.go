package entity

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// nullPhoto is what the feed sends for doctors without a picture.
const nullPhoto = "null"

var digitRun = regexp.MustCompile(`\d+`)

// Doctor is a provider record exactly as the directory feed publishes it.
type Doctor struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	NameInitials       string       `json:"name_initials"`
	Photo              string       `json:"photo"`
	DoctorIntroduction string       `json:"doctor_introduction"`
	Specialities       []Speciality `json:"specialities"`
	Fees               string       `json:"fees"`
	Experience         string       `json:"experience"`
	Languages          []string     `json:"languages"`
	Clinic             Clinic       `json:"clinic"`
	VideoConsult       bool         `json:"video_consult"`
	InClinic           bool         `json:"in_clinic"`
}

type Speciality struct {
	Name string `json:"name"`
}

type Clinic struct {
	Name    string        `json:"name"`
	Address ClinicAddress `json:"address"`
}

type ClinicAddress struct {
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	Location     string `json:"location"`
	LogoURL      string `json:"logo_url"`
}

// FeeAmount returns the first run of digits in Fees, or 0 when there is none.
func (d Doctor) FeeAmount() int {
	return leadingNumber(d.Fees)
}

// ExperienceYears returns the first run of digits in Experience, or 0 when there is none.
func (d Doctor) ExperienceYears() int {
	return leadingNumber(d.Experience)
}

func (d Doctor) SpecialityNames() []string {
	names := make([]string, len(d.Specialities))
	for i, s := range d.Specialities {
		names[i] = s.Name
	}
	return names
}

// HasAnySpeciality reports whether at least one of the doctor's specialities is in names.
func (d Doctor) HasAnySpeciality(names map[string]struct{}) bool {
	for _, s := range d.Specialities {
		if _, ok := names[s.Name]; ok {
			return true
		}
	}
	return false
}

// NameContains is a case-insensitive substring match on the display name.
func (d Doctor) NameContains(q string) bool {
	return strings.Contains(strings.ToLower(d.Name), strings.ToLower(q))
}

// HasPhoto is false for an empty photo and for the literal "null" the feed uses.
func (d Doctor) HasPhoto() bool {
	return d.Photo != "" && d.Photo != nullPhoto
}

// PhotoURL returns the doctor's photo, or a placeholder keyed by name.
func (d Doctor) PhotoURL(placeholderBase string) string {
	if d.HasPhoto() {
		return d.Photo
	}
	q := url.Values{}
	q.Set("height", "100")
	q.Set("width", "100")
	q.Set("query", "doctor "+d.Name)
	return placeholderBase + "?" + q.Encode()
}

func leadingNumber(s string) int {
	run := digitRun.FindString(s)
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		// Only a run too long for int can fail here.
		return math.MaxInt
	}
	return n
}

// DistinctSpecialities collects every speciality name across doctors, sorted.
func DistinctSpecialities(doctors []Doctor) []string {
	seen := make(map[string]struct{})
	for _, d := range doctors {
		for _, s := range d.Specialities {
			seen[s.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
