// Package urlstate converts directory filters to and from a page query string.
package urlstate

import (
	"net/url"

	"healthhub-directory/internal/domain/entity"
)

const (
	ParamQuery     = "query"
	ParamConsult   = "consult"
	ParamSpecialty = "specialty"
	ParamSort      = "sort"
)

// Parse reads filters from query parameters. Values are taken verbatim; nothing is
// checked against known specialties or tokens.
func Parse(values url.Values) entity.FilterState {
	f := entity.FilterState{
		Query:       values.Get(ParamQuery),
		ConsultType: entity.ConsultType(values.Get(ParamConsult)),
		Sort:        entity.SortKey(values.Get(ParamSort)),
	}
	if specialties := values[ParamSpecialty]; len(specialties) > 0 {
		f.Specialties = append([]string(nil), specialties...)
	}
	return f
}

// ParseQuery is Parse for a raw query string. A malformed string yields whatever
// pairs could be decoded.
func ParseQuery(raw string) entity.FilterState {
	values, _ := url.ParseQuery(raw)
	return Parse(values)
}

// Encode writes filters as query parameters, leaving out everything at its default.
func Encode(f entity.FilterState) url.Values {
	values := url.Values{}
	if f.Query != "" {
		values.Set(ParamQuery, f.Query)
	}
	if f.ConsultType != entity.ConsultAny {
		values.Set(ParamConsult, string(f.ConsultType))
	}
	for _, s := range f.Specialties {
		values.Add(ParamSpecialty, s)
	}
	if f.Sort != entity.SortNone {
		values.Set(ParamSort, string(f.Sort))
	}
	return values
}

// Query is the encoded query string for f, without a leading "?".
func Query(f entity.FilterState) string {
	return Encode(f).Encode()
}

// Href is a relative link that replaces the current query with f.
func Href(f entity.FilterState) string {
	return "?" + Query(f)
}
