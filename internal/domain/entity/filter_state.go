package entity

// ConsultType is the consultation-mode filter. Tokens outside the known set are
// kept as-is and filter nothing.
type ConsultType string

const (
	ConsultAny    ConsultType = ""
	ConsultVideo  ConsultType = "video"
	ConsultClinic ConsultType = "clinic"
)

// Label is the chip text shown for an active consultation filter.
func (c ConsultType) Label() string {
	switch c {
	case ConsultVideo:
		return "Video Consult"
	case ConsultClinic:
		return "In Clinic"
	default:
		return string(c)
	}
}

// SortKey selects one ordering of the results. Unknown keys leave the order alone.
type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

func (s SortKey) Label() string {
	switch s {
	case SortFees:
		return "Price: Low to High"
	case SortExperience:
		return "Experience: High to Low"
	default:
		return "Sort"
	}
}

// FilterState is everything the directory page lets a user choose. It drives both
// the visible results and the page URL.
type FilterState struct {
	Query       string      `json:"query"`
	ConsultType ConsultType `json:"consult"`
	Specialties []string    `json:"specialties"`
	Sort        SortKey     `json:"sort"`
}

func (f FilterState) IsZero() bool {
	return f.Query == "" && f.ConsultType == ConsultAny && len(f.Specialties) == 0 && f.Sort == SortNone
}

// ActiveFilterCount counts the filter-panel selections. The search text is not one of them.
func (f FilterState) ActiveFilterCount() int {
	n := len(f.Specialties)
	if f.ConsultType != ConsultAny {
		n++
	}
	if f.Sort != SortNone {
		n++
	}
	return n
}

func (f FilterState) HasSpecialty(name string) bool {
	for _, s := range f.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// SpecialtySet returns the selection as a membership set.
func (f FilterState) SpecialtySet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Specialties))
	for _, s := range f.Specialties {
		set[s] = struct{}{}
	}
	return set
}

// WithSpecialty appends name unless it is already selected.
func (f FilterState) WithSpecialty(name string) FilterState {
	if f.HasSpecialty(name) {
		return f
	}
	next := make([]string, 0, len(f.Specialties)+1)
	next = append(next, f.Specialties...)
	f.Specialties = append(next, name)
	return f
}

func (f FilterState) WithoutSpecialty(name string) FilterState {
	next := make([]string, 0, len(f.Specialties))
	for _, s := range f.Specialties {
		if s != name {
			next = append(next, s)
		}
	}
	f.Specialties = next
	return f
}
