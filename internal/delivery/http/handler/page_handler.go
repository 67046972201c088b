package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/urlstate"
	"healthhub-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// SortOption is one entry of the sort menu.
type SortOption struct {
	Label  string
	Href   string
	Active bool
	TestID string
}

// ConsultOption is one consultation-mode radio button.
type ConsultOption struct {
	Value   string
	Label   string
	Checked bool
	TestID  string
}

type directoryPage struct {
	*dto.DirectoryResponse
	ConsultOptions []ConsultOption
	SortOptions    []SortOption
	ClearSortHref  string
}

// PageHandler renders the directory as a server-side HTML page. The URL query is the
// filter state; every control is a GET link or form back to the same page.
type PageHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
	log              *logrus.Logger
}

func NewPageHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
		log:              log,
	}
}

func (h *PageHandler) Directory(w http.ResponseWriter, r *http.Request) {
	filters, invalid := filtersFromRequest(h.validator, r)
	if invalid != nil {
		h.render(w, http.StatusBadRequest, "error.html", errorPage{Message: "This link has too many filters to show."})
		return
	}

	directory, err := h.directoryUsecase.ListDoctors(r.Context(), filters)
	if err != nil {
		http.Error(w, "Failed to load doctors", http.StatusInternalServerError)
		return
	}

	name := "directory.html"
	if directory.Loading {
		name = "loading.html"
	}

	page := directoryPage{
		DirectoryResponse: directory,
		ConsultOptions:    consultOptions(filters),
		SortOptions:       sortOptions(filters),
		ClearSortHref:     urlstate.Href(withSort(filters, entity.SortNone)),
	}

	h.render(w, http.StatusOK, name, page)
}

type errorPage struct {
	Message string
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.WithError(err).Error("Failed to render directory page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func withSort(f entity.FilterState, sort entity.SortKey) entity.FilterState {
	f.Sort = sort
	return f
}

func consultOptions(f entity.FilterState) []ConsultOption {
	return []ConsultOption{
		{Value: string(entity.ConsultVideo), Label: entity.ConsultVideo.Label(), Checked: f.ConsultType == entity.ConsultVideo, TestID: "filter-video-consult"},
		{Value: string(entity.ConsultClinic), Label: entity.ConsultClinic.Label(), Checked: f.ConsultType == entity.ConsultClinic, TestID: "filter-in-clinic"},
	}
}

func sortOptions(f entity.FilterState) []SortOption {
	keys := []entity.SortKey{entity.SortFees, entity.SortExperience}
	options := make([]SortOption, len(keys))
	for i, key := range keys {
		options[i] = SortOption{
			Label:  key.Label(),
			Href:   urlstate.Href(withSort(f, key)),
			Active: f.Sort == key,
			TestID: "sort-" + string(key),
		}
	}
	return options
}
