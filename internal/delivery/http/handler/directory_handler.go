package handler

import (
	"net/http"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/response"
	"healthhub-directory/pkg/urlstate"
	"healthhub-directory/pkg/validator"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// filtersFromRequest reads the page filters verbatim from the query string. Only the
// overall query length is bounded.
func filtersFromRequest(v *validator.CustomValidator, r *http.Request) (entity.FilterState, map[string]string) {
	req := dto.DoctorFilterRequest{RawQuery: r.URL.RawQuery}
	if err := v.Validate(&req); err != nil {
		return entity.FilterState{}, v.FormatValidationErrors(err)
	}
	return urlstate.Parse(r.URL.Query()), nil
}

func (h *DirectoryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.directoryUsecase.Status(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get directory status")
		return
	}

	response.Success(w, http.StatusOK, "Directory status retrieved successfully", status)
}

func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filters, invalid := filtersFromRequest(h.validator, r)
	if invalid != nil {
		response.ValidationError(w, invalid)
		return
	}

	directory, err := h.directoryUsecase.ListDoctors(r.Context(), filters)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", directory)
}

func (h *DirectoryHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	req := dto.SuggestionRequest{Input: r.URL.Query().Get("q")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), req.Input)
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DirectoryHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.Specialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
