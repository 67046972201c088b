package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/response"
	"healthhub-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func sessionIDFromPath(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.CreateSession(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	session, err := h.sessionUsecase.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to get session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}

func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	var req dto.SessionMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.ApplyMutation(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			response.NotFound(w, "Session not found")
		case errors.Is(err, usecase.ErrUnknownAction):
			response.BadRequest(w, "Unknown filter action")
		default:
			response.InternalServerError(w, "Failed to update session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session updated successfully", session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDFromPath(r)
	if err != nil {
		response.BadRequest(w, "Invalid session ID")
		return
	}

	if err := h.sessionUsecase.CloseSession(r.Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to close session")
		return
	}

	response.Success(w, http.StatusOK, "Session closed successfully", nil)
}
