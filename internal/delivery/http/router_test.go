package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliveryHttp "healthhub-directory/internal/delivery/http"
	"healthhub-directory/internal/delivery/http/handler"
	"healthhub-directory/internal/delivery/http/middleware"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/repository"
	"healthhub-directory/internal/service"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readyStatus struct{}

func (readyStatus) Status() service.LoadStatus { return service.StatusReady }

func newRouter(t *testing.T, suggestRate float64, suggestBurst int) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	doctorRepo := repository.NewDoctorRepository()
	require.NoError(t, doctorRepo.ReplaceAll(context.Background(), []entity.Doctor{
		{ID: "1", Name: "Dr. Kavita Rao", Fees: "₹ 500", Experience: "13 Years", VideoConsult: true},
	}))
	v := validator.NewValidator()

	directoryUC := usecase.NewDirectoryUsecase(log, doctorRepo, readyStatus{}, "/placeholder.svg")
	sessionUC := usecase.NewSessionUsecase(log, repository.NewMemorySessionRepository(), doctorRepo, readyStatus{}, time.Hour, "/placeholder.svg")

	return deliveryHttp.NewRouter(
		handler.NewDirectoryHandler(directoryUC, v),
		handler.NewSessionHandler(sessionUC, v),
		handler.NewPageHandler(directoryUC, v, log),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRateLimitMiddleware(suggestRate, suggestBurst),
	).Setup()
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newRouter(t, 0, 0)

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"health", http.MethodGet, "/api/v1/health", http.StatusOK},
		{"status", http.MethodGet, "/api/v1/directory/status", http.StatusOK},
		{"doctors", http.MethodGet, "/api/v1/doctors?sort=fees", http.StatusOK},
		{"suggestions", http.MethodGet, "/api/v1/doctors/suggestions?q=kav", http.StatusOK},
		{"specialties", http.MethodGet, "/api/v1/specialties", http.StatusOK},
		{"create session", http.MethodPost, "/api/v1/sessions", http.StatusCreated},
		{"page", http.MethodGet, "/", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"method not registered", http.MethodPut, "/api/v1/doctors", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/v1/bookings", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, serve(r, tt.method, tt.target).Code)
		})
	}
}

func TestRouter_SuggestionsAreRateLimited(t *testing.T) {
	t.Parallel()

	r := newRouter(t, 0.001, 1)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/doctors/suggestions?q=kav").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/api/v1/doctors/suggestions?q=kav").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/doctors?query=kav").Code, "only suggestions are limited")
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	r := newRouter(t, 0, 0)
	rec := serve(r, http.MethodOptions, "/api/v1/sessions")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
