package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthhub-directory/internal/delivery/http/handler"
	"healthhub-directory/internal/domain/entity"
	"healthhub-directory/internal/repository"
	"healthhub-directory/internal/service"
	"healthhub-directory/internal/usecase"
	"healthhub-directory/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fixedStatus service.LoadStatus

func (s fixedStatus) Status() service.LoadStatus { return service.LoadStatus(s) }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleDoctors() []entity.Doctor {
	mk := func(id, name, fees, exp string, video, clinic bool, specs ...string) entity.Doctor {
		d := entity.Doctor{ID: id, Name: name, Fees: fees, Experience: exp, VideoConsult: video, InClinic: clinic}
		for _, s := range specs {
			d.Specialities = append(d.Specialities, entity.Speciality{Name: s})
		}
		return d
	}
	return []entity.Doctor{
		mk("1", "Dr. Kavita Rao", "₹ 500", "13 Years of experience", true, false, "Dentist"),
		mk("2", "Dr. Arjun Iyer", "₹ 300", "5 Years of experience", true, true, "Cardiologist"),
		mk("3", "Dr. Meera Nair", "₹ 1000", "22 Years of experience", false, true, "General Physician", "Cardiologist"),
	}
}

type testServer struct {
	router *mux.Router
}

func newTestServer(t *testing.T, status service.LoadStatus, doctors []entity.Doctor) *testServer {
	t.Helper()

	log := quietLogger()
	doctorRepo := repository.NewDoctorRepository()
	require.NoError(t, doctorRepo.ReplaceAll(context.Background(), doctors))
	sessionRepo := repository.NewMemorySessionRepository()
	v := validator.NewValidator()

	directoryUC := usecase.NewDirectoryUsecase(log, doctorRepo, fixedStatus(status), "/placeholder.svg")
	sessionUC := usecase.NewSessionUsecase(log, sessionRepo, doctorRepo, fixedStatus(status), time.Hour, "/placeholder.svg")

	dh := handler.NewDirectoryHandler(directoryUC, v)
	sh := handler.NewSessionHandler(sessionUC, v)
	ph := handler.NewPageHandler(directoryUC, v, log)

	r := mux.NewRouter()
	r.HandleFunc("/", ph.Directory).Methods(http.MethodGet)
	r.HandleFunc("/doctors", dh.ListDoctors).Methods(http.MethodGet)
	r.HandleFunc("/doctors/suggestions", dh.Suggest).Methods(http.MethodGet)
	r.HandleFunc("/specialties", dh.GetSpecialties).Methods(http.MethodGet)
	r.HandleFunc("/directory/status", dh.GetStatus).Methods(http.MethodGet)
	r.HandleFunc("/sessions", sh.CreateSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}", sh.GetSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", sh.UpdateSession).Methods(http.MethodPatch)
	r.HandleFunc("/sessions/{id}", sh.DeleteSession).Methods(http.MethodDelete)
	return &testServer{router: r}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
