package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"healthhub-directory/internal/delivery/dto"
	"healthhub-directory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryHandler_ListDoctors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, service.StatusReady, sampleDoctors())

	t.Run("filters and sorts from the query string", func(t *testing.T) {
		t.Parallel()

		rec, env := srv.do(t, http.MethodGet, "/doctors?specialty=Cardiologist&sort=fees", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		dir := decode[dto.DirectoryResponse](t, env.Data)
		require.Len(t, dir.Doctors, 2)
		assert.Equal(t, "2", dir.Doctors[0].ID)
		assert.Equal(t, "3", dir.Doctors[1].ID)
		assert.Equal(t, "Price: Low to High", dir.SortLabel)
		assert.Equal(t, 2, dir.ActiveFilterCount)
		assert.Equal(t, "sort=fees&specialty=Cardiologist", dir.CanonicalQuery)
	})

	t.Run("unknown tokens pass through", func(t *testing.T) {
		t.Parallel()

		rec, env := srv.do(t, http.MethodGet, "/doctors?consult=home&sort=rating", "")
		require.Equal(t, http.StatusOK, rec.Code)

		dir := decode[dto.DirectoryResponse](t, env.Data)
		assert.Len(t, dir.Doctors, 3)
		assert.Equal(t, "home", dir.Filters.Consult)
		assert.Equal(t, "rating", dir.Filters.Sort)
	})

	t.Run("long values are read verbatim", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 201)
		rec, env := srv.do(t, http.MethodGet, "/doctors?query="+long, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, long, decode[dto.DirectoryResponse](t, env.Data).Filters.Query)
	})

	t.Run("oversized query string is rejected", func(t *testing.T) {
		t.Parallel()

		rec, env := srv.do(t, http.MethodGet, "/doctors?query="+strings.Repeat("a", dto.MaxFilterQueryLength), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})
}

func TestDirectoryHandler_Suggest(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, service.StatusReady, sampleDoctors())

	rec, env := srv.do(t, http.MethodGet, "/doctors/suggestions?q=RA", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[dto.SuggestionListResponse](t, env.Data)
	assert.True(t, list.Visible)
	require.Len(t, list.Suggestions, 2)
	assert.Equal(t, "Dr. Kavita Rao", list.Suggestions[0].Name)
	assert.Equal(t, "Dr. Meera Nair", list.Suggestions[1].Name)

	_, env = srv.do(t, http.MethodGet, "/doctors/suggestions?q=%20%20", "")
	assert.False(t, decode[dto.SuggestionListResponse](t, env.Data).Visible)
}

func TestDirectoryHandler_SpecialtiesAndStatus(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, service.StatusReady, sampleDoctors())

	_, env := srv.do(t, http.MethodGet, "/specialties", "")
	specs := decode[dto.SpecialtyListResponse](t, env.Data)
	assert.Equal(t, []string{"Cardiologist", "Dentist", "General Physician"}, specs.Specialties)
	assert.Equal(t, 3, specs.Total)

	_, env = srv.do(t, http.MethodGet, "/directory/status", "")
	status := decode[dto.DirectoryStatusResponse](t, env.Data)
	assert.Equal(t, "ready", status.Status)
	assert.Equal(t, 3, status.Doctors)
	assert.False(t, status.Loading)
}
