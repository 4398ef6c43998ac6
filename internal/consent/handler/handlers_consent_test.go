package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"uxstudy/internal/consent"
	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/storage"
)

// ConsentHandlerSuite uses a real in-memory store rather than mocks so the
// tests exercise the full submit path down to the append.
type ConsentHandlerSuite struct {
	suite.Suite
	store  *storage.InMemoryStore
	router http.Handler
}

var testMetrics = metrics.New()

func (s *ConsentHandlerSuite) SetupTest() {
	s.store = storage.NewInMemoryStore()
	service := consent.NewService(s.store)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(service, logger, testMetrics)
	r := chi.NewRouter()
	handler.Register(r)
	s.router = r
}

func TestConsentHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConsentHandlerSuite))
}

func (s *ConsentHandlerSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/consent", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ConsentHandlerSuite) rowCount() int {
	table, err := s.store.Load(context.Background(), consent.Target)
	require.NoError(s.T(), err)
	return table.Len()
}

func (s *ConsentHandlerSuite) TestAgreedConsentAppendsOneRow() {
	rec := s.post(`{"consent_given": true}`)

	require.Equal(s.T(), http.StatusCreated, rec.Code)
	assert.Equal(s.T(), 1, s.rowCount())

	var resp map[string]string
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(s.T(), resp["timestamp"])

	table, err := s.store.Load(context.Background(), consent.Target)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"timestamp", "consent_given"}, table.Columns)
	assert.Equal(s.T(), "true", table.Rows[0][1])
}

func (s *ConsentHandlerSuite) TestRefusedConsentPersistsNothing() {
	rec := s.post(`{"consent_given": false}`)

	require.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), 0, s.rowCount())

	var resp map[string]string
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(s.T(), "validation_error", resp["error"])
	assert.Contains(s.T(), resp["error_description"], "consent terms")
}

func (s *ConsentHandlerSuite) TestInvalidJSONRejected() {
	rec := s.post(`not json`)

	require.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Equal(s.T(), 0, s.rowCount())
}

func (s *ConsentHandlerSuite) TestEachSubmissionAppendsExactlyOneRow() {
	for i := 0; i < 3; i++ {
		rec := s.post(`{"consent_given": true}`)
		require.Equal(s.T(), http.StatusCreated, rec.Code)
	}
	assert.Equal(s.T(), 3, s.rowCount())
}
