package httptransport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uxstudy/internal/consent"
	consenthandler "uxstudy/internal/consent/handler"
	"uxstudy/internal/demographic"
	demographichandler "uxstudy/internal/demographic/handler"
	"uxstudy/internal/exitpoll"
	exithandler "uxstudy/internal/exitpoll/handler"
	"uxstudy/internal/platform/metrics"
	"uxstudy/internal/report"
	reporthandler "uxstudy/internal/report/handler"
	"uxstudy/internal/storage"
	"uxstudy/internal/task"
	taskhandler "uxstudy/internal/task/handler"
)

var testMetrics = metrics.New()

// newTestRouter assembles the full service against a CSV store in a temp
// directory, mirroring the production wiring in cmd/server.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := storage.NewCSVStore(t.TempDir())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(logger, testMetrics,
		consenthandler.New(consent.NewService(store), logger, testMetrics),
		demographichandler.New(demographic.NewService(store), logger, testMetrics),
		taskhandler.New(task.NewService(store, task.NewInMemorySessionStore()), logger, testMetrics),
		exithandler.New(exitpoll.NewService(store), logger, testMetrics),
		reporthandler.New(report.NewService(store), logger, testMetrics),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHomeServesStudyInfo(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		Title string   `json:"title"`
		Steps []string `json:"steps"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.NotEmpty(t, info.Title)
	assert.Len(t, info.Steps, 5)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestWrongContentTypeRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/consent", bytes.NewReader([]byte("consent_given=true")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

// TestFullQuestionnaireFlow drives one respondent through every section and
// checks the aggregated report at the end.
func TestFullQuestionnaireFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/consent", `{"consent_given": true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/demographics",
		`{"name":"Ada","age":30,"occupation":"Engineer","familiarity":"Somewhat Familiar"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/tasks/timer/start", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var started map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&started))

	rec = doJSON(t, router, http.MethodPost, "/tasks/timer/stop",
		`{"session_id":"`+started["session_id"]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/tasks",
		`{"task_name":"Task 1: Create a team of 6 members","success":"Yes","session_id":"`+
			started["session_id"]+`","notes":"went fine"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, body := range []string{
		`{"satisfaction":4,"difficulty":2,"open_feedback":"nice"}`,
		`{"satisfaction":2,"difficulty":4}`,
	} {
		rec = doJSON(t, router, http.MethodPost, "/exit", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rpt struct {
		Consent struct {
			Empty bool       `json:"empty"`
			Rows  [][]string `json:"rows"`
		} `json:"consent"`
		Exit struct {
			Empty bool `json:"empty"`
		} `json:"exit"`
		ExitAverages *struct {
			Satisfaction string `json:"satisfaction"`
			Difficulty   string `json:"difficulty"`
		} `json:"exit_averages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rpt))

	assert.False(t, rpt.Consent.Empty)
	require.Len(t, rpt.Consent.Rows, 1)
	assert.False(t, rpt.Exit.Empty)
	require.NotNil(t, rpt.ExitAverages)
	assert.Equal(t, "3.00", rpt.ExitAverages.Satisfaction)
	assert.Equal(t, "3.00", rpt.ExitAverages.Difficulty)
}

func TestReportOnFreshDeployment(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rpt map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rpt))
	_, hasAverages := rpt["exit_averages"]
	assert.False(t, hasAverages, "fresh deployment must not report averages")
}
