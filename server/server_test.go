package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcollate/metrics"
	"github.com/katalvlaran/lvcollate/server"
	"github.com/katalvlaran/lvcollate/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fixture struct {
	router  *gin.Engine
	metrics *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	st, err := store.Open(store.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	srv := server.New(st, server.WithMetrics(m, reg))

	return fixture{router: srv.Router(), metrics: m}
}

func (f fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

const redCat = `{"witnesses":[
	{"sigil":"A","text":"the black cat"},
	{"sigil":"B","text":"the white cat"}]}`

// TestCollations_Lifecycle creates, reads, lists and deletes a run.
func TestCollations_Lifecycle(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/collations", redCat)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created store.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"A", "B"}, created.Sigils)
	assert.Equal(t, []string{"the", "white", "cat"}, created.Table.Rows[1])

	rec = f.do(t, http.MethodGet, "/v1/collations/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got store.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.Table, got.Table)

	rec = f.do(t, http.MethodGet, "/v1/collations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Runs []store.Record `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Runs, 1)

	rec = f.do(t, http.MethodDelete, "/v1/collations/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = f.do(t, http.MethodGet, "/v1/collations/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(t, http.MethodDelete, "/v1/collations/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestCollations_BadRequests maps input errors to 400.
func TestCollations_BadRequests(t *testing.T) {
	f := newFixture(t)
	for name, body := range map[string]string{
		"malformed":    `{"witnesses":`,
		"empty":        `{"witnesses":[]}`,
		"no sigil":     `{"witnesses":[{"text":"a"}]}`,
		"duplicate":    `{"witnesses":[{"sigil":"A","text":"a"},{"sigil":"A","text":"b"}]}`,
		"no witnesses": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/v1/collations", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

// TestHealthAndMetrics serves liveness and the Prometheus exposition.
func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/v1/collations", redCat).Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		f.metrics.HTTPRequests.WithLabelValues(http.MethodPost, "/v1/collations", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		f.metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/healthz", "200")))

	rec = f.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.True(t, bytes.Contains(body, []byte("lvcollate_alignments_total")))
	assert.True(t, bytes.Contains(body, []byte("lvcollate_http_requests_total")))
}

// TestRouter_WithoutMetrics leaves /metrics unregistered.
func TestRouter_WithoutMetrics(t *testing.T) {
	st, err := store.Open(store.Options{InMemory: true})
	require.NoError(t, err)
	defer st.Close()

	r := server.New(st).Router()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/collations", strings.NewReader(redCat)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
