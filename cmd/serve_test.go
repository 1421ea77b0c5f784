package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/midichord/model"
	"github.com/jsphweid/midichord/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoBody(t *testing.T) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, sample.Write(&buf, sample.Demo()))
	return &buf
}

func TestAnalyzeHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze?name=demo.mid", demoBody(t))
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)

	resp := w.Result()
	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("application/json", resp.Header.Get("Content-Type"))

	var a model.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
	assert.Equal("demo.mid", a.Path)
	assert.Equal(4.0, a.Duration)
	assert.Len(a.Chords, 4)
	assert.Equal(model.Chord{Time: 4, Ticks: 3840, Quality: model.Major, Root: 0, Pitches: model.Notes{60, 64, 67}}, a.Chords[0])
}

func TestAnalyzeHandlerToleranceKeying(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze?keying=tolerance&tolerance=0.5", demoBody(t))
	w := httptest.NewRecorder()
	HandleAnalyze(w, req)

	var a model.Analysis
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&a))
	// with half a second of slack the five chords collapse into fewer buckets
	assert.Less(t, len(a.Chords), 4)
}

func TestAnalyzeHandlerRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("nope")))
	w := httptest.NewRecorder()
	HandleAnalyze(w, req)

	assert := assert.New(t)
	assert.Equal(http.StatusBadRequest, w.Code)
	var e model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.Contains(e.Error, "unreadable midi file")
}

func TestAnalyzeHandlerBadQuery(t *testing.T) {
	for _, q := range []string{"keying=fuzzy", "tolerance=abc", "min_notes=x", "keying=tolerance&tolerance=-1"} {
		t.Run(q, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyze?"+q, demoBody(t))
			w := httptest.NewRecorder()
			HandleAnalyze(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAnalyzeWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
