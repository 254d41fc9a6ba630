package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

type fakeFinder struct {
	routes        []regiojet.RouteSummary
	err           error
	lastFrom      int64
	lastTo        int64
	lastThreshold int
}

func (f *fakeFinder) CheckDelays(ctx context.Context, fromID, toID int64, threshold int) ([]regiojet.RouteSummary, error) {
	f.lastFrom = fromID
	f.lastTo = toID
	f.lastThreshold = threshold
	return f.routes, f.err
}

func serve(t *testing.T, finder *fakeFinder, url string) (*http.Response, []byte) {
	t.Helper()
	handler := NewDelayHandler(finder, 17902024, 721181001)
	server := httptest.NewServer(NewRouter(handler, []string{"*"}))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestGetDelaysSuccess(t *testing.T) {
	finder := &fakeFinder{
		routes: []regiojet.RouteSummary{
			{Number: "312", Label: "Karlovy Vary - Sokolov", Delay: 5},
			{Number: "515", Label: "Karlovy Vary - Sokolov", Delay: 15},
		},
	}

	resp, body := serve(t, finder, "/api/delays")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var routes []regiojet.RouteSummary
	require.NoError(t, json.Unmarshal(body, &routes))
	require.Len(t, routes, 2)
	assert.Equal(t, "312", routes[0].Number)
	assert.Equal(t, 15, routes[1].Delay)

	// Defaults: demonstration pair, no threshold.
	assert.Equal(t, int64(17902024), finder.lastFrom)
	assert.Equal(t, int64(721181001), finder.lastTo)
	assert.Equal(t, 0, finder.lastThreshold)
}

func TestGetDelaysEmptyResultIsArray(t *testing.T) {
	resp, body := serve(t, &fakeFinder{}, "/api/delays")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestGetDelaysUpstreamFailure(t *testing.T) {
	finder := &fakeFinder{err: errors.New("HTTP 503 from upstream")}

	resp, body := serve(t, finder, "/api/delays")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "HTTP 503 from upstream", envelope.Message)
}

func TestGetDelaysQueryOverrides(t *testing.T) {
	finder := &fakeFinder{}

	resp, _ := serve(t, finder, "/api/delays?from=10204003&to=721181002&threshold=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(10204003), finder.lastFrom)
	assert.Equal(t, int64(721181002), finder.lastTo)
	assert.Equal(t, 10, finder.lastThreshold)
}

func TestGetDelaysUnparsableParamsFallBack(t *testing.T) {
	finder := &fakeFinder{}

	resp, _ := serve(t, finder, "/api/delays?from=florenc&threshold=soon")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(17902024), finder.lastFrom)
	assert.Equal(t, 0, finder.lastThreshold)
}

func TestRootReadiness(t *testing.T) {
	resp, body := serve(t, &fakeFinder{}, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "RegioJet Delays API is running")
}

func TestHealthz(t *testing.T) {
	resp, body := serve(t, &fakeFinder{}, "/healthz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestRequestIDHeader(t *testing.T) {
	resp, _ := serve(t, &fakeFinder{}, "/healthz")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestRequestIDEchoed(t *testing.T) {
	handler := NewDelayHandler(&fakeFinder{}, 1, 2)
	server := httptest.NewServer(NewRouter(handler, []string{"*"}))
	t.Cleanup(server.Close)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-Id"))
}
