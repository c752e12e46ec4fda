package drmlive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"match_fetcher/internal/domain"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Config{URL: srv.URL, Timeout: 5 * time.Second}, logger)
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestFetchMatches_LiveWithLinkOnly(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{
		"matches": [
			{"match_name": "A vs B", "src": "img1", "adfree_url": "http://x/1", "match_id": "m1", "status": "LIVE"},
			{"match_name": "C vs D", "src": "img2", "adfree_url": "", "match_id": "m2", "status": "LIVE"},
			{"match_name": "E vs F", "src": "img3", "adfree_url": "http://x/3", "match_id": "m3", "status": "UPCOMING"}
		]
	}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, domain.MatchRecord{
		Title:   "A vs B",
		Image:   "img1",
		Link:    "http://x/1",
		MatchID: domain.StringID("m1"),
	}, records[0])
}

func TestFetchMatches_PreservesFeedOrder(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{
		"matches": [
			{"match_name": "first", "adfree_url": "http://x/1", "match_id": 1, "status": "LIVE"},
			{"match_name": "second", "adfree_url": "http://x/2", "match_id": 2, "status": "LIVE"}
		]
	}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "first", records[0].Title)
	require.Equal(t, "second", records[1].Title)
}

func TestFetchMatches_MissingMatchesField(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{"status": "ok"}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFetchMatches_MatchesNotAList(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{"matches": "oops"}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFetchMatches_MalformedEntrySkipped(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{
		"matches": [
			"not an object",
			{"match_name": "A vs B", "adfree_url": "http://x/1", "match_id": "m1", "status": "LIVE"}
		]
	}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "A vs B", records[0].Title)
}

func TestFetchMatches_MissingFieldsIneligible(t *testing.T) {
	src := newTestSource(t, jsonHandler(`{
		"matches": [
			{"match_name": "no stream", "status": "LIVE"},
			{"adfree_url": "http://x/1"}
		]
	}`))

	records, err := src.FetchMatches(context.Background())

	require.NoError(t, err)
	require.Empty(t, records)
}

func TestFetchMatches_HTTPError(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := src.FetchMatches(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status")
}

func TestFetchMatches_NonJSONBody(t *testing.T) {
	src := newTestSource(t, jsonHandler(`<html>maintenance</html>`))

	_, err := src.FetchMatches(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}
