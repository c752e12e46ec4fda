package fancode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"match_fetcher/internal/domain"
)

const (
	SourceID   = "fancode"
	SourceName = "FanCode"
)

const statusStarted = "STARTED"

// Config holds FanCode source configuration.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Source implements service.Source for the FanCode live events feed.
type Source struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// New creates a new FanCode source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:    cfg.URL,
		logger: logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchMatches fetches the feed and extracts the eligible entries. A single
// GET, no retries; transport, status and document-level decode errors are
// returned to the caller. Per-entry problems are never an error.
func (s *Source) FetchMatches(ctx context.Context) ([]domain.MatchRecord, error) {
	doc, err := s.doRequest(ctx)
	if err != nil {
		return nil, err
	}
	return s.extract(doc), nil
}

func (s *Source) doRequest(ctx context.Context) (*feedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MatchFetcher/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &doc, nil
}

func (s *Source) extract(doc *feedDocument) []domain.MatchRecord {
	entries := s.entries(doc.Matches)
	records := make([]domain.MatchRecord, 0, len(entries))

	for _, raw := range entries {
		var e matchEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			s.logger.Debug("skipping malformed entry", "error", err)
			continue
		}
		if e.Status != statusStarted || e.Streaming == nil || e.Streaming.DaiGoogleCDN == "" {
			continue
		}

		records = append(records, domain.MatchRecord{
			Title:   e.Title,
			Image:   e.Image,
			Link:    e.Streaming.DaiGoogleCDN,
			MatchID: e.MatchID,
		})
	}

	s.logger.Debug("extracted records", "eligible", len(records), "total", len(entries))

	return records
}

func (s *Source) entries(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("matches field is not a list, treating as empty", "error", err)
		return nil
	}
	return entries
}
