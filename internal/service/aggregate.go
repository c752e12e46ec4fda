package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"match_fetcher/internal/domain"
)

// AggregateService runs one fetch-extract-merge pass over the two sources.
type AggregateService struct {
	primary   Source
	secondary Source
	logger    *slog.Logger
}

func NewAggregateService(primary, secondary Source, logger *slog.Logger) *AggregateService {
	return &AggregateService{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

type fetchResult struct {
	records []domain.MatchRecord
	err     error
}

// Aggregate fetches both sources concurrently, waits for both to settle, and
// merges the results with first-seen-wins deduplication. It never returns an
// error: a failure on either source empties the whole run, reported through
// RunStats.
func (s *AggregateService) Aggregate(ctx context.Context) ([]domain.MatchRecord, *domain.RunStats) {
	startTime := time.Now()
	s.logger.Info("starting aggregation",
		"primary", s.primary.Name(),
		"secondary", s.secondary.Name(),
	)

	// Each fetch owns its result slot; neither outcome short-circuits the
	// other.
	sources := []Source{s.primary, s.secondary}
	results := make([]fetchResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			records, err := src.FetchMatches(ctx)
			results[i] = fetchResult{records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	stats := &domain.RunStats{
		Primary:   len(results[0].records),
		Secondary: len(results[1].records),
	}

	for i, src := range sources {
		if results[i].err != nil {
			stats.SourceErrors++
			s.logger.Warn("source fetch failed",
				"source", src.ID(),
				"error", results[i].err,
			)
		}
	}

	// One failed source makes the whole run untrustworthy: emit nothing
	// rather than a partial list.
	if stats.SourceErrors > 0 {
		stats.Duration = time.Since(startTime)
		s.logger.Warn("aggregation degraded to empty output",
			"source_errors", stats.SourceErrors,
		)
		return []domain.MatchRecord{}, stats
	}

	merged := merge(results[0].records, results[1].records)
	stats.Duplicates = stats.Primary + stats.Secondary - len(merged)
	stats.Emitted = len(merged)
	stats.Duration = time.Since(startTime)

	s.logger.Info("aggregation completed",
		"primary", stats.Primary,
		"secondary", stats.Secondary,
		"duplicates", stats.Duplicates,
		"emitted", stats.Emitted,
		"duration", stats.Duration,
	)

	return merged, stats
}

// merge concatenates the extracted sequences with first-seen-wins
// deduplication by match identifier. Order is stable: primary records precede
// secondary ones, feed order preserved within each.
func merge(primary, secondary []domain.MatchRecord) []domain.MatchRecord {
	merged := make([]domain.MatchRecord, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))

	for _, records := range [][]domain.MatchRecord{primary, secondary} {
		for _, r := range records {
			key := r.MatchID.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, r)
		}
	}

	return merged
}
