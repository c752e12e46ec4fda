package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"match_fetcher/internal/domain"
)

// Source is one upstream feed of live events, already normalized to
// MatchRecord by the source package.
type Source interface {
	ID() string
	Name() string
	FetchMatches(ctx context.Context) ([]domain.MatchRecord, error)
}
