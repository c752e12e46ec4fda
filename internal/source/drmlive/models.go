package drmlive

import (
	"encoding/json"

	"match_fetcher/internal/domain"
)

// feedDocument is the top-level shape of the feed. matches stays raw so that a
// missing or non-list field degrades to an empty sequence instead of failing
// the whole document.
type feedDocument struct {
	Matches json.RawMessage `json:"matches"`
}

// matchEntry is one raw feed entry. Every field is optional upstream.
type matchEntry struct {
	MatchName string         `json:"match_name"`
	Src       string         `json:"src"`
	AdFreeURL string         `json:"adfree_url"`
	MatchID   domain.MatchID `json:"match_id"`
	Status    string         `json:"status"`
}
