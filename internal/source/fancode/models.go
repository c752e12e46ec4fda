package fancode

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

// matchEntry is one raw feed entry. Every field is optional upstream; the CDN
// block in particular is absent on entries without a playable stream.
type matchEntry struct {
	Title     string         `json:"title"`
	Image     string         `json:"image"`
	Streaming *streamingCDN  `json:"STREAMING_CDN"`
	MatchID   domain.MatchID `json:"match_id"`
	Status    string         `json:"status"`
}

type streamingCDN struct {
	DaiGoogleCDN string `json:"dai_google_cdn"`
}
