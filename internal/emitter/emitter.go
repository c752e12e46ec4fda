package emitter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"match_fetcher/internal/domain"
)

// Emitter writes the final record sequence as one JSON array. The array is the
// pipeline's sole output artifact; an external collaborator captures the
// stream and persists it.
type Emitter struct {
	w      io.Writer
	logger *slog.Logger
}

func New(w io.Writer, logger *slog.Logger) *Emitter {
	return &Emitter{
		w:      w,
		logger: logger,
	}
}

// Emit serializes records to the writer. A nil or empty sequence serializes to
// [], never null.
func (e *Emitter) Emit(records []domain.MatchRecord) error {
	if records == nil {
		records = []domain.MatchRecord{}
	}

	if err := json.NewEncoder(e.w).Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	e.logger.Debug("emitted records", "count", len(records))

	return nil
}
