package storage

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/faizmokh/lifelog/internal/journal"
)

// Key is the single well-known key holding the raw journal text.
const Key = "JOURNAL"

// Journal stores the raw text verbatim and re-parses it on every read. Backend
// failures are logged and swallowed: reads fall back to empty, writes become
// no-ops.
type Journal struct {
	backend Backend
	logger  *zap.Logger
}

// NewJournal wires the facade. A nil logger discards output.
func NewJournal(backend Backend, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Journal{backend: backend, logger: logger}
}

// Write replaces the stored text unconditionally.
func (j *Journal) Write(ctx context.Context, text string) {
	if err := j.backend.Set(ctx, Key, text); err != nil {
		j.logger.Error("Error updating journal", zap.Error(err))
		return
	}
	j.logger.Debug("journal updated", zap.Int("bytes", len(text)))
}

// Clear removes the stored text.
func (j *Journal) Clear(ctx context.Context) {
	if err := j.backend.Remove(ctx, Key); err != nil {
		j.logger.Error("Error removing journal", zap.Error(err))
		return
	}
	j.logger.Debug("journal removed")
}

// Raw returns the stored text, or "" when nothing is stored.
func (j *Journal) Raw(ctx context.Context) string {
	text, _, err := j.backend.Get(ctx, Key)
	if err != nil {
		j.logger.Error("Error getting journal data", zap.Error(err))
		return ""
	}
	return text
}

// ReadParsed parses the stored text. The block written last comes first.
func (j *Journal) ReadParsed(ctx context.Context) []journal.Entry {
	text := j.Raw(ctx)
	if text == "" {
		return []journal.Entry{}
	}
	entries := journal.Parse(text)
	j.logger.Debug("journal parsed", zap.Int("entries", len(entries)))
	return entries
}

// Append adds block below the stored text, separated by a blank line. The
// read-modify-write is not guarded against concurrent writers.
func (j *Journal) Append(ctx context.Context, block string) {
	block = strings.Trim(block, "\n")
	if strings.TrimSpace(block) == "" {
		return
	}
	existing := strings.TrimRight(j.Raw(ctx), "\n")
	if strings.TrimSpace(existing) == "" {
		j.Write(ctx, block)
		return
	}
	j.Write(ctx, existing+"\n\n"+block)
}
