package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/animura/animura/internal/platform/apperr"
)

/*
Service owns the current reference snapshot. Refresh is the only mutation
and is externally triggered; readers take whatever snapshot is current and
keep it for the duration of one resolution.
*/
type Service struct {
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

func NewService(source Source, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// Current returns the active snapshot, or an error if no load has
// succeeded yet.
func (service *Service) Current() (*Snapshot, error) {
	snapshot := service.current.Load()
	if snapshot == nil {
		return nil, apperr.StoreUnavailable(nil)
	}
	return snapshot, nil
}

// Refresh loads a fresh snapshot and swaps it in. On failure the previous
// snapshot stays active.
func (service *Service) Refresh(context context.Context) (*Snapshot, error) {
	snapshot, err := BuildSnapshot(context, service.source)
	if err != nil {
		return nil, err
	}

	service.current.Store(snapshot)

	stats := snapshot.Stats()
	service.logger.Info("catalog snapshot refreshed",
		slog.Int("anime_entries", stats.Entries[KindAnime]),
		slog.Int("non_anime_entries", stats.Entries[KindNonAnime]),
		slog.Int("popular", stats.Popular),
		slog.Int("tag_rules", stats.TagRules),
	)
	return snapshot, nil
}
