package resolver

import (
	"context"
	"log/slog"

	"github.com/animura/animura/internal/core/catalog"
)

// Cache is the optional read-through cache for resolved tag sets. Cache
// failures degrade to a fresh resolution, never to an error.
type Cache interface {
	Get(context context.Context, caption string) (*ResolvedTags, error)
	Set(context context.Context, caption string, tags ResolvedTags) error
}

// Service binds the pure engine to the current catalog snapshot and the
// resolved-tag cache.
type Service struct {
	catalogs *catalog.Service
	cache    Cache
	logger   *slog.Logger
}

func NewService(catalogs *catalog.Service, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		catalogs: catalogs,
		cache:    cache,
		logger:   logger,
	}
}

/*
ResolveCaption resolves one caption against the current snapshot. The only
error condition is an unavailable reference snapshot; a caption that
matches nothing still resolves, to the fallback tag set.
*/
func (service *Service) ResolveCaption(context context.Context, caption string) (ResolvedTags, error) {
	if service.cache != nil {
		cached, err := service.cache.Get(context, caption)
		if err != nil {
			service.logger.Warn("resolved tag cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	snapshot, err := service.catalogs.Current()
	if err != nil {
		return ResolvedTags{}, err
	}

	tags := New(snapshot).Resolve(caption)

	if service.cache != nil {
		if err := service.cache.Set(context, caption, tags); err != nil {
			service.logger.Warn("resolved tag cache write failed", slog.Any("error", err))
		}
	}
	return tags, nil
}
