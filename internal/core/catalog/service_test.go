package catalog_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/internal/platform/apperr"
)

type stubSource struct {
	entries []catalog.Entry
	fail    bool
}

func (source *stubSource) LoadEntries(_ context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	if source.fail {
		return nil, errors.New("connection refused")
	}
	var entries []catalog.Entry
	for _, entry := range source.entries {
		if entry.Kind == kind {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (source *stubSource) LoadCharacters(_ context.Context, _ catalog.Kind) ([]catalog.Character, error) {
	return nil, nil
}

func (source *stubSource) LoadPopular(_ context.Context) ([]catalog.Popular, error) {
	return nil, nil
}

func (source *stubSource) LoadTagRules(_ context.Context) ([]catalog.TagRule, error) {
	return nil, nil
}

func TestService_CurrentBeforeRefresh(t *testing.T) {
	service := catalog.NewService(&stubSource{}, slog.Default())

	_, err := service.Current()
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "STORE_UNAVAILABLE", ae.Code)
}

func TestService_RefreshSwapsSnapshot(t *testing.T) {
	source := &stubSource{entries: []catalog.Entry{
		{ID: 1, Kind: catalog.KindAnime, Title: "Toradora!"},
	}}
	service := catalog.NewService(source, slog.Default())

	snapshot, err := service.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Stats().Entries[catalog.KindAnime])

	current, err := service.Current()
	require.NoError(t, err)
	assert.Same(t, snapshot, current)
}

func TestService_RefreshFailureKeepsPrevious(t *testing.T) {
	source := &stubSource{entries: []catalog.Entry{
		{ID: 1, Kind: catalog.KindAnime, Title: "Toradora!"},
	}}
	service := catalog.NewService(source, slog.Default())

	first, err := service.Refresh(context.Background())
	require.NoError(t, err)

	source.fail = true
	_, err = service.Refresh(context.Background())
	require.Error(t, err)

	current, err := service.Current()
	require.NoError(t, err)
	assert.Same(t, first, current)
}
