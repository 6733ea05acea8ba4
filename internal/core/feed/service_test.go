package feed_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/internal/core/feed"
	"github.com/animura/animura/internal/core/resolver"
	"github.com/animura/animura/internal/platform/apperr"
	"github.com/animura/animura/internal/platform/dberr"
	"github.com/animura/animura/pkg/pagination"
	"github.com/animura/animura/pkg/pointer"
)

type stubRepository struct {
	posts       map[string]*feed.Post
	pending     []*feed.Post
	failSetTags bool
}

func newStubRepository() *stubRepository {
	return &stubRepository{posts: map[string]*feed.Post{}}
}

func (repository *stubRepository) Create(_ context.Context, post *feed.Post) error {
	repository.posts[post.ID] = post
	return nil
}

func (repository *stubRepository) GetByID(_ context.Context, id string) (*feed.Post, error) {
	post, ok := repository.posts[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return post, nil
}

func (repository *stubRepository) GetByHash(_ context.Context, phash string) (*feed.Post, error) {
	for _, post := range repository.posts {
		if post.PHash != nil && *post.PHash == phash {
			return post, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *stubRepository) List(_ context.Context, params pagination.Params) ([]*feed.Post, int, error) {
	posts := make([]*feed.Post, 0, len(repository.posts))
	for _, post := range repository.posts {
		posts = append(posts, post)
	}
	return posts, len(posts), nil
}

func (repository *stubRepository) ListPendingTags(_ context.Context, limit int) ([]*feed.Post, error) {
	if limit > len(repository.pending) {
		limit = len(repository.pending)
	}
	return repository.pending[:limit], nil
}

func (repository *stubRepository) SetResolvedTags(_ context.Context, id string, entryID *int, visible, invisible []string) error {
	if repository.failSetTags {
		return apperr.StoreUnavailable(errors.New("connection refused"))
	}
	post, ok := repository.posts[id]
	if !ok {
		return dberr.ErrNotFound
	}
	post.EntryID = entryID
	post.Visible = visible
	post.Invisible = invisible
	return nil
}

func (repository *stubRepository) SetDisliked(_ context.Context, id string, disliked bool) error {
	post, ok := repository.posts[id]
	if !ok {
		return dberr.ErrNotFound
	}
	post.Disliked = disliked
	return nil
}

func (repository *stubRepository) CountByEntry(_ context.Context) ([]feed.EntryCount, error) {
	return nil, nil
}

type fixtureSource struct{}

func (fixtureSource) LoadEntries(_ context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	if kind != catalog.KindAnime {
		return nil, nil
	}
	return []catalog.Entry{
		{ID: 1, Kind: catalog.KindAnime, Title: "Sword Art Online", Franchise: pointer.To("sword_art_online")},
	}, nil
}

func (fixtureSource) LoadCharacters(_ context.Context, _ catalog.Kind) ([]catalog.Character, error) {
	return nil, nil
}

func (fixtureSource) LoadPopular(_ context.Context) ([]catalog.Popular, error) {
	return nil, nil
}

func (fixtureSource) LoadTagRules(_ context.Context) ([]catalog.TagRule, error) {
	return nil, nil
}

func newFixtureService(t *testing.T, repository feed.Repository) *feed.Service {
	t.Helper()

	catalogs := catalog.NewService(fixtureSource{}, slog.Default())
	_, err := catalogs.Refresh(context.Background())
	require.NoError(t, err)

	tags := resolver.NewService(catalogs, nil, slog.Default())
	return feed.NewService(repository, tags, "@animura.arts", slog.Default())
}

func TestService_IngestRejectsDuplicateHash(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	input := feed.IngestInput{
		PostID:   "t3_abc",
		SubName:  "awwnime",
		MediaURL: "https://cdn.example.com/a.png",
		Caption:  "Asuna [Sword Art Online]",
		PHash:    pointer.To("c3a1f0e9"),
	}

	first, err := service.Ingest(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Tagged())

	_, err = service.Ingest(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

func TestService_IngestValidatesInput(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	_, err := service.Ingest(context.Background(), feed.IngestInput{SubName: "awwnime"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_TagResolvesAndPersists(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	post, err := service.Ingest(context.Background(), feed.IngestInput{
		PostID:   "t3_abc",
		SubName:  "awwnime",
		MediaURL: "https://cdn.example.com/a.png",
		Caption:  "Sword Art Online",
	})
	require.NoError(t, err)

	tagged, err := service.Tag(context.Background(), post.ID)
	require.NoError(t, err)

	require.NotNil(t, tagged.EntryID)
	assert.Equal(t, 1, *tagged.EntryID)
	assert.Equal(t, []string{"Sword_Art_Online"}, tagged.Visible)

	stored, err := service.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.True(t, stored.Tagged())
}

func TestService_TagPending(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	matched := &feed.Post{ID: "p1", Caption: "sword art online"}
	unmatched := &feed.Post{ID: "p2", Caption: "qzxv qwerty"}
	repository.posts["p1"] = matched
	repository.posts["p2"] = unmatched
	repository.pending = []*feed.Post{matched, unmatched}

	result, err := service.TagPending(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Matched)

	// The unmatched post still receives the fallback tag so it is not
	// picked up again by the next run.
	assert.Equal(t, []string{"AnimeArt"}, unmatched.Visible)
	require.NotNil(t, matched.EntryID)
	assert.Equal(t, 1, *matched.EntryID)
}

func TestService_TagPendingAbortsOnStoreFailure(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	post := &feed.Post{ID: "p1", Caption: "sword art online"}
	repository.posts["p1"] = post
	repository.pending = []*feed.Post{post}
	repository.failSetTags = true

	result, err := service.TagPending(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, 0, result.Processed)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "STORE_UNAVAILABLE", ae.Code)
}

func TestService_Hashtags(t *testing.T) {
	service := newFixtureService(t, newStubRepository())

	post := &feed.Post{
		Visible:   []string{"Sword_Art_Online", "Asuna"},
		Invisible: []string{"AnimeArt"},
	}

	lines := service.Hashtags(post)
	assert.Equal(t, "#SwordArtOnline@animura.arts\n#Asuna@animura.arts\n#AnimeArt@animura.arts", lines)
}

func TestService_SetDisliked(t *testing.T) {
	repository := newStubRepository()
	service := newFixtureService(t, repository)

	repository.posts["p1"] = &feed.Post{ID: "p1"}

	post, err := service.SetDisliked(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.True(t, post.Disliked)
}
