// Package feed tracks ingested artwork posts and applies resolved tag sets
// to them. Acquisition of the posts themselves happens outside this service.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/animura/animura/internal/core/resolver"
	"github.com/animura/animura/internal/platform/apperr"
	"github.com/animura/animura/internal/platform/dberr"
	"github.com/animura/animura/internal/platform/validate"
	"github.com/animura/animura/pkg/pagination"
	"github.com/animura/animura/pkg/pointer"
	"github.com/animura/animura/pkg/slice"
	"github.com/animura/animura/pkg/uuidv7"
)

// Service orchestrates post records and their tagging lifecycle.
type Service struct {
	repository Repository
	resolver   *resolver.Service
	tagSuffix  string
	logger     *slog.Logger
}

func NewService(repository Repository, resolver *resolver.Service, tagSuffix string, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		resolver:   resolver,
		tagSuffix:  tagSuffix,
		logger:     logger,
	}
}

// # Ingestion

// IngestInput carries one scraped post record.
type IngestInput struct {
	PostID     string  `json:"post_id"`
	SubName    string  `json:"sub_name"`
	Author     string  `json:"author"`
	Caption    string  `json:"caption"`
	CreatedUTC int64   `json:"created_utc"`
	MediaURL   string  `json:"media_url"`
	PHash      *string `json:"phash"`
	SourceLink *string `json:"source_link"`
}

/*
Ingest records a new post. When a perceptual hash is provided and an
earlier post carries the same hash, the new record is rejected as a
duplicate.
*/
func (service *Service) Ingest(context context.Context, input IngestInput) (*Post, error) {
	validator := &validate.Validator{}
	validator.
		Required("post_id", input.PostID).
		Required("sub_name", input.SubName).
		Required("media_url", input.MediaURL).
		MaxLen("caption", input.Caption, 2048)
	if input.PHash != nil {
		validator.Hex("phash", pointer.Val(input.PHash))
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.PHash != nil {
		existing, err := service.repository.GetByHash(context, pointer.Val(input.PHash))
		if err != nil && !errors.Is(err, dberr.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("A post with this perceptual hash already exists")
		}
	}

	post := &Post{
		ID:         uuidv7.New(),
		PostID:     input.PostID,
		SubName:    input.SubName,
		Author:     input.Author,
		Caption:    input.Caption,
		CreatedUTC: input.CreatedUTC,
		MediaURL:   input.MediaURL,
		PHash:      input.PHash,
		SourceLink: input.SourceLink,
		Visible:    []string{},
		Invisible:  []string{},
	}

	if err := service.repository.Create(context, post); err != nil {
		return nil, err
	}
	return post, nil
}

// # Lookups

func (service *Service) Get(context context.Context, id string) (*Post, error) {
	return service.repository.GetByID(context, id)
}

func (service *Service) List(context context.Context, params pagination.Params) ([]*Post, int, error) {
	return service.repository.List(context, params)
}

// CountByEntry aggregates tagged posts per catalog entry, most referenced
// first, feeding popularity curation.
func (service *Service) CountByEntry(context context.Context) ([]EntryCount, error) {
	return service.repository.CountByEntry(context)
}

// # Tagging

/*
Tag resolves one post's caption and persists the resulting tag set on the
record. Re-tagging an already tagged post overwrites its previous tags.
*/
func (service *Service) Tag(context context.Context, id string) (*Post, error) {
	post, err := service.repository.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	tags, err := service.resolver.ResolveCaption(context, post.Caption)
	if err != nil {
		return nil, err
	}

	if err := service.repository.SetResolvedTags(context, post.ID, tags.EntryID, tags.Visible, tags.Invisible); err != nil {
		return nil, err
	}

	post.EntryID = tags.EntryID
	post.Visible = tags.Visible
	post.Invisible = tags.Invisible
	return post, nil
}

// TagRunResult summarizes one batch tagging pass.
type TagRunResult struct {
	Processed int `json:"processed"`
	Matched   int `json:"matched"`
}

/*
TagPending resolves captions for approved posts that have no tags yet,
oldest first, up to limit. A post that resolves to the fallback tag still
counts as processed; only posts matched to a catalog entry count as
matched. The pass aborts on the first persistence failure so a store
outage does not burn through the batch.
*/
func (service *Service) TagPending(context context.Context, limit int) (TagRunResult, error) {
	result := TagRunResult{}

	posts, err := service.repository.ListPendingTags(context, limit)
	if err != nil {
		return result, err
	}

	for _, post := range posts {
		tags, err := service.resolver.ResolveCaption(context, post.Caption)
		if err != nil {
			return result, err
		}

		if err := service.repository.SetResolvedTags(context, post.ID, tags.EntryID, tags.Visible, tags.Invisible); err != nil {
			return result, err
		}

		result.Processed++
		if tags.EntryID != nil {
			result.Matched++
		}
	}

	service.logger.Info("pending posts tagged",
		slog.Int("processed", result.Processed),
		slog.Int("matched", result.Matched),
	)
	return result, nil
}

// SetDisliked flags or unflags a post as rejected by review.
func (service *Service) SetDisliked(context context.Context, id string, disliked bool) (*Post, error) {
	if err := service.repository.SetDisliked(context, id, disliked); err != nil {
		return nil, err
	}
	return service.repository.GetByID(context, id)
}

// # Hashtag Rendering

/*
Hashtags renders a post's full tag set as publishable hashtag lines.
Underscores are stripped so each tag forms a single hashtag token, the
attribution suffix is appended to every line, and lines are joined with
newlines. Visible tags come first.
*/
func (service *Service) Hashtags(post *Post) string {
	tags := make([]string, 0, len(post.Visible)+len(post.Invisible))
	tags = append(tags, post.Visible...)
	tags = append(tags, post.Invisible...)

	compact := slice.Map(tags, func(tag string) string {
		return strings.ReplaceAll(tag, "_", "")
	})
	compact = slice.Filter(compact, func(tag string) bool { return tag != "" })

	lines := slice.Map(compact, func(tag string) string {
		return "#" + tag + service.tagSuffix
	})
	return strings.Join(lines, "\n")
}
