package feed

import (
	"context"

	"github.com/animura/animura/pkg/pagination"
)

type Repository interface {
	Create(context context.Context, post *Post) error
	GetByID(context context.Context, id string) (*Post, error)
	GetByHash(context context.Context, phash string) (*Post, error)
	// List returns posts newest first along with the total record count.
	List(context context.Context, params pagination.Params) ([]*Post, int, error)
	// ListPendingTags returns approved posts that have no resolved tags
	// yet, oldest first.
	ListPendingTags(context context.Context, limit int) ([]*Post, error)
	SetResolvedTags(context context.Context, id string, entryID *int, visible, invisible []string) error
	SetDisliked(context context.Context, id string, disliked bool) error
	// CountByEntry aggregates tagged posts per catalog entry, most
	// referenced first.
	CountByEntry(context context.Context) ([]EntryCount, error)
}
