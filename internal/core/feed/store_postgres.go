package feed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/animura/animura/internal/platform/database/schema"
	"github.com/animura/animura/internal/platform/dberr"
	"github.com/animura/animura/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func postColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.FeedPost.ID, schema.FeedPost.PostID, schema.FeedPost.SubName, schema.FeedPost.Author,
		schema.FeedPost.Caption, schema.FeedPost.CreatedUTC, schema.FeedPost.MediaURL, schema.FeedPost.PHash,
		schema.FeedPost.SourceLink, schema.FeedPost.EntryID, schema.FeedPost.VisibleTags, schema.FeedPost.InvisibleTags,
		schema.FeedPost.IsDownloaded, schema.FeedPost.IsChecked, schema.FeedPost.IsDisliked, schema.FeedPost.WrongFormat)
}

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	err := row.Scan(
		&post.ID, &post.PostID, &post.SubName, &post.Author,
		&post.Caption, &post.CreatedUTC, &post.MediaURL, &post.PHash,
		&post.SourceLink, &post.EntryID, &post.Visible, &post.Invisible,
		&post.Downloaded, &post.Checked, &post.Disliked, &post.WrongFormat,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (repository *PostgresRepository) Create(context context.Context, post *Post) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		schema.FeedPost.Table, postColumns())

	_, err := repository.db.Exec(context, query,
		post.ID, post.PostID, post.SubName, post.Author,
		post.Caption, post.CreatedUTC, post.MediaURL, post.PHash,
		post.SourceLink, post.EntryID, post.Visible, post.Invisible,
		post.Downloaded, post.Checked, post.Disliked, post.WrongFormat,
	)
	if err != nil {
		return dberr.Wrap(err, "create_post")
	}
	return nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postColumns(), schema.FeedPost.Table, schema.FeedPost.ID)

	post, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_id")
	}
	return post, nil
}

func (repository *PostgresRepository) GetByHash(context context.Context, phash string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postColumns(), schema.FeedPost.Table, schema.FeedPost.PHash)

	post, err := scanPost(repository.db.QueryRow(context, query, phash))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_hash")
	}
	return post, nil
}

func (repository *PostgresRepository) List(context context.Context, params pagination.Params) ([]*Post, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.FeedPost.Table)

	total := 0
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		postColumns(), schema.FeedPost.Table, schema.FeedPost.CreatedUTC)

	rows, err := repository.db.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := make([]*Post, 0, params.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}

	return posts, total, nil
}

func (repository *PostgresRepository) ListPendingTags(context context.Context, limit int) ([]*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE %s = true AND %s = false AND %s = false
		AND COALESCE(array_length(%s, 1), 0) = 0
		ORDER BY %s ASC
		LIMIT $1`,
		postColumns(), schema.FeedPost.Table,
		schema.FeedPost.IsChecked, schema.FeedPost.IsDisliked, schema.FeedPost.WrongFormat,
		schema.FeedPost.VisibleTags,
		schema.FeedPost.CreatedUTC)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pending_tags")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_pending_tags")
	}

	return posts, nil
}

func (repository *PostgresRepository) SetResolvedTags(context context.Context, id string, entryID *int, visible, invisible []string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		schema.FeedPost.Table,
		schema.FeedPost.EntryID, schema.FeedPost.VisibleTags, schema.FeedPost.InvisibleTags,
		schema.FeedPost.ID)

	tag, err := repository.db.Exec(context, query, id, entryID, visible, invisible)
	if err != nil {
		return dberr.Wrap(err, "set_resolved_tags")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "set_resolved_tags")
	}
	return nil
}

func (repository *PostgresRepository) SetDisliked(context context.Context, id string, disliked bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.FeedPost.Table, schema.FeedPost.IsDisliked, schema.FeedPost.ID)

	tag, err := repository.db.Exec(context, query, id, disliked)
	if err != nil {
		return dberr.Wrap(err, "set_disliked")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "set_disliked")
	}
	return nil
}

func (repository *PostgresRepository) CountByEntry(context context.Context) ([]EntryCount, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s
		WHERE %s IS NOT NULL
		GROUP BY %s
		ORDER BY COUNT(*) DESC`,
		schema.FeedPost.EntryID, schema.FeedPost.Table,
		schema.FeedPost.EntryID, schema.FeedPost.EntryID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "count_by_entry")
	}
	defer rows.Close()

	counts := make([]EntryCount, 0)
	for rows.Next() {
		count := EntryCount{}
		if err := rows.Scan(&count.EntryID, &count.Posts); err != nil {
			return nil, dberr.Wrap(err, "scan_entry_count")
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "count_by_entry")
	}

	return counts, nil
}
