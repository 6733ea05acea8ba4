package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/animura/animura/internal/platform/database/schema"
	"github.com/animura/animura/internal/platform/dberr"
)

// PostgresRepository implements Source over the reference schema. It only
// bulk-loads; per-caption lookups run against the in-memory snapshot.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func titleTable(kind Kind) schema.RefTitleTable {
	if kind == KindAnime {
		return schema.RefAnime
	}
	return schema.RefNonAnime
}

func characterTable(kind Kind) schema.RefCharacterTable {
	if kind == KindAnime {
		return schema.RefAnimeCharacter
	}
	return schema.RefNonAnimeCharacter
}

func (repository *PostgresRepository) LoadEntries(context context.Context, kind Kind) ([]Entry, error) {
	table := titleTable(kind)
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		table.ID, table.Title, table.TitleEnglish, table.TitleRussian, table.TitleSynonyms, table.Franchise,
		table.Table, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "load_entries")
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		entry := Entry{Kind: kind}
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.English, &entry.Localized, &entry.Synonyms, &entry.Franchise); err != nil {
			return nil, dberr.Wrap(err, "scan_entry")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "load_entries")
	}

	return entries, nil
}

func (repository *PostgresRepository) LoadCharacters(context context.Context, kind Kind) ([]Character, error) {
	table := characterTable(kind)
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		table.ID, table.EntryID, table.NameArray, table.Role,
		table.Table, table.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "load_characters")
	}
	defer rows.Close()

	characters := make([]Character, 0)
	for rows.Next() {
		character := Character{Kind: kind}
		if err := rows.Scan(&character.ID, &character.EntryID, &character.Names, &character.Role); err != nil {
			return nil, dberr.Wrap(err, "scan_character")
		}
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "load_characters")
	}

	return characters, nil
}

func (repository *PostgresRepository) LoadPopular(context context.Context) ([]Popular, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s`,
		schema.RefPopular.Kind, schema.RefPopular.EntryID, schema.RefPopular.Table)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "load_popular")
	}
	defer rows.Close()

	popular := make([]Popular, 0)
	for rows.Next() {
		entry := Popular{}
		if err := rows.Scan(&entry.Kind, &entry.EntryID); err != nil {
			return nil, dberr.Wrap(err, "scan_popular")
		}
		popular = append(popular, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "load_popular")
	}

	return popular, nil
}

func (repository *PostgresRepository) LoadTagRules(context context.Context) ([]TagRule, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTagRule.ID, schema.RefTagRule.CheckMode, schema.RefTagRule.Keywords,
		schema.RefTagRule.VisibleTags, schema.RefTagRule.InvisibleTags,
		schema.RefTagRule.Table, schema.RefTagRule.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "load_tag_rules")
	}
	defer rows.Close()

	rules := make([]TagRule, 0)
	for rows.Next() {
		rule := TagRule{}
		if err := rows.Scan(&rule.ID, &rule.Mode, &rule.Keywords, &rule.Visible, &rule.Invisible); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_rule")
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "load_tag_rules")
	}

	return rules, nil
}
