package store

import (
	"context"
	"strings"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// AuthorPG is the Postgres-backed author repository.
type AuthorPG struct {
	db  *pgxpool.Pool
	log zerolog.Logger
}

func NewAuthorPG(db *pgxpool.Pool, log zerolog.Logger) *AuthorPG {
	return &AuthorPG{
		db:  db,
		log: log.With().Str("component", "AuthorRepository").Logger(),
	}
}

func (r *AuthorPG) GetAll(ctx context.Context) ([]entity.Author, error) {
	r.log.Debug().Msg("retrieving all authors")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM author ORDER BY id`)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all authors. Error: %s.", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all authors. Error: %s.", err)
	}

	authors := make([]entity.Author, 0, len(records))
	for _, rec := range records {
		a := AuthorFromRow(rec)
		if a == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable author row")
			continue
		}
		authors = append(authors, *a)
	}
	return authors, nil
}

func (r *AuthorPG) GetByID(ctx context.Context, id int) (*entity.Author, error) {
	r.log.Debug().Int("id", id).Msg("retrieving author by id")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM author WHERE id = $1`, id)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve author by id %d. Error: %s.", id, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve author by id %d. Error: %s.", id, err)
	}
	// The primary key guarantees at most one row.
	if len(records) != 1 {
		return nil, nil
	}

	a := AuthorFromRow(records[0])
	if a == nil {
		r.log.Warn().Interface("row", records[0]).Msg("skipping unmappable author row")
	}
	return a, nil
}

// GetByName narrows candidates with a case-insensitive contains query,
// then picks the first exact case-insensitive match client-side.
func (r *AuthorPG) GetByName(ctx context.Context, name string) (*entity.Author, error) {
	r.log.Debug().Str("name", name).Msg("retrieving author by name")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM author WHERE name ILIKE $1`, "%"+name+"%")
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve author by name %s. Error: %s.", name, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve author by name %s. Error: %s.", name, err)
	}

	for _, rec := range records {
		candidate, ok := stringValue(rec[colName])
		if !ok || !strings.EqualFold(candidate, name) {
			continue
		}
		a := AuthorFromRow(rec)
		if a == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable author row")
		}
		return a, nil
	}
	return nil, nil
}

func (r *AuthorPG) Create(ctx context.Context, a entity.Author) (entity.Author, error) {
	r.log.Debug().Str("name", a.Name).Msg("creating author")

	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO author (name) VALUES ($1) RETURNING id`, a.Name).Scan(&id)
	if err != nil {
		return entity.Author{}, errs.Storage(err, "Could not create author %s: %s", a.Name, err)
	}
	a.ID = id
	return a, nil
}

func (r *AuthorPG) Update(ctx context.Context, a entity.Author) (bool, error) {
	r.log.Debug().Int("id", a.ID).Msg("updating author")

	existing, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", a.ID).Msg("author does not exist, nothing to update")
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `UPDATE author SET name = $1 WHERE id = $2`, a.Name, a.ID); err != nil {
		return false, errs.Storage(err, "Could not update author by id %d. Error: %s.", a.ID, err)
	}
	return true, nil
}

func (r *AuthorPG) Delete(ctx context.Context, id int) (bool, error) {
	r.log.Debug().Int("id", id).Msg("deleting author")

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", id).Msg("author does not exist, nothing to delete")
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM author WHERE id = $1`, id); err != nil {
		return false, errs.Storage(err, "Could not delete author by id %d. Error: %s.", id, err)
	}
	return true, nil
}
