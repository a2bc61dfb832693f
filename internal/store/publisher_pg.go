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

// PublisherPG is the Postgres-backed publisher repository.
type PublisherPG struct {
	db  *pgxpool.Pool
	log zerolog.Logger
}

func NewPublisherPG(db *pgxpool.Pool, log zerolog.Logger) *PublisherPG {
	return &PublisherPG{
		db:  db,
		log: log.With().Str("component", "PublisherRepository").Logger(),
	}
}

func (r *PublisherPG) GetAll(ctx context.Context) ([]entity.Publisher, error) {
	r.log.Debug().Msg("retrieving all publishers")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM publisher ORDER BY id`)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all publishers. Error: %s.", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all publishers. Error: %s.", err)
	}

	publishers := make([]entity.Publisher, 0, len(records))
	for _, rec := range records {
		p := PublisherFromRow(rec)
		if p == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable publisher row")
			continue
		}
		publishers = append(publishers, *p)
	}
	return publishers, nil
}

func (r *PublisherPG) GetByID(ctx context.Context, id int) (*entity.Publisher, error) {
	r.log.Debug().Int("id", id).Msg("retrieving publisher by id")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM publisher WHERE id = $1`, id)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve publisher by id %d. Error: %s.", id, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve publisher by id %d. Error: %s.", id, err)
	}
	if len(records) != 1 {
		return nil, nil
	}

	p := PublisherFromRow(records[0])
	if p == nil {
		r.log.Warn().Interface("row", records[0]).Msg("skipping unmappable publisher row")
	}
	return p, nil
}

// GetByName narrows candidates with a case-insensitive contains query,
// then picks the first exact case-insensitive match client-side.
func (r *PublisherPG) GetByName(ctx context.Context, name string) (*entity.Publisher, error) {
	r.log.Debug().Str("name", name).Msg("retrieving publisher by name")

	rows, err := r.db.Query(ctx, `SELECT id, name FROM publisher WHERE name ILIKE $1`, "%"+name+"%")
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve publisher by name %s. Error: %s.", name, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve publisher by name %s. Error: %s.", name, err)
	}

	for _, rec := range records {
		candidate, ok := stringValue(rec[colName])
		if !ok || !strings.EqualFold(candidate, name) {
			continue
		}
		p := PublisherFromRow(rec)
		if p == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable publisher row")
		}
		return p, nil
	}
	return nil, nil
}

func (r *PublisherPG) Create(ctx context.Context, p entity.Publisher) (entity.Publisher, error) {
	r.log.Debug().Str("name", p.Name).Msg("creating publisher")

	var id int
	err := r.db.QueryRow(ctx, `INSERT INTO publisher (name) VALUES ($1) RETURNING id`, p.Name).Scan(&id)
	if err != nil {
		return entity.Publisher{}, errs.Storage(err, "Could not create publisher %s: %s", p.Name, err)
	}
	p.ID = id
	return p, nil
}

func (r *PublisherPG) Update(ctx context.Context, p entity.Publisher) (bool, error) {
	r.log.Debug().Int("id", p.ID).Msg("updating publisher")

	existing, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", p.ID).Msg("publisher does not exist, nothing to update")
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `UPDATE publisher SET name = $1 WHERE id = $2`, p.Name, p.ID); err != nil {
		return false, errs.Storage(err, "Could not update publisher by id %d. Error: %s.", p.ID, err)
	}
	return true, nil
}

func (r *PublisherPG) Delete(ctx context.Context, id int) (bool, error) {
	r.log.Debug().Int("id", id).Msg("deleting publisher")

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", id).Msg("publisher does not exist, nothing to delete")
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM publisher WHERE id = $1`, id); err != nil {
		return false, errs.Storage(err, "Could not delete publisher by id %d. Error: %s.", id, err)
	}
	return true, nil
}
