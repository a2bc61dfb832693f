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

const bookSelect = `
	SELECT b.id, b.title, b.isbn, b.year,
	       p.id AS publisher_id, p.name AS publisher_name
	FROM book b
	JOIN publisher p ON p.id = b.publisher_id`

// BookPG is the Postgres-backed book repository. Besides the book rows
// it manages the author_books join table that links books to authors.
type BookPG struct {
	db  *pgxpool.Pool
	log zerolog.Logger
}

func NewBookPG(db *pgxpool.Pool, log zerolog.Logger) *BookPG {
	return &BookPG{
		db:  db,
		log: log.With().Str("component", "BookRepository").Logger(),
	}
}

func (r *BookPG) GetAll(ctx context.Context) ([]entity.Book, error) {
	r.log.Debug().Msg("retrieving all books")

	rows, err := r.db.Query(ctx, bookSelect+` ORDER BY b.id`)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all books. Error: %s.", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve all books. Error: %s.", err)
	}

	books := make([]entity.Book, 0, len(records))
	for _, rec := range records {
		b := r.mapBook(ctx, rec)
		if b == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable book row")
			continue
		}
		books = append(books, *b)
	}
	return books, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int) (*entity.Book, error) {
	r.log.Debug().Int("id", id).Msg("retrieving book by id")

	rows, err := r.db.Query(ctx, bookSelect+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve book by id %d. Error: %s.", id, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve book by id %d. Error: %s.", id, err)
	}
	// The primary key guarantees at most one row.
	if len(records) != 1 {
		return nil, nil
	}

	b := r.mapBook(ctx, records[0])
	if b == nil {
		r.log.Warn().Interface("row", records[0]).Msg("skipping unmappable book row")
	}
	return b, nil
}

// GetByTitle narrows candidates with a case-insensitive contains query,
// then picks the first exact case-insensitive match client-side.
func (r *BookPG) GetByTitle(ctx context.Context, title string) (*entity.Book, error) {
	r.log.Debug().Str("title", title).Msg("retrieving book by title")
	return r.getByTextColumn(ctx, colTitle, title)
}

// GetByISBN matches like GetByTitle; case-insensitivity is moot for the
// digits-and-hyphen ISBN format but the lookup shape is shared.
func (r *BookPG) GetByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	r.log.Debug().Str("isbn", isbn).Msg("retrieving book by isbn")
	return r.getByTextColumn(ctx, colISBN, isbn)
}

func (r *BookPG) getByTextColumn(ctx context.Context, column, value string) (*entity.Book, error) {
	query := bookSelect + ` WHERE b.` + column + ` ILIKE $1`
	rows, err := r.db.Query(ctx, query, "%"+value+"%")
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve book by %s %s. Error: %s.", column, value, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errs.Storage(err, "Could not retrieve book by %s %s. Error: %s.", column, value, err)
	}

	for _, rec := range records {
		candidate, ok := stringValue(rec[column])
		if !ok || !strings.EqualFold(candidate, value) {
			continue
		}
		b := r.mapBook(ctx, rec)
		if b == nil {
			r.log.Warn().Interface("row", rec).Msg("skipping unmappable book row")
		}
		return b, nil
	}
	return nil, nil
}

func (r *BookPG) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	r.log.Debug().Str("title", b.Title).Msg("creating book")

	// TODO: wrap the parent insert and the join rows in one transaction.
	// A failure below leaves a book row without author links.
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO book (title, isbn, year, publisher_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		b.Title, b.ISBN, b.Year, b.Publisher.ID,
	).Scan(&id)
	if err != nil {
		return entity.Book{}, errs.Storage(err, "Could not create book %s: %s", b.Title, err)
	}

	if err := r.createBookAuthors(ctx, id, b.Authors); err != nil {
		return entity.Book{}, err
	}

	b.ID = id
	return b, nil
}

func (r *BookPG) Update(ctx context.Context, b entity.Book) (bool, error) {
	r.log.Debug().Int("id", b.ID).Msg("updating book")

	existing, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", b.ID).Msg("book does not exist, nothing to update")
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		`UPDATE book SET title = $1, isbn = $2, year = $3, publisher_id = $4 WHERE id = $5`,
		b.Title, b.ISBN, b.Year, b.Publisher.ID, b.ID,
	)
	if err != nil {
		return false, errs.Storage(err, "Could not update book by id %d. Error: %s.", b.ID, err)
	}

	// The author set is replaced wholesale: drop the old links, insert
	// the new ones. Not transactional either.
	if err := r.deleteBookAuthors(ctx, b.ID); err != nil {
		return false, err
	}
	if err := r.createBookAuthors(ctx, b.ID, b.Authors); err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookPG) Delete(ctx context.Context, id int) (bool, error) {
	r.log.Debug().Int("id", id).Msg("deleting book")

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		r.log.Debug().Int("id", id).Msg("book does not exist, nothing to delete")
		return false, nil
	}

	if err := r.deleteBookAuthors(ctx, id); err != nil {
		return false, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM book WHERE id = $1`, id); err != nil {
		return false, errs.Storage(err, "Could not delete book by id %d. Error: %s.", id, err)
	}
	return true, nil
}

// mapBook assembles a book from a joined record: the publisher columns
// are mapped first, the authors come from the join table. Author lookup
// failures are logged and produce an empty list, which in turn makes
// the book unmappable.
func (r *BookPG) mapBook(ctx context.Context, rec map[string]any) *entity.Book {
	id, ok := intValue(rec[colID])
	if !ok {
		return nil
	}
	publisher := PublisherFromRow(publisherSubRow(rec))
	authors := r.bookAuthors(ctx, id)
	return BookFromRow(rec, publisher, authors)
}

func (r *BookPG) bookAuthors(ctx context.Context, bookID int) []entity.Author {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.name
		 FROM author_books ab
		 JOIN author a ON a.id = ab.author_id
		 WHERE ab.book_id = $1
		 ORDER BY ab.id`,
		bookID,
	)
	if err != nil {
		r.log.Error().Err(err).Int("book_id", bookID).Msg("could not retrieve book authors")
		return nil
	}
	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		r.log.Error().Err(err).Int("book_id", bookID).Msg("could not retrieve book authors")
		return nil
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
	return authors
}

func (r *BookPG) createBookAuthors(ctx context.Context, bookID int, authors []entity.Author) error {
	for _, a := range authors {
		_, err := r.db.Exec(ctx,
			`INSERT INTO author_books (book_id, author_id) VALUES ($1, $2)`,
			bookID, a.ID,
		)
		if err != nil {
			return errs.Storage(err, "Could not create the relation between book id %d and author id %d: %s", bookID, a.ID, err)
		}
	}
	return nil
}

func (r *BookPG) deleteBookAuthors(ctx context.Context, bookID int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM author_books WHERE book_id = $1`, bookID); err != nil {
		return errs.Storage(err, "Could not delete book authors by book id %d. Error: %s.", bookID, err)
	}
	return nil
}
