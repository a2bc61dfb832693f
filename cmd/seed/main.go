package main

import (
	"context"
	"os"

	"catalogapi/internal/config"
	"catalogapi/internal/entity"
	"catalogapi/internal/logger"
	"catalogapi/internal/store"
	"catalogapi/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type seedBook struct {
	title     string
	isbn      string
	year      int
	publisher string
	authors   []string
}

var seedPublishers = []string{"Penguin Classics", "Harper Voyager", "Tor Books", "Gollancz"}

var seedAuthors = []string{
	"Ursula K. Le Guin",
	"Frank Herbert",
	"Octavia E. Butler",
	"Stanislaw Lem",
	"Terry Pratchett",
	"Neil Gaiman",
}

var seedBooks = []seedBook{
	{"The Dispossessed", "978-0061054884", 1974, "Harper Voyager", []string{"Ursula K. Le Guin"}},
	{"Dune", "978-0441172719", 1965, "Penguin Classics", []string{"Frank Herbert"}},
	{"Kindred", "978-0807083697", 1979, "Tor Books", []string{"Octavia E. Butler"}},
	{"Solaris", "978-0156027601", 1961, "Gollancz", []string{"Stanislaw Lem"}},
	{"Good Omens", "978-0060853983", 1990, "Gollancz", []string{"Terry Pratchett", "Neil Gaiman"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create db pool")
	}
	defer pool.Close()

	authors := store.NewAuthorPG(pool, log)
	publishers := store.NewPublisherPG(pool, log)
	books := store.NewBookPG(pool, log)

	for _, name := range seedPublishers {
		seedPublisher(ctx, publishers, name, log)
	}
	for _, name := range seedAuthors {
		seedAuthor(ctx, authors, name, log)
	}
	for _, b := range seedBooks {
		seedOneBook(ctx, books, authors, publishers, b, log)
	}

	log.Info().Msg("seed complete")
}

func seedPublisher(ctx context.Context, repo usecase.PublisherRepository, name string, log zerolog.Logger) {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		log.Fatal().Err(err).Str("publisher", name).Msg("lookup failed")
	}
	if existing != nil {
		return
	}
	if _, err := repo.Create(ctx, entity.Publisher{Name: name}); err != nil {
		log.Fatal().Err(err).Str("publisher", name).Msg("create failed")
	}
	log.Info().Str("publisher", name).Msg("created")
}

func seedAuthor(ctx context.Context, repo usecase.AuthorRepository, name string, log zerolog.Logger) {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		log.Fatal().Err(err).Str("author", name).Msg("lookup failed")
	}
	if existing != nil {
		return
	}
	if _, err := repo.Create(ctx, entity.Author{Name: name}); err != nil {
		log.Fatal().Err(err).Str("author", name).Msg("create failed")
	}
	log.Info().Str("author", name).Msg("created")
}

func seedOneBook(ctx context.Context, books usecase.BookRepository, authors usecase.AuthorRepository, publishers usecase.PublisherRepository, b seedBook, log zerolog.Logger) {
	existing, err := books.GetByTitle(ctx, b.title)
	if err != nil {
		log.Fatal().Err(err).Str("book", b.title).Msg("lookup failed")
	}
	if existing != nil {
		return
	}

	publisher, err := publishers.GetByName(ctx, b.publisher)
	if err != nil || publisher == nil {
		log.Fatal().Err(err).Str("publisher", b.publisher).Msg("publisher missing")
	}

	var bookAuthors []entity.Author
	for _, name := range b.authors {
		author, err := authors.GetByName(ctx, name)
		if err != nil || author == nil {
			log.Fatal().Err(err).Str("author", name).Msg("author missing")
		}
		bookAuthors = append(bookAuthors, *author)
	}

	_, err = books.Create(ctx, entity.Book{
		Title:     b.title,
		ISBN:      b.isbn,
		Year:      b.year,
		Authors:   bookAuthors,
		Publisher: *publisher,
	})
	if err != nil {
		log.Fatal().Err(err).Str("book", b.title).Msg("create failed")
	}
	log.Info().Str("book", b.title).Msg("created")
}
