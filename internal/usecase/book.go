package usecase

import (
	"context"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"

	"github.com/rs/zerolog"
)

// RetrieveAllBooks returns every book in the catalog.
type RetrieveAllBooks struct {
	repo BookRepository
	log  zerolog.Logger
}

func NewRetrieveAllBooks(repo BookRepository, log zerolog.Logger) *RetrieveAllBooks {
	return &RetrieveAllBooks{repo: repo, log: log.With().Str("component", "RetrieveAllBooks").Logger()}
}

func (uc *RetrieveAllBooks) Execute(ctx context.Context, _ struct{}) ([]entity.Book, error) {
	uc.log.Debug().Msg("retrieving all books")
	return uc.repo.GetAll(ctx)
}

// RetrieveBookByID returns one book, or nil when the id is unknown.
type RetrieveBookByID struct {
	repo BookRepository
	log  zerolog.Logger
}

func NewRetrieveBookByID(repo BookRepository, log zerolog.Logger) *RetrieveBookByID {
	return &RetrieveBookByID{repo: repo, log: log.With().Str("component", "RetrieveBookByID").Logger()}
}

func (uc *RetrieveBookByID) Execute(ctx context.Context, id int) (*entity.Book, error) {
	uc.log.Debug().Int("id", id).Msg("retrieving book")
	return uc.repo.GetByID(ctx, id)
}

// CreateBookParams carries the validated fields of a new book. Authors
// and publisher are referenced by name and must already exist.
type CreateBookParams struct {
	Title     string
	ISBN      string
	Year      int
	Publisher string
	Authors   []string
}

// CreateBook persists a new book. Title and ISBN must both be unused
// (case-insensitive) and every referenced author and the publisher must
// resolve to existing records.
type CreateBook struct {
	books      BookRepository
	authors    AuthorRepository
	publishers PublisherRepository
	log        zerolog.Logger
}

func NewCreateBook(books BookRepository, authors AuthorRepository, publishers PublisherRepository, log zerolog.Logger) *CreateBook {
	return &CreateBook{
		books:      books,
		authors:    authors,
		publishers: publishers,
		log:        log.With().Str("component", "CreateBook").Logger(),
	}
}

func (uc *CreateBook) Execute(ctx context.Context, params CreateBookParams) (entity.Book, error) {
	uc.log.Debug().Str("title", params.Title).Msg("creating book")

	sameTitle, err := uc.books.GetByTitle(ctx, params.Title)
	if err != nil {
		return entity.Book{}, err
	}
	if sameTitle != nil {
		uc.log.Error().Str("title", params.Title).Msg("book title already in use")
		return entity.Book{}, errs.Conflictf("Can't create book %s. There's a book with this title already.", params.Title)
	}

	sameISBN, err := uc.books.GetByISBN(ctx, params.ISBN)
	if err != nil {
		return entity.Book{}, err
	}
	if sameISBN != nil {
		uc.log.Error().Str("isbn", params.ISBN).Msg("book isbn already in use")
		return entity.Book{}, errs.Conflictf("Can't create book %s. The given ISBN is already in use by other book.", params.Title)
	}

	authors, err := resolveAuthors(ctx, uc.authors, uc.log, params.Authors, "create")
	if err != nil {
		return entity.Book{}, err
	}
	publisher, err := resolvePublisher(ctx, uc.publishers, uc.log, params.Publisher, "create")
	if err != nil {
		return entity.Book{}, err
	}

	// The zero ID marks the book as unassigned; storage fills it in.
	return uc.books.Create(ctx, entity.Book{
		Title:     params.Title,
		ISBN:      params.ISBN,
		Year:      params.Year,
		Authors:   authors,
		Publisher: *publisher,
	})
}

// UpdateBookParams carries the target id and the new field values.
type UpdateBookParams struct {
	ID        int
	Title     string
	ISBN      string
	Year      int
	Publisher string
	Authors   []string
}

// UpdateBook rewrites an existing book, re-checking title and ISBN
// uniqueness against other records and re-resolving the author and
// publisher references.
type UpdateBook struct {
	books      BookRepository
	authors    AuthorRepository
	publishers PublisherRepository
	log        zerolog.Logger
}

func NewUpdateBook(books BookRepository, authors AuthorRepository, publishers PublisherRepository, log zerolog.Logger) *UpdateBook {
	return &UpdateBook{
		books:      books,
		authors:    authors,
		publishers: publishers,
		log:        log.With().Str("component", "UpdateBook").Logger(),
	}
}

func (uc *UpdateBook) Execute(ctx context.Context, params UpdateBookParams) (bool, error) {
	uc.log.Debug().Int("id", params.ID).Msg("updating book")

	existing, err := uc.books.GetByID(ctx, params.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		uc.log.Error().Int("id", params.ID).Msg("book not found")
		return false, errs.NotFoundf("Can't update book id %d. There isn't a book with the given book id.", params.ID)
	}

	sameTitle, err := uc.books.GetByTitle(ctx, params.Title)
	if err != nil {
		return false, err
	}
	if sameTitle != nil && sameTitle.ID != existing.ID {
		uc.log.Error().Int("id", params.ID).Str("title", params.Title).Msg("book title already in use")
		return false, errs.Conflictf("Can't update book id %d. The given book title is already in use.", params.ID)
	}

	sameISBN, err := uc.books.GetByISBN(ctx, params.ISBN)
	if err != nil {
		return false, err
	}
	if sameISBN != nil && sameISBN.ID != existing.ID {
		uc.log.Error().Int("id", params.ID).Str("isbn", params.ISBN).Msg("book isbn already in use")
		return false, errs.Conflictf("Can't update book id %d. The given book ISBN is already in use.", params.ID)
	}

	authors, err := resolveAuthors(ctx, uc.authors, uc.log, params.Authors, "update")
	if err != nil {
		return false, err
	}
	publisher, err := resolvePublisher(ctx, uc.publishers, uc.log, params.Publisher, "update")
	if err != nil {
		return false, err
	}

	return uc.books.Update(ctx, entity.Book{
		ID:        existing.ID,
		Title:     params.Title,
		ISBN:      params.ISBN,
		Year:      params.Year,
		Authors:   authors,
		Publisher: *publisher,
	})
}

// DeleteBookByID removes a book and its author links. A missing id is a
// false return, not an error.
type DeleteBookByID struct {
	repo BookRepository
	log  zerolog.Logger
}

func NewDeleteBookByID(repo BookRepository, log zerolog.Logger) *DeleteBookByID {
	return &DeleteBookByID{repo: repo, log: log.With().Str("component", "DeleteBookByID").Logger()}
}

func (uc *DeleteBookByID) Execute(ctx context.Context, id int) (bool, error) {
	uc.log.Debug().Int("id", id).Msg("deleting book")
	return uc.repo.Delete(ctx, id)
}

// resolveAuthors walks the names in request order and fails on the
// first one that does not resolve to an existing author.
func resolveAuthors(ctx context.Context, repo AuthorRepository, log zerolog.Logger, names []string, verb string) ([]entity.Author, error) {
	authors := make([]entity.Author, 0, len(names))
	for _, name := range names {
		author, err := repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if author == nil {
			log.Error().Str("author", name).Msg("referenced author does not exist")
			return nil, errs.NotFoundReferencef("Can't %s book. Author %s doesn't exist. Create it first.", verb, name)
		}
		authors = append(authors, *author)
	}
	return authors, nil
}

func resolvePublisher(ctx context.Context, repo PublisherRepository, log zerolog.Logger, name, verb string) (*entity.Publisher, error) {
	publisher, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		log.Error().Str("publisher", name).Msg("referenced publisher does not exist")
		return nil, errs.NotFoundReferencef("Can't %s book. Publisher %s doesn't exist. Create it first.", verb, name)
	}
	return publisher, nil
}

var (
	_ UseCase[struct{}, []entity.Book]       = (*RetrieveAllBooks)(nil)
	_ UseCase[int, *entity.Book]             = (*RetrieveBookByID)(nil)
	_ UseCase[CreateBookParams, entity.Book] = (*CreateBook)(nil)
	_ UseCase[UpdateBookParams, bool]        = (*UpdateBook)(nil)
	_ UseCase[int, bool]                     = (*DeleteBookByID)(nil)
)
