// Package usecase holds the catalog's business operations. Every
// operation is a small focused type with a single Execute method;
// uniqueness of natural keys (author/publisher name, book title and
// ISBN) is enforced here, not by the storage schema.
package usecase

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"catalogapi/internal/entity"
)

// AuthorRepository is the storage contract for authors. Lookups signal
// "not found" with a nil entity and a nil error; errors are reserved
// for failed storage calls.
type AuthorRepository interface {
	GetAll(ctx context.Context) ([]entity.Author, error)
	GetByID(ctx context.Context, id int) (*entity.Author, error)
	GetByName(ctx context.Context, name string) (*entity.Author, error)
	Create(ctx context.Context, a entity.Author) (entity.Author, error)
	Update(ctx context.Context, a entity.Author) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// PublisherRepository is the storage contract for publishers.
type PublisherRepository interface {
	GetAll(ctx context.Context) ([]entity.Publisher, error)
	GetByID(ctx context.Context, id int) (*entity.Publisher, error)
	GetByName(ctx context.Context, name string) (*entity.Publisher, error)
	Create(ctx context.Context, p entity.Publisher) (entity.Publisher, error)
	Update(ctx context.Context, p entity.Publisher) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// BookRepository is the storage contract for books, including the
// author join management performed on create/update/delete.
type BookRepository interface {
	GetAll(ctx context.Context) ([]entity.Book, error)
	GetByID(ctx context.Context, id int) (*entity.Book, error)
	GetByTitle(ctx context.Context, title string) (*entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*entity.Book, error)
	Create(ctx context.Context, b entity.Book) (entity.Book, error)
	Update(ctx context.Context, b entity.Book) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
