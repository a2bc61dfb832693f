package http

import (
	"net/http"
	"strconv"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"
	"catalogapi/internal/usecase"

	"github.com/rs/zerolog"
)

// BookUseCases bundles the operations the book controller invokes.
type BookUseCases struct {
	ValidateTitle   usecase.UseCase[any, string]
	ValidateISBN    usecase.UseCase[any, string]
	ValidateYear    usecase.UseCase[any, int]
	ValidatePubName usecase.UseCase[any, string]
	ValidateAuthors usecase.UseCase[any, []string]
	RetrieveAll     usecase.UseCase[struct{}, []entity.Book]
	RetrieveByID    usecase.UseCase[int, *entity.Book]
	Create          usecase.UseCase[usecase.CreateBookParams, entity.Book]
	Update          usecase.UseCase[usecase.UpdateBookParams, bool]
	Delete          usecase.UseCase[int, bool]
}

// NewBookUseCases wires the default book use cases over the three
// repositories a book touches.
func NewBookUseCases(books usecase.BookRepository, authors usecase.AuthorRepository, publishers usecase.PublisherRepository, log zerolog.Logger) BookUseCases {
	return BookUseCases{
		ValidateTitle:   usecase.NewValidateBookTitle(log),
		ValidateISBN:    usecase.NewValidateBookISBN(log),
		ValidateYear:    usecase.NewValidateBookYear(log),
		ValidatePubName: usecase.NewValidatePublisherName(log),
		ValidateAuthors: usecase.NewValidateAuthorsNames(usecase.NewValidateAuthorName(log), log),
		RetrieveAll:     usecase.NewRetrieveAllBooks(books, log),
		RetrieveByID:    usecase.NewRetrieveBookByID(books, log),
		Create:          usecase.NewCreateBook(books, authors, publishers, log),
		Update:          usecase.NewUpdateBook(books, authors, publishers, log),
		Delete:          usecase.NewDeleteBookByID(books, log),
	}
}

// BookHandler serves /api/v1/book.
type BookHandler struct {
	uc  BookUseCases
	log zerolog.Logger
}

func NewBookHandler(uc BookUseCases, log zerolog.Logger) *BookHandler {
	return &BookHandler{uc: uc, log: log.With().Str("component", "BookHandler").Logger()}
}

func (h *BookHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	rest, ok := resourceRest(r.URL.Path, "book")
	if !ok {
		return false
	}
	parts := pathParts(rest)

	switch r.Method {
	case http.MethodGet:
		switch len(parts) {
		case 0:
			h.list(w, r)
			return true
		case 1:
			id, err := strconv.Atoi(parts[0])
			if err != nil {
				return false
			}
			h.get(w, r, id)
			return true
		}
	case http.MethodPost:
		if len(parts) == 0 {
			h.create(w, r)
			return true
		}
	case http.MethodPut:
		if len(parts) == 1 {
			id, err := strconv.Atoi(parts[0])
			if err != nil {
				return false
			}
			h.update(w, r, id)
			return true
		}
	case http.MethodDelete:
		if len(parts) == 1 {
			id, err := strconv.Atoi(parts[0])
			if err != nil {
				return false
			}
			h.delete(w, r, id)
			return true
		}
	}
	return false
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	books, err := h.uc.RetrieveAll.Execute(r.Context(), struct{}{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	if len(books) == 0 {
		writeNotFound(w)
		return
	}
	writeJSON(w, books)
}

func (h *BookHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	book, err := h.uc.RetrieveByID.Execute(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if book == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, book)
}

// validateFields runs the field validators in a fixed order: title,
// ISBN, year, publisher name, authors names. The first failure aborts.
func (h *BookHandler) validateFields(r *http.Request, body map[string]any) (title, isbn string, year int, publisher string, authors []string, err error) {
	ctx := r.Context()
	if title, err = h.uc.ValidateTitle.Execute(ctx, body["bookTitle"]); err != nil {
		return
	}
	if isbn, err = h.uc.ValidateISBN.Execute(ctx, body["isbn"]); err != nil {
		return
	}
	if year, err = h.uc.ValidateYear.Execute(ctx, body["year"]); err != nil {
		return
	}
	if publisher, err = h.uc.ValidatePubName.Execute(ctx, body["publisher"]); err != nil {
		return
	}
	authors, err = h.uc.ValidateAuthors.Execute(ctx, body["authors"])
	return
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable create book body")
		writeFailure(w, errs.Validationf("Can't parse create book request content."))
		return
	}
	title, isbn, year, publisher, authors, err := h.validateFields(r, body)
	if err != nil {
		writeFailure(w, err)
		return
	}
	_, err = h.uc.Create.Execute(r.Context(), usecase.CreateBookParams{
		Title:     title,
		ISBN:      isbn,
		Year:      year,
		Publisher: publisher,
		Authors:   authors,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeConfirmation(w, "Book created.")
}

func (h *BookHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable update book body")
		writeFailure(w, errs.Validationf("Can't parse update book request content."))
		return
	}
	title, isbn, year, publisher, authors, err := h.validateFields(r, body)
	if err != nil {
		writeFailure(w, err)
		return
	}
	// A no-op update still confirms success.
	_, err = h.uc.Update.Execute(r.Context(), usecase.UpdateBookParams{
		ID:        id,
		Title:     title,
		ISBN:      isbn,
		Year:      year,
		Publisher: publisher,
		Authors:   authors,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeConfirmation(w, "Book updated.")
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	deleted, err := h.uc.Delete.Execute(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if !deleted {
		writeNotFound(w)
		return
	}
	writeConfirmation(w, "")
}

var _ Handler = (*BookHandler)(nil)
