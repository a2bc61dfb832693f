package usecase_test

import (
	"context"
	"testing"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"
	"catalogapi/internal/usecase"
	"catalogapi/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookMocks(ctrl *gomock.Controller) (*mocks.MockBookRepository, *mocks.MockAuthorRepository, *mocks.MockPublisherRepository) {
	return mocks.NewMockBookRepository(ctrl), mocks.NewMockAuthorRepository(ctrl), mocks.NewMockPublisherRepository(ctrl)
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	params := usecase.CreateBookParams{
		Title:     "The Dispossessed",
		ISBN:      "978-0061054884",
		Year:      1974,
		Publisher: "Harper Voyager",
		Authors:   []string{"Ursula K. Le Guin"},
	}

	t.Run("resolves references and creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		author := entity.Author{ID: 4, Name: "Ursula K. Le Guin"}
		publisher := entity.Publisher{ID: 2, Name: "Harper Voyager"}

		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(nil, nil)
		authors.EXPECT().GetByName(ctx, "Ursula K. Le Guin").Return(&author, nil)
		publishers.EXPECT().GetByName(ctx, "Harper Voyager").Return(&publisher, nil)
		books.EXPECT().Create(ctx, entity.Book{
			Title:     params.Title,
			ISBN:      params.ISBN,
			Year:      params.Year,
			Authors:   []entity.Author{author},
			Publisher: publisher,
		}).Return(entity.Book{ID: 10, Title: params.Title, ISBN: params.ISBN, Year: params.Year, Authors: []entity.Author{author}, Publisher: publisher}, nil)

		got, err := uc.Execute(ctx, params)

		require.NoError(t, err)
		assert.Equal(t, 10, got.ID)
	})

	t.Run("duplicate title stops before the isbn check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByTitle(ctx, params.Title).Return(&entity.Book{ID: 9, Title: params.Title}, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't create book The Dispossessed. There's a book with this title already.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})

	t.Run("duplicate isbn is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(&entity.Book{ID: 9, ISBN: params.ISBN}, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't create book The Dispossessed. The given ISBN is already in use by other book.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})

	t.Run("unknown author stops before the publisher lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(nil, nil)
		authors.EXPECT().GetByName(ctx, "Ursula K. Le Guin").Return(nil, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't create book. Author Ursula K. Le Guin doesn't exist. Create it first.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindNotFoundReference))
	})

	t.Run("unknown publisher stops before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(nil, nil)
		authors.EXPECT().GetByName(ctx, "Ursula K. Le Guin").Return(&entity.Author{ID: 4, Name: "Ursula K. Le Guin"}, nil)
		publishers.EXPECT().GetByName(ctx, "Harper Voyager").Return(nil, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't create book. Publisher Harper Voyager doesn't exist. Create it first.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindNotFoundReference))
	})

	t.Run("authors resolve in request order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewCreateBook(books, authors, publishers, zerolog.Nop())

		multi := params
		multi.Authors = []string{"First Author", "Missing Author", "Third Author"}

		books.EXPECT().GetByTitle(ctx, multi.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, multi.ISBN).Return(nil, nil)
		gomock.InOrder(
			authors.EXPECT().GetByName(ctx, "First Author").Return(&entity.Author{ID: 1, Name: "First Author"}, nil),
			authors.EXPECT().GetByName(ctx, "Missing Author").Return(nil, nil),
		)

		_, err := uc.Execute(ctx, multi)

		require.Error(t, err)
		assert.Equal(t, "Can't create book. Author Missing Author doesn't exist. Create it first.", err.Error())
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	params := usecase.UpdateBookParams{
		ID:        10,
		Title:     "The Dispossessed",
		ISBN:      "978-0061054884",
		Year:      1974,
		Publisher: "Harper Voyager",
		Authors:   []string{"Ursula K. Le Guin"},
	}

	t.Run("rewrites an existing book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewUpdateBook(books, authors, publishers, zerolog.Nop())

		author := entity.Author{ID: 4, Name: "Ursula K. Le Guin"}
		publisher := entity.Publisher{ID: 2, Name: "Harper Voyager"}

		books.EXPECT().GetByID(ctx, 10).Return(&entity.Book{ID: 10, Title: "Old Title"}, nil)
		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(&entity.Book{ID: 10, ISBN: params.ISBN}, nil)
		authors.EXPECT().GetByName(ctx, "Ursula K. Le Guin").Return(&author, nil)
		publishers.EXPECT().GetByName(ctx, "Harper Voyager").Return(&publisher, nil)
		books.EXPECT().Update(ctx, entity.Book{
			ID:        10,
			Title:     params.Title,
			ISBN:      params.ISBN,
			Year:      params.Year,
			Authors:   []entity.Author{author},
			Publisher: publisher,
		}).Return(true, nil)

		ok, err := uc.Execute(ctx, params)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewUpdateBook(books, authors, publishers, zerolog.Nop())

		missing := params
		missing.ID = 999
		books.EXPECT().GetByID(ctx, 999).Return(nil, nil)

		_, err := uc.Execute(ctx, missing)

		require.Error(t, err)
		assert.Equal(t, "Can't update book id 999. There isn't a book with the given book id.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("title held by another book is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewUpdateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByID(ctx, 10).Return(&entity.Book{ID: 10, Title: "Old Title"}, nil)
		books.EXPECT().GetByTitle(ctx, params.Title).Return(&entity.Book{ID: 11, Title: params.Title}, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't update book id 10. The given book title is already in use.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})

	t.Run("isbn held by another book is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewUpdateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByID(ctx, 10).Return(&entity.Book{ID: 10, Title: "Old Title"}, nil)
		books.EXPECT().GetByTitle(ctx, params.Title).Return(&entity.Book{ID: 10, Title: params.Title}, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(&entity.Book{ID: 11, ISBN: params.ISBN}, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't update book id 10. The given book ISBN is already in use.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})

	t.Run("unknown author reference aborts before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		books, authors, publishers := newBookMocks(ctrl)
		uc := usecase.NewUpdateBook(books, authors, publishers, zerolog.Nop())

		books.EXPECT().GetByID(ctx, 10).Return(&entity.Book{ID: 10, Title: "Old Title"}, nil)
		books.EXPECT().GetByTitle(ctx, params.Title).Return(nil, nil)
		books.EXPECT().GetByISBN(ctx, params.ISBN).Return(nil, nil)
		authors.EXPECT().GetByName(ctx, "Ursula K. Le Guin").Return(nil, nil)

		_, err := uc.Execute(ctx, params)

		require.Error(t, err)
		assert.Equal(t, "Can't update book. Author Ursula K. Le Guin doesn't exist. Create it first.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindNotFoundReference))
	})
}

func TestDeleteBookByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBookRepository(ctrl)
	uc := usecase.NewDeleteBookByID(repo, zerolog.Nop())
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, 10).Return(true, nil)
	ok, err := uc.Execute(ctx, 10)
	assert.NoError(t, err)
	assert.True(t, ok)

	repo.EXPECT().Delete(ctx, 999).Return(false, nil)
	ok, err = uc.Execute(ctx, 999)
	assert.NoError(t, err)
	assert.False(t, ok)
}
