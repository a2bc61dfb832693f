package usecase_test

import (
	"context"
	"errors"
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

func TestRetrieveAllAuthors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewRetrieveAllAuthors(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("returns repository slice", func(t *testing.T) {
		want := []entity.Author{{ID: 1, Name: "Jane Doe"}, {ID: 2, Name: "John Roe"}}
		repo.EXPECT().GetAll(ctx).Return(want, nil)

		got, err := uc.Execute(ctx, struct{}{})

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates storage error", func(t *testing.T) {
		repo.EXPECT().GetAll(ctx).Return(nil, errs.Storage(errors.New("down"), "Could not retrieve authors."))

		_, err := uc.Execute(ctx, struct{}{})

		assert.True(t, errs.IsKind(err, errs.KindStorage))
	})
}

func TestRetrieveAuthorByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewRetrieveAuthorByID(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 7).Return(&entity.Author{ID: 7, Name: "Jane Doe"}, nil)

		got, err := uc.Execute(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 7, got.ID)
	})

	t.Run("unknown id yields nil without error", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 999).Return(nil, nil)

		got, err := uc.Execute(ctx, 999)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCreateAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewCreateAuthor(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("creates when name is free", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "Jane Doe").Return(nil, nil)
		repo.EXPECT().Create(ctx, entity.Author{Name: "Jane Doe"}).Return(entity.Author{ID: 3, Name: "Jane Doe"}, nil)

		got, err := uc.Execute(ctx, "Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, 3, got.ID)
	})

	t.Run("name taken means conflict and no write", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "Jane Doe").Return(&entity.Author{ID: 3, Name: "jane doe"}, nil)

		_, err := uc.Execute(ctx, "Jane Doe")

		require.Error(t, err)
		assert.Equal(t, "Can't create author Jane Doe. There's an author with this name already.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})

	t.Run("lookup error aborts", func(t *testing.T) {
		repo.EXPECT().GetByName(ctx, "Jane Doe").Return(nil, errs.Storage(errors.New("down"), "Could not retrieve author by name Jane Doe."))

		_, err := uc.Execute(ctx, "Jane Doe")

		assert.True(t, errs.IsKind(err, errs.KindStorage))
	})
}

func TestUpdateAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewUpdateAuthor(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("renames an existing author", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 5).Return(&entity.Author{ID: 5, Name: "Old Name"}, nil)
		repo.EXPECT().GetByName(ctx, "New Name").Return(nil, nil)
		repo.EXPECT().Update(ctx, entity.Author{ID: 5, Name: "New Name"}).Return(true, nil)

		ok, err := uc.Execute(ctx, usecase.UpdateAuthorParams{ID: 5, Name: "New Name"})

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keeping the same name is allowed", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 5).Return(&entity.Author{ID: 5, Name: "Same Name"}, nil)
		repo.EXPECT().GetByName(ctx, "Same Name").Return(&entity.Author{ID: 5, Name: "Same Name"}, nil)
		repo.EXPECT().Update(ctx, entity.Author{ID: 5, Name: "Same Name"}).Return(true, nil)

		ok, err := uc.Execute(ctx, usecase.UpdateAuthorParams{ID: 5, Name: "Same Name"})

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 999).Return(nil, nil)

		_, err := uc.Execute(ctx, usecase.UpdateAuthorParams{ID: 999, Name: "New Name"})

		require.Error(t, err)
		assert.Equal(t, "Can't update author id 999. There isn't an author with the given author id.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindNotFound))
	})

	t.Run("name held by another author is a conflict", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, 5).Return(&entity.Author{ID: 5, Name: "Old Name"}, nil)
		repo.EXPECT().GetByName(ctx, "Taken Name").Return(&entity.Author{ID: 6, Name: "Taken Name"}, nil)

		_, err := uc.Execute(ctx, usecase.UpdateAuthorParams{ID: 5, Name: "Taken Name"})

		require.Error(t, err)
		assert.Equal(t, "Can't update author id 5. The given author name is already in use.", err.Error())
		assert.True(t, errs.IsKind(err, errs.KindConflict))
	})
}

func TestDeleteAuthorByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuthorRepository(ctrl)
	uc := usecase.NewDeleteAuthorByID(repo, zerolog.Nop())
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().Delete(ctx, 5).Return(true, nil)

		ok, err := uc.Execute(ctx, 5)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing id reports false", func(t *testing.T) {
		repo.EXPECT().Delete(ctx, 999).Return(false, nil)

		ok, err := uc.Execute(ctx, 999)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
