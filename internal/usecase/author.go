package usecase

import (
	"context"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"

	"github.com/rs/zerolog"
)

// RetrieveAllAuthors returns every author in the catalog.
type RetrieveAllAuthors struct {
	repo AuthorRepository
	log  zerolog.Logger
}

func NewRetrieveAllAuthors(repo AuthorRepository, log zerolog.Logger) *RetrieveAllAuthors {
	return &RetrieveAllAuthors{repo: repo, log: log.With().Str("component", "RetrieveAllAuthors").Logger()}
}

func (uc *RetrieveAllAuthors) Execute(ctx context.Context, _ struct{}) ([]entity.Author, error) {
	uc.log.Debug().Msg("retrieving all authors")
	return uc.repo.GetAll(ctx)
}

// RetrieveAuthorByID returns one author, or nil when the id is unknown.
type RetrieveAuthorByID struct {
	repo AuthorRepository
	log  zerolog.Logger
}

func NewRetrieveAuthorByID(repo AuthorRepository, log zerolog.Logger) *RetrieveAuthorByID {
	return &RetrieveAuthorByID{repo: repo, log: log.With().Str("component", "RetrieveAuthorByID").Logger()}
}

func (uc *RetrieveAuthorByID) Execute(ctx context.Context, id int) (*entity.Author, error) {
	uc.log.Debug().Int("id", id).Msg("retrieving author")
	return uc.repo.GetByID(ctx, id)
}

// CreateAuthor persists a new author after checking the name is not
// already taken (case-insensitive).
type CreateAuthor struct {
	repo AuthorRepository
	log  zerolog.Logger
}

func NewCreateAuthor(repo AuthorRepository, log zerolog.Logger) *CreateAuthor {
	return &CreateAuthor{repo: repo, log: log.With().Str("component", "CreateAuthor").Logger()}
}

func (uc *CreateAuthor) Execute(ctx context.Context, name string) (entity.Author, error) {
	uc.log.Debug().Str("name", name).Msg("creating author")

	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return entity.Author{}, err
	}
	if existing != nil {
		uc.log.Error().Str("name", name).Msg("author name already in use")
		return entity.Author{}, errs.Conflictf("Can't create author %s. There's an author with this name already.", name)
	}

	// The zero ID marks the author as unassigned; storage fills it in.
	return uc.repo.Create(ctx, entity.Author{Name: name})
}

// UpdateAuthorParams carries the target id and the new field values.
type UpdateAuthorParams struct {
	ID   int
	Name string
}

// UpdateAuthor renames an existing author, re-checking name uniqueness
// against other records.
type UpdateAuthor struct {
	repo AuthorRepository
	log  zerolog.Logger
}

func NewUpdateAuthor(repo AuthorRepository, log zerolog.Logger) *UpdateAuthor {
	return &UpdateAuthor{repo: repo, log: log.With().Str("component", "UpdateAuthor").Logger()}
}

func (uc *UpdateAuthor) Execute(ctx context.Context, params UpdateAuthorParams) (bool, error) {
	uc.log.Debug().Int("id", params.ID).Msg("updating author")

	existing, err := uc.repo.GetByID(ctx, params.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		uc.log.Error().Int("id", params.ID).Msg("author not found")
		return false, errs.NotFoundf("Can't update author id %d. There isn't an author with the given author id.", params.ID)
	}

	duplicate, err := uc.repo.GetByName(ctx, params.Name)
	if err != nil {
		return false, err
	}
	if duplicate != nil && duplicate.ID != existing.ID {
		uc.log.Error().Int("id", params.ID).Str("name", params.Name).Msg("author name already in use")
		return false, errs.Conflictf("Can't update author id %d. The given author name is already in use.", params.ID)
	}

	return uc.repo.Update(ctx, entity.Author{ID: existing.ID, Name: params.Name})
}

// DeleteAuthorByID removes an author. A missing id is a false return,
// not an error.
type DeleteAuthorByID struct {
	repo AuthorRepository
	log  zerolog.Logger
}

func NewDeleteAuthorByID(repo AuthorRepository, log zerolog.Logger) *DeleteAuthorByID {
	return &DeleteAuthorByID{repo: repo, log: log.With().Str("component", "DeleteAuthorByID").Logger()}
}

func (uc *DeleteAuthorByID) Execute(ctx context.Context, id int) (bool, error) {
	uc.log.Debug().Int("id", id).Msg("deleting author")
	return uc.repo.Delete(ctx, id)
}

var (
	_ UseCase[struct{}, []entity.Author] = (*RetrieveAllAuthors)(nil)
	_ UseCase[int, *entity.Author]       = (*RetrieveAuthorByID)(nil)
	_ UseCase[string, entity.Author]     = (*CreateAuthor)(nil)
	_ UseCase[UpdateAuthorParams, bool]  = (*UpdateAuthor)(nil)
	_ UseCase[int, bool]                 = (*DeleteAuthorByID)(nil)
)
