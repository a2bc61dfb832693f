package usecase

import (
	"context"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"

	"github.com/rs/zerolog"
)

// RetrieveAllPublishers returns every publisher in the catalog.
type RetrieveAllPublishers struct {
	repo PublisherRepository
	log  zerolog.Logger
}

func NewRetrieveAllPublishers(repo PublisherRepository, log zerolog.Logger) *RetrieveAllPublishers {
	return &RetrieveAllPublishers{repo: repo, log: log.With().Str("component", "RetrieveAllPublishers").Logger()}
}

func (uc *RetrieveAllPublishers) Execute(ctx context.Context, _ struct{}) ([]entity.Publisher, error) {
	uc.log.Debug().Msg("retrieving all publishers")
	return uc.repo.GetAll(ctx)
}

// RetrievePublisherByID returns one publisher, or nil when the id is
// unknown.
type RetrievePublisherByID struct {
	repo PublisherRepository
	log  zerolog.Logger
}

func NewRetrievePublisherByID(repo PublisherRepository, log zerolog.Logger) *RetrievePublisherByID {
	return &RetrievePublisherByID{repo: repo, log: log.With().Str("component", "RetrievePublisherByID").Logger()}
}

func (uc *RetrievePublisherByID) Execute(ctx context.Context, id int) (*entity.Publisher, error) {
	uc.log.Debug().Int("id", id).Msg("retrieving publisher")
	return uc.repo.GetByID(ctx, id)
}

// CreatePublisher persists a new publisher after checking the name is
// not already taken (case-insensitive).
type CreatePublisher struct {
	repo PublisherRepository
	log  zerolog.Logger
}

func NewCreatePublisher(repo PublisherRepository, log zerolog.Logger) *CreatePublisher {
	return &CreatePublisher{repo: repo, log: log.With().Str("component", "CreatePublisher").Logger()}
}

func (uc *CreatePublisher) Execute(ctx context.Context, name string) (entity.Publisher, error) {
	uc.log.Debug().Str("name", name).Msg("creating publisher")

	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return entity.Publisher{}, err
	}
	if existing != nil {
		uc.log.Error().Str("name", name).Msg("publisher name already in use")
		return entity.Publisher{}, errs.Conflictf("Can't create publisher %s. There's a publisher with this name already.", name)
	}

	return uc.repo.Create(ctx, entity.Publisher{Name: name})
}

// UpdatePublisherParams carries the target id and the new field values.
type UpdatePublisherParams struct {
	ID   int
	Name string
}

// UpdatePublisher renames an existing publisher, re-checking name
// uniqueness against other records.
type UpdatePublisher struct {
	repo PublisherRepository
	log  zerolog.Logger
}

func NewUpdatePublisher(repo PublisherRepository, log zerolog.Logger) *UpdatePublisher {
	return &UpdatePublisher{repo: repo, log: log.With().Str("component", "UpdatePublisher").Logger()}
}

func (uc *UpdatePublisher) Execute(ctx context.Context, params UpdatePublisherParams) (bool, error) {
	uc.log.Debug().Int("id", params.ID).Msg("updating publisher")

	existing, err := uc.repo.GetByID(ctx, params.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		uc.log.Error().Int("id", params.ID).Msg("publisher not found")
		return false, errs.NotFoundf("Can't update publisher id %d. There isn't a publisher with the given publisher id.", params.ID)
	}

	duplicate, err := uc.repo.GetByName(ctx, params.Name)
	if err != nil {
		return false, err
	}
	if duplicate != nil && duplicate.ID != existing.ID {
		uc.log.Error().Int("id", params.ID).Str("name", params.Name).Msg("publisher name already in use")
		return false, errs.Conflictf("Can't update publisher id %d. The given publisher name is already in use.", params.ID)
	}

	return uc.repo.Update(ctx, entity.Publisher{ID: existing.ID, Name: params.Name})
}

// DeletePublisherByID removes a publisher. A missing id is a false
// return, not an error.
type DeletePublisherByID struct {
	repo PublisherRepository
	log  zerolog.Logger
}

func NewDeletePublisherByID(repo PublisherRepository, log zerolog.Logger) *DeletePublisherByID {
	return &DeletePublisherByID{repo: repo, log: log.With().Str("component", "DeletePublisherByID").Logger()}
}

func (uc *DeletePublisherByID) Execute(ctx context.Context, id int) (bool, error) {
	uc.log.Debug().Int("id", id).Msg("deleting publisher")
	return uc.repo.Delete(ctx, id)
}

var (
	_ UseCase[struct{}, []entity.Publisher] = (*RetrieveAllPublishers)(nil)
	_ UseCase[int, *entity.Publisher]       = (*RetrievePublisherByID)(nil)
	_ UseCase[string, entity.Publisher]     = (*CreatePublisher)(nil)
	_ UseCase[UpdatePublisherParams, bool]  = (*UpdatePublisher)(nil)
	_ UseCase[int, bool]                    = (*DeletePublisherByID)(nil)
)
