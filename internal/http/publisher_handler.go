package http

import (
	"net/http"
	"strconv"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"
	"catalogapi/internal/usecase"

	"github.com/rs/zerolog"
)

// PublisherUseCases bundles the operations the publisher controller
// invokes.
type PublisherUseCases struct {
	ValidateName usecase.UseCase[any, string]
	RetrieveAll  usecase.UseCase[struct{}, []entity.Publisher]
	RetrieveByID usecase.UseCase[int, *entity.Publisher]
	Create       usecase.UseCase[string, entity.Publisher]
	Update       usecase.UseCase[usecase.UpdatePublisherParams, bool]
	Delete       usecase.UseCase[int, bool]
}

// NewPublisherUseCases wires the default publisher use cases over repo.
func NewPublisherUseCases(repo usecase.PublisherRepository, log zerolog.Logger) PublisherUseCases {
	return PublisherUseCases{
		ValidateName: usecase.NewValidatePublisherName(log),
		RetrieveAll:  usecase.NewRetrieveAllPublishers(repo, log),
		RetrieveByID: usecase.NewRetrievePublisherByID(repo, log),
		Create:       usecase.NewCreatePublisher(repo, log),
		Update:       usecase.NewUpdatePublisher(repo, log),
		Delete:       usecase.NewDeletePublisherByID(repo, log),
	}
}

// PublisherHandler serves /api/v1/publisher.
type PublisherHandler struct {
	uc  PublisherUseCases
	log zerolog.Logger
}

func NewPublisherHandler(uc PublisherUseCases, log zerolog.Logger) *PublisherHandler {
	return &PublisherHandler{uc: uc, log: log.With().Str("component", "PublisherHandler").Logger()}
}

func (h *PublisherHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	rest, ok := resourceRest(r.URL.Path, "publisher")
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

func (h *PublisherHandler) list(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.uc.RetrieveAll.Execute(r.Context(), struct{}{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	if len(publishers) == 0 {
		writeNotFound(w)
		return
	}
	writeJSON(w, publishers)
}

func (h *PublisherHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	publisher, err := h.uc.RetrieveByID.Execute(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if publisher == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, publisher)
}

func (h *PublisherHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable create publisher body")
		writeFailure(w, errs.Validationf("Can't parse create publisher request content."))
		return
	}
	name, err := h.uc.ValidateName.Execute(r.Context(), body["name"])
	if err != nil {
		writeFailure(w, err)
		return
	}
	if _, err := h.uc.Create.Execute(r.Context(), name); err != nil {
		writeFailure(w, err)
		return
	}
	writeConfirmation(w, "Publisher created.")
}

func (h *PublisherHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable update publisher body")
		writeFailure(w, errs.Validationf("Can't parse update publisher request content."))
		return
	}
	name, err := h.uc.ValidateName.Execute(r.Context(), body["name"])
	if err != nil {
		writeFailure(w, err)
		return
	}
	// A no-op update still confirms success.
	if _, err := h.uc.Update.Execute(r.Context(), usecase.UpdatePublisherParams{ID: id, Name: name}); err != nil {
		writeFailure(w, err)
		return
	}
	writeConfirmation(w, "Publisher updated.")
}

func (h *PublisherHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
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

var _ Handler = (*PublisherHandler)(nil)
