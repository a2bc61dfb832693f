package http

import (
	"net/http"
	"strconv"

	"catalogapi/internal/entity"
	"catalogapi/internal/errs"
	"catalogapi/internal/usecase"

	"github.com/rs/zerolog"
)

// AuthorUseCases bundles the operations the author controller invokes.
type AuthorUseCases struct {
	ValidateName usecase.UseCase[any, string]
	RetrieveAll  usecase.UseCase[struct{}, []entity.Author]
	RetrieveByID usecase.UseCase[int, *entity.Author]
	Create       usecase.UseCase[string, entity.Author]
	Update       usecase.UseCase[usecase.UpdateAuthorParams, bool]
	Delete       usecase.UseCase[int, bool]
}

// NewAuthorUseCases wires the default author use cases over repo.
func NewAuthorUseCases(repo usecase.AuthorRepository, log zerolog.Logger) AuthorUseCases {
	return AuthorUseCases{
		ValidateName: usecase.NewValidateAuthorName(log),
		RetrieveAll:  usecase.NewRetrieveAllAuthors(repo, log),
		RetrieveByID: usecase.NewRetrieveAuthorByID(repo, log),
		Create:       usecase.NewCreateAuthor(repo, log),
		Update:       usecase.NewUpdateAuthor(repo, log),
		Delete:       usecase.NewDeleteAuthorByID(repo, log),
	}
}

// AuthorHandler serves /api/v1/author.
type AuthorHandler struct {
	uc  AuthorUseCases
	log zerolog.Logger
}

func NewAuthorHandler(uc AuthorUseCases, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{uc: uc, log: log.With().Str("component", "AuthorHandler").Logger()}
}

func (h *AuthorHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	rest, ok := resourceRest(r.URL.Path, "author")
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

func (h *AuthorHandler) list(w http.ResponseWriter, r *http.Request) {
	authors, err := h.uc.RetrieveAll.Execute(r.Context(), struct{}{})
	if err != nil {
		writeFailure(w, err)
		return
	}
	if len(authors) == 0 {
		writeNotFound(w)
		return
	}
	writeJSON(w, authors)
}

func (h *AuthorHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	author, err := h.uc.RetrieveByID.Execute(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if author == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, author)
}

func (h *AuthorHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable create author body")
		writeFailure(w, errs.Validationf("Can't parse create author request content."))
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
	writeConfirmation(w, "Author created.")
}

func (h *AuthorHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	body, err := decodeBody(r)
	if err != nil {
		h.log.Error().Err(err).Msg("unparseable update author body")
		writeFailure(w, errs.Validationf("Can't parse update author request content."))
		return
	}
	name, err := h.uc.ValidateName.Execute(r.Context(), body["name"])
	if err != nil {
		writeFailure(w, err)
		return
	}
	// A no-op update still confirms success.
	if _, err := h.uc.Update.Execute(r.Context(), usecase.UpdateAuthorParams{ID: id, Name: name}); err != nil {
		writeFailure(w, err)
		return
	}
	writeConfirmation(w, "Author updated.")
}

func (h *AuthorHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
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

var _ Handler = (*AuthorHandler)(nil)
