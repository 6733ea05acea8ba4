package resolver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/animura/animura/internal/platform/request"
	"github.com/animura/animura/internal/platform/respond"
	"github.com/animura/animura/internal/platform/validate"
)

// Handler exposes tag resolution over HTTP. The engine itself stays
// transport-free; this is a thin shell around [Service].
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the resolution endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/resolve", handler.resolve)

	return router
}

type resolveRequest struct {
	Caption string `json:"caption"`
}

func (handler *Handler) resolve(writer http.ResponseWriter, request *http.Request) {
	payload := resolveRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("caption", payload.Caption).MaxLen("caption", payload.Caption, 2048)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tags, err := handler.service.ResolveCaption(request.Context(), payload.Caption)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}
