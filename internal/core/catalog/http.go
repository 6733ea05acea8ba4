package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animura/animura/internal/platform/middleware"
	"github.com/animura/animura/internal/platform/respond"
	"github.com/animura/animura/internal/platform/sec"
)

// Handler exposes the reference catalog's admin surface: snapshot stats
// and the refresh trigger.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stats", handler.getStats)
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/refresh", handler.refresh)

	return router
}

func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.service.Current()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snapshot.Stats())
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.service.Refresh(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snapshot.Stats())
}
