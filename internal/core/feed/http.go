package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/animura/animura/internal/platform/middleware"
	requestutil "github.com/animura/animura/internal/platform/request"
	"github.com/animura/animura/internal/platform/respond"
	"github.com/animura/animura/internal/platform/sec"
	"github.com/animura/animura/internal/platform/validate"
	"github.com/animura/animura/pkg/pagination"
)

// Handler exposes the feed surface: ingestion, browsing, tagging, and
// review flags.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the feed endpoints. Mutations
// require the tagger role; reads are open to any authenticated caller.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/posts", handler.listPosts)
	router.Get("/posts/{id}", handler.getPost)
	router.Get("/posts/{id}/hashtags", handler.getHashtags)
	router.Get("/stats/entries", handler.countByEntry)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireRole(sec.RoleTagger))

		protected.Post("/posts", handler.ingest)
		protected.Post("/posts/{id}/tag", handler.tagPost)
		protected.Post("/tag-runs", handler.runTagging)
		protected.Put("/posts/{id}/disliked", handler.setDisliked)
	})

	return router
}

func (handler *Handler) ingest(writer http.ResponseWriter, request *http.Request) {
	input := IngestInput{}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Ingest(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusCreated, post)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	posts, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	post, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

type hashtagsResponse struct {
	Hashtags string `json:"hashtags"`
}

func (handler *Handler) getHashtags(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	post, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hashtagsResponse{Hashtags: handler.service.Hashtags(post)})
}

func (handler *Handler) countByEntry(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.CountByEntry(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, counts)
}

func (handler *Handler) tagPost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	post, err := handler.service.Tag(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

type tagRunRequest struct {
	Limit int `json:"limit"`
}

func (handler *Handler) runTagging(writer http.ResponseWriter, request *http.Request) {
	payload := tagRunRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Custom("limit", payload.Limit < 1 || payload.Limit > 500, "must be between 1 and 500")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.TagPending(request.Context(), payload.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

type dislikedRequest struct {
	Disliked bool `json:"disliked"`
}

func (handler *Handler) setDisliked(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	payload := dislikedRequest{}
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.SetDisliked(request.Context(), id, payload.Disliked)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}
