package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/dgcastell/musica/internal/platform/request"
	"github.com/dgcastell/musica/internal/platform/respond"
	"github.com/dgcastell/musica/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the standalone favorite collection.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFavorites)
	router.Post("/", handler.createFavorite)
	router.Get("/{id}", handler.getFavorite)
	router.Delete("/{id}", handler.deleteFavorite)
}

// RegisterUserRoutes mounts the user-scoped favorite paths. It is attached
// under the usuarios subtree by the composition root, which keeps the user
// package free of a dependency on this one.
func (handler *Handler) RegisterUserRoutes(router chi.Router) {
	router.Get("/{id}/favoritos", handler.listUserFavorites)
	router.Post("/{id}/favoritos/{id_cancion}", handler.markFavorite)
	router.Delete("/{id}/favoritos/{id_cancion}", handler.unmarkFavorite)
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	favorites, total, err := handler.service.ListFavorites(request.Context(), paginationParams.PerPage, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if favorites == nil {
		favorites = []*Favorite{}
	}

	respond.Paginated(writer, favorites, pagination.NewMeta(paginationParams.Page, paginationParams.PerPage, total))
}

func (handler *Handler) getFavorite(writer http.ResponseWriter, request *http.Request) {
	favoriteID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.GetFavorite(request.Context(), favoriteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorite)
}

func (handler *Handler) createFavorite(writer http.ResponseWriter, request *http.Request) {
	var input Input

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.MarkFavorite(request.Context(), input.IDUsuario, input.IDCancion)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, favorite)
}

func (handler *Handler) deleteFavorite(writer http.ResponseWriter, request *http.Request) {
	favoriteID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFavorite(request.Context(), favoriteID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listUserFavorites(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorites, err := handler.service.ListUserFavorites(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorites)
}

func (handler *Handler) markFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	songID, err := requestutil.IntParam(request, "id_cancion")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorite, err := handler.service.MarkFavorite(request.Context(), userID, songID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, favorite)
}

func (handler *Handler) unmarkFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	songID, err := requestutil.IntParam(request, "id_cancion")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UnmarkFavorite(request.Context(), userID, songID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
