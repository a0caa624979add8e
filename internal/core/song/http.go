package song

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listSongs)
	router.Post("/", handler.createSong)
	router.Get("/buscar", handler.searchSongs)
	router.Get("/{id}", handler.getSong)
	router.Put("/{id}", handler.updateSong)
	router.Delete("/{id}", handler.deleteSong)
}

func (handler *Handler) listSongs(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	songs, total, err := handler.service.ListSongs(request.Context(), paginationParams.PerPage, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if songs == nil {
		songs = []*Song{}
	}

	respond.Paginated(writer, songs, pagination.NewMeta(paginationParams.Page, paginationParams.PerPage, total))
}

func (handler *Handler) searchSongs(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Titulo:  request.URL.Query().Get("titulo"),
		Artista: request.URL.Query().Get("artista"),
		Genero:  request.URL.Query().Get("genero"),
	}

	songs, err := handler.service.SearchSongs(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if songs == nil {
		songs = []*Song{}
	}

	respond.OK(writer, songs)
}

func (handler *Handler) getSong(writer http.ResponseWriter, request *http.Request) {
	songID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	song, err := handler.service.GetSong(request.Context(), songID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

func (handler *Handler) createSong(writer http.ResponseWriter, request *http.Request) {
	var input Song

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSong(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSong(writer http.ResponseWriter, request *http.Request) {
	songID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	song, err := handler.service.UpdateSong(request.Context(), songID, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, song)
}

func (handler *Handler) deleteSong(writer http.ResponseWriter, request *http.Request) {
	songID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSong(request.Context(), songID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
