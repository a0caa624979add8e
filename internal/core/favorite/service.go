package favorite

import (
	"context"
	"log/slog"

	"github.com/dgcastell/musica/internal/core/song"
	"github.com/dgcastell/musica/internal/core/user"
)

// Service owns the favorite-specific invariants that span two entity types:
// both endpoints must exist, and a user may mark a given song at most once.
type Service struct {
	repo   Repository
	users  user.Repository
	songs  song.Repository
	logger *slog.Logger
}

func NewService(repo Repository, users user.Repository, songs song.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		songs:  songs,
		logger: logger,
	}
}

func (service *Service) ListFavorites(context context.Context, limit, offset int) ([]*Favorite, int, error) {
	return service.repo.ListFavorites(context, limit, offset)
}

func (service *Service) GetFavorite(context context.Context, id int) (*Favorite, error) {
	return service.repo.GetFavorite(context, id)
}

// MarkFavorite records the pairing after checking, in order, that the user
// exists, the song exists, and the pairing is new. The existence checks run
// first so the caller can tell a missing user from a missing song; the
// duplicate pre-check only buys a friendlier error, the unique constraint
// remains the arbiter under concurrency.
func (service *Service) MarkFavorite(context context.Context, userID, songID int) (*Favorite, error) {
	markedUser, err := service.users.GetUser(context, userID)
	if err != nil {
		return nil, err
	}

	markedSong, err := service.songs.GetSong(context, songID)
	if err != nil {
		return nil, err
	}

	exists, err := service.repo.PairExists(context, userID, songID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	favorite := &Favorite{IDUsuario: userID, IDCancion: songID}
	if err := service.repo.CreateFavorite(context, favorite); err != nil {
		return nil, err
	}

	favorite.Usuario = &UserSummary{ID: markedUser.ID, Nombre: markedUser.Nombre}
	favorite.Cancion = &SongSummary{ID: markedSong.ID, Titulo: markedSong.Titulo, Artista: markedSong.Artista}

	service.logger.Info("favorite_marked",
		slog.Int("user_id", userID),
		slog.Int("song_id", songID),
	)
	return favorite, nil
}

// UnmarkFavorite deletes the single pairing for (userID, songID).
func (service *Service) UnmarkFavorite(context context.Context, userID, songID int) error {
	if err := service.repo.DeletePair(context, userID, songID); err != nil {
		return err
	}

	service.logger.Info("favorite_unmarked",
		slog.Int("user_id", userID),
		slog.Int("song_id", songID),
	)
	return nil
}

func (service *Service) DeleteFavorite(context context.Context, id int) error {
	if err := service.repo.DeleteFavorite(context, id); err != nil {
		return err
	}

	service.logger.Info("favorite_deleted", slog.Int("favorite_id", id))
	return nil
}

// ListUserFavorites returns the denormalized favorite songs of a user.
// A user with zero favorites yields an empty list, not an error.
func (service *Service) ListUserFavorites(context context.Context, userID int) (*UserFavorites, error) {
	listedUser, err := service.users.GetUser(context, userID)
	if err != nil {
		return nil, err
	}

	songs, err := service.repo.ListSongsForUser(context, userID)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []SongSummary{}
	}

	return &UserFavorites{
		Usuario:            UserSummary{ID: listedUser.ID, Nombre: listedUser.Nombre},
		CancionesFavoritas: songs,
	}, nil
}
