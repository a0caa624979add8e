package favorite_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgcastell/musica/internal/core/favorite"
	"github.com/dgcastell/musica/internal/core/song"
	"github.com/dgcastell/musica/internal/core/user"
	"github.com/dgcastell/musica/internal/platform/apperr"
)

// fakeUserRepository satisfies user.Repository; only GetUser matters here.
type fakeUserRepository struct {
	users map[int]user.User
}

func (r *fakeUserRepository) ListUsers(_ context.Context, _, _ int) ([]*user.User, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepository) GetUser(_ context.Context, id int) (*user.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := stored
	return &clone, nil
}

func (r *fakeUserRepository) CorreoInUse(_ context.Context, _ string) (bool, error) { return false, nil }
func (r *fakeUserRepository) CreateUser(_ context.Context, _ *user.User) error     { return nil }
func (r *fakeUserRepository) UpdateUser(_ context.Context, _ *user.User) error     { return nil }
func (r *fakeUserRepository) DeleteUser(_ context.Context, _ int) error            { return nil }

// fakeSongRepository satisfies song.Repository; only GetSong matters here.
type fakeSongRepository struct {
	songs map[int]song.Song
}

func (r *fakeSongRepository) ListSongs(_ context.Context, _, _ int) ([]*song.Song, int, error) {
	return nil, 0, nil
}

func (r *fakeSongRepository) SearchSongs(_ context.Context, _ song.Filter) ([]*song.Song, error) {
	return nil, nil
}

func (r *fakeSongRepository) GetSong(_ context.Context, id int) (*song.Song, error) {
	stored, ok := r.songs[id]
	if !ok {
		return nil, apperr.NotFound("Song")
	}
	clone := stored
	return &clone, nil
}

func (r *fakeSongRepository) CreateSong(_ context.Context, _ *song.Song) error { return nil }
func (r *fakeSongRepository) UpdateSong(_ context.Context, _ *song.Song) error { return nil }
func (r *fakeSongRepository) DeleteSong(_ context.Context, _ int) error        { return nil }

// fakeRepository is an in-memory favorite.Repository.
type fakeRepository struct {
	favorites map[int]favorite.Favorite
	songs     *fakeSongRepository
	nextID    int
}

func (r *fakeRepository) ListFavorites(_ context.Context, limit, offset int) ([]*favorite.Favorite, int, error) {
	return nil, len(r.favorites), nil
}

func (r *fakeRepository) GetFavorite(_ context.Context, id int) (*favorite.Favorite, error) {
	stored, ok := r.favorites[id]
	if !ok {
		return nil, apperr.NotFound("Favorite")
	}
	clone := stored
	return &clone, nil
}

func (r *fakeRepository) PairExists(_ context.Context, userID, songID int) (bool, error) {
	for _, stored := range r.favorites {
		if stored.IDUsuario == userID && stored.IDCancion == songID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepository) CreateFavorite(_ context.Context, f *favorite.Favorite) error {
	if exists, _ := r.PairExists(context.Background(), f.IDUsuario, f.IDCancion); exists {
		return favorite.ErrAlreadyFavorite
	}
	f.ID = r.nextID
	f.FechaMarcado = time.Now()
	r.nextID++
	r.favorites[f.ID] = *f
	return nil
}

func (r *fakeRepository) DeleteFavorite(_ context.Context, id int) error {
	if _, ok := r.favorites[id]; !ok {
		return apperr.NotFound("Favorite")
	}
	delete(r.favorites, id)
	return nil
}

func (r *fakeRepository) DeletePair(_ context.Context, userID, songID int) error {
	for id, stored := range r.favorites {
		if stored.IDUsuario == userID && stored.IDCancion == songID {
			delete(r.favorites, id)
			return nil
		}
	}
	return apperr.NotFound("Favorite")
}

func (r *fakeRepository) ListSongsForUser(_ context.Context, userID int) ([]favorite.SongSummary, error) {
	var summaries []favorite.SongSummary
	for id := 1; id < r.nextID; id++ {
		stored, ok := r.favorites[id]
		if !ok || stored.IDUsuario != userID {
			continue
		}
		marked := r.songs.songs[stored.IDCancion]
		summaries = append(summaries, favorite.SongSummary{
			ID:      marked.ID,
			Titulo:  marked.Titulo,
			Artista: marked.Artista,
		})
	}
	return summaries, nil
}

// newTestService seeds one user (id 1) and two songs (ids 1, 2).
func newTestService() (*favorite.Service, *fakeRepository) {
	users := &fakeUserRepository{users: map[int]user.User{
		1: {ID: 1, Fields: user.Fields{Nombre: "Ana Torres", Correo: "ana@example.com"}},
	}}
	songs := &fakeSongRepository{songs: map[int]song.Song{
		1: {ID: 1, Fields: song.Fields{Titulo: "Clandestino", Artista: "Manu Chao"}},
		2: {ID: 2, Fields: song.Fields{Titulo: "Me Gustas Tú", Artista: "Manu Chao"}},
	}}
	repo := &fakeRepository{favorites: map[int]favorite.Favorite{}, songs: songs, nextID: 1}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return favorite.NewService(repo, users, songs, logger), repo
}

/*
TestService_MarkFavorite verifies the pairing is stored and the response
carries the denormalized user and song summaries.
*/
func TestService_MarkFavorite(t *testing.T) {
	service, repo := newTestService()

	marked, err := service.MarkFavorite(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, marked.IDUsuario)
	assert.Equal(t, 1, marked.IDCancion)
	assert.False(t, marked.FechaMarcado.IsZero())
	require.NotNil(t, marked.Usuario)
	assert.Equal(t, "Ana Torres", marked.Usuario.Nombre)
	require.NotNil(t, marked.Cancion)
	assert.Equal(t, "Clandestino", marked.Cancion.Titulo)
	assert.Len(t, repo.favorites, 1)
}

/*
TestService_MarkFavorite_Duplicate verifies marking the same pair twice
yields the conflict error and no second row.
*/
func TestService_MarkFavorite_Duplicate(t *testing.T) {
	service, repo := newTestService()

	_, err := service.MarkFavorite(context.Background(), 1, 1)
	require.NoError(t, err)

	_, err = service.MarkFavorite(context.Background(), 1, 1)
	assert.ErrorIs(t, err, favorite.ErrAlreadyFavorite)
	assert.Len(t, repo.favorites, 1)
}

/*
TestService_MarkFavorite_MissingEndpoints verifies a missing user or song is
reported by name and nothing is stored.
*/
func TestService_MarkFavorite_MissingEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		songID      int
		wantMessage string
	}{
		{"missing_user", 99, 1, "User not found"},
		{"missing_song", 1, 99, "Song not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			_, err := service.MarkFavorite(context.Background(), tt.userID, tt.songID)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "NOT_FOUND", ae.Code)
			assert.Equal(t, tt.wantMessage, ae.Message)
			assert.Empty(t, repo.favorites)
		})
	}
}

/*
TestService_UnmarkFavorite verifies removal by pair and the missing-pair error.
*/
func TestService_UnmarkFavorite(t *testing.T) {
	service, repo := newTestService()

	_, err := service.MarkFavorite(context.Background(), 1, 1)
	require.NoError(t, err)

	require.NoError(t, service.UnmarkFavorite(context.Background(), 1, 1))
	assert.Empty(t, repo.favorites)

	err = service.UnmarkFavorite(context.Background(), 1, 1)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Favorite not found", ae.Message)
}

/*
TestService_ListUserFavorites verifies the denormalized listing, in marking
order, and that zero favorites yields an empty list rather than an error.
*/
func TestService_ListUserFavorites(t *testing.T) {
	service, _ := newTestService()

	listing, err := service.ListUserFavorites(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", listing.Usuario.Nombre)
	assert.NotNil(t, listing.CancionesFavoritas)
	assert.Empty(t, listing.CancionesFavoritas)

	_, err = service.MarkFavorite(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = service.MarkFavorite(context.Background(), 1, 1)
	require.NoError(t, err)

	listing, err = service.ListUserFavorites(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, listing.CancionesFavoritas, 2)
	assert.Equal(t, "Me Gustas Tú", listing.CancionesFavoritas[0].Titulo)
	assert.Equal(t, "Clandestino", listing.CancionesFavoritas[1].Titulo)
}

/*
TestService_ListUserFavorites_MissingUser verifies the owner must exist.
*/
func TestService_ListUserFavorites_MissingUser(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ListUserFavorites(context.Background(), 99)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "User not found", ae.Message)
}
