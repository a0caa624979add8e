package song_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgcastell/musica/internal/core/song"
	"github.com/dgcastell/musica/internal/platform/apperr"
	"github.com/dgcastell/musica/pkg/pointer"
)

// fakeRepository is an in-memory song.Repository used to exercise the
// service layer without postgres.
type fakeRepository struct {
	songs  map[int]song.Song
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{songs: map[int]song.Song{}, nextID: 1}
}

func (r *fakeRepository) ListSongs(_ context.Context, limit, offset int) ([]*song.Song, int, error) {
	ids := make([]int, 0, len(r.songs))
	for id := range r.songs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	listed := make([]*song.Song, 0, limit)
	for i, id := range ids {
		if i < offset || len(listed) >= limit {
			continue
		}
		clone := r.songs[id]
		listed = append(listed, &clone)
	}
	return listed, len(r.songs), nil
}

func (r *fakeRepository) SearchSongs(_ context.Context, _ song.Filter) ([]*song.Song, error) {
	return nil, nil
}

func (r *fakeRepository) GetSong(_ context.Context, id int) (*song.Song, error) {
	stored, ok := r.songs[id]
	if !ok {
		return nil, apperr.NotFound("Song")
	}
	clone := stored
	return &clone, nil
}

func (r *fakeRepository) CreateSong(_ context.Context, s *song.Song) error {
	s.ID = r.nextID
	s.FechaCreacion = time.Now()
	r.nextID++
	r.songs[s.ID] = *s
	return nil
}

func (r *fakeRepository) UpdateSong(_ context.Context, s *song.Song) error {
	if _, ok := r.songs[s.ID]; !ok {
		return apperr.NotFound("Song")
	}
	r.songs[s.ID] = *s
	return nil
}

func (r *fakeRepository) DeleteSong(_ context.Context, id int) error {
	if _, ok := r.songs[id]; !ok {
		return apperr.NotFound("Song")
	}
	delete(r.songs, id)
	return nil
}

func newTestService() (*song.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return song.NewService(repo, logger), repo
}

func seedSong(t *testing.T, service *song.Service, fields song.Fields) *song.Song {
	t.Helper()
	s := &song.Song{Fields: fields}
	require.NoError(t, service.CreateSong(context.Background(), s))
	return s
}

/*
TestService_CreateSong verifies the happy path with only required fields.
*/
func TestService_CreateSong(t *testing.T) {
	service, repo := newTestService()

	created := seedSong(t, service, song.Fields{Titulo: "Clandestino", Artista: "Manu Chao"})

	assert.Equal(t, 1, created.ID)
	assert.False(t, created.FechaCreacion.IsZero())
	assert.Nil(t, created.Album)
	assert.Nil(t, created.Duracion)
	assert.Len(t, repo.songs, 1)
}

/*
TestService_CreateSong_Validation covers required fields and the numeric
bounds on duracion and año.
*/
func TestService_CreateSong_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     song.Fields
		wantField string
	}{
		{"missing_titulo", song.Fields{Artista: "Manu Chao"}, "titulo"},
		{"missing_artista", song.Fields{Titulo: "Clandestino"}, "artista"},
		{"zero_duracion", song.Fields{Titulo: "Clandestino", Artista: "Manu Chao", Duracion: pointer.To(0)}, "duracion"},
		{"negative_duracion", song.Fields{Titulo: "Clandestino", Artista: "Manu Chao", Duracion: pointer.To(-30)}, "duracion"},
		{"anio_too_small", song.Fields{Titulo: "Clandestino", Artista: "Manu Chao", Anio: pointer.To(99)}, "año"},
		{"anio_too_large", song.Fields{Titulo: "Clandestino", Artista: "Manu Chao", Anio: pointer.To(10000)}, "año"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			err := service.CreateSong(context.Background(), &song.Song{Fields: tt.input})

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.wantField, ae.Details[0].Field)
			assert.Empty(t, repo.songs)
		})
	}
}

/*
TestService_UpdateSong_SparsePatch verifies that nil patch fields keep their
stored values, including the optional pointer fields.
*/
func TestService_UpdateSong_SparsePatch(t *testing.T) {
	service, _ := newTestService()
	created := seedSong(t, service, song.Fields{
		Titulo:   "Clandestino",
		Artista:  "Manu Chao",
		Album:    pointer.To("Clandestino"),
		Duracion: pointer.To(148),
		Anio:     pointer.To(1998),
		Genero:   pointer.To("Latin"),
	})

	updated, err := service.UpdateSong(context.Background(), created.ID, &song.Patch{
		Titulo:   pointer.To("Clandestino (Remaster)"),
		Duracion: pointer.To(151),
	})
	require.NoError(t, err)

	assert.Equal(t, "Clandestino (Remaster)", updated.Titulo)
	assert.Equal(t, 151, pointer.Val(updated.Duracion))
	assert.Equal(t, "Manu Chao", updated.Artista)
	assert.Equal(t, "Clandestino", pointer.Val(updated.Album))
	assert.Equal(t, 1998, pointer.Val(updated.Anio))
	assert.Equal(t, "Latin", pointer.Val(updated.Genero))
}

/*
TestService_UpdateSong_InvalidPatch verifies a patch that breaks a rule is
rejected and the stored record is untouched.
*/
func TestService_UpdateSong_InvalidPatch(t *testing.T) {
	service, repo := newTestService()
	created := seedSong(t, service, song.Fields{Titulo: "Clandestino", Artista: "Manu Chao"})

	_, err := service.UpdateSong(context.Background(), created.ID, &song.Patch{
		Titulo: pointer.To(""),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Clandestino", repo.songs[created.ID].Titulo)
}

/*
TestService_UpdateSong_NotFound verifies the patch target must exist.
*/
func TestService_UpdateSong_NotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.UpdateSong(context.Background(), 42, &song.Patch{
		Titulo: pointer.To("Nada"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Song not found", ae.Message)
}

/*
TestService_DeleteSong verifies deletion and the missing-id error.
*/
func TestService_DeleteSong(t *testing.T) {
	service, repo := newTestService()
	created := seedSong(t, service, song.Fields{Titulo: "Clandestino", Artista: "Manu Chao"})

	require.NoError(t, service.DeleteSong(context.Background(), created.ID))
	assert.Empty(t, repo.songs)

	err := service.DeleteSong(context.Background(), created.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
