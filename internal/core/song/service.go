package song

import (
	"context"
	"log/slog"

	"github.com/dgcastell/musica/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListSongs(context context.Context, limit, offset int) ([]*Song, int, error) {
	return service.repo.ListSongs(context, limit, offset)
}

func (service *Service) SearchSongs(context context.Context, filter Filter) ([]*Song, error) {
	return service.repo.SearchSongs(context, filter)
}

func (service *Service) GetSong(context context.Context, id int) (*Song, error) {
	return service.repo.GetSong(context, id)
}

func (service *Service) CreateSong(context context.Context, song *Song) error {
	if err := validateSong(song); err != nil {
		return err
	}

	if err := service.repo.CreateSong(context, song); err != nil {
		return err
	}

	service.logger.Info("song_created", slog.Int("song_id", song.ID), slog.String("titulo", song.Titulo))
	return nil
}

// UpdateSong applies a sparse patch: fields absent from the input keep
// their stored value.
func (service *Service) UpdateSong(context context.Context, id int, patch *Patch) (*Song, error) {
	song, err := service.repo.GetSong(context, id)
	if err != nil {
		return nil, err
	}

	if patch.Titulo != nil {
		song.Titulo = *patch.Titulo
	}
	if patch.Artista != nil {
		song.Artista = *patch.Artista
	}
	if patch.Album != nil {
		song.Album = patch.Album
	}
	if patch.Duracion != nil {
		song.Duracion = patch.Duracion
	}
	if patch.Anio != nil {
		song.Anio = patch.Anio
	}
	if patch.Genero != nil {
		song.Genero = patch.Genero
	}

	if err := validateSong(song); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateSong(context, song); err != nil {
		return nil, err
	}

	service.logger.Info("song_updated", slog.Int("song_id", song.ID))
	return song, nil
}

func (service *Service) DeleteSong(context context.Context, id int) error {
	if err := service.repo.DeleteSong(context, id); err != nil {
		return err
	}

	service.logger.Warn("song_deleted", slog.Int("song_id", id))
	return nil
}

func validateSong(song *Song) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitulo, song.Titulo).MaxLen(FieldTitulo, song.Titulo, 300)
	validator.Required(FieldArtista, song.Artista).MaxLen(FieldArtista, song.Artista, 300)

	if song.Duracion != nil {
		validator.Positive(FieldDuracion, *song.Duracion)
	}
	if song.Anio != nil {
		validator.Range(FieldAnio, *song.Anio, 1000, 9999)
	}

	return validator.Err()
}
