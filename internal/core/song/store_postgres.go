package song

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dgcastell/musica/internal/platform/apperr"
	"github.com/dgcastell/musica/internal/platform/database/schema"
	"github.com/dgcastell/musica/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSongs(context context.Context, limit, offset int) ([]*Song, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Cancion.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_songs")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.Cancion.ID, schema.Cancion.Titulo, schema.Cancion.Artista, schema.Cancion.Album,
		schema.Cancion.Duracion, schema.Cancion.Anio, schema.Cancion.Genero, schema.Cancion.FechaCreacion,
		schema.Cancion.Table, schema.Cancion.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_songs")
	}
	defer rows.Close()

	songs, err := scanSongs(rows)
	if err != nil {
		return nil, 0, err
	}

	return songs, total, nil
}

// SearchSongs returns every matching row, id ascending. The search endpoint
// is intentionally unpaginated, mirroring the list/search asymmetry of the
// public contract.
func (repository *PostgresRepository) SearchSongs(context context.Context, f Filter) ([]*Song, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		schema.Cancion.ID, schema.Cancion.Titulo, schema.Cancion.Artista, schema.Cancion.Album,
		schema.Cancion.Duracion, schema.Cancion.Anio, schema.Cancion.Genero, schema.Cancion.FechaCreacion,
		schema.Cancion.Table,
	)

	args := []any{}

	if f.Titulo != "" {
		query += fmt.Sprintf(" AND %s ILIKE $", schema.Cancion.Titulo) + itos(len(args)+1)
		args = append(args, "%"+f.Titulo+"%")
	}
	if f.Artista != "" {
		query += fmt.Sprintf(" AND %s ILIKE $", schema.Cancion.Artista) + itos(len(args)+1)
		args = append(args, "%"+f.Artista+"%")
	}
	if f.Genero != "" {
		query += fmt.Sprintf(" AND %s = $", schema.Cancion.Genero) + itos(len(args)+1)
		args = append(args, f.Genero)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC", schema.Cancion.ID)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_songs")
	}
	defer rows.Close()

	return scanSongs(rows)
}

func (repository *PostgresRepository) GetSong(context context.Context, id int) (*Song, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Cancion.ID, schema.Cancion.Titulo, schema.Cancion.Artista, schema.Cancion.Album,
		schema.Cancion.Duracion, schema.Cancion.Anio, schema.Cancion.Genero, schema.Cancion.FechaCreacion,
		schema.Cancion.Table, schema.Cancion.ID,
	)

	s := &Song{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Titulo, &s.Artista, &s.Album, &s.Duracion, &s.Anio, &s.Genero, &s.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Song")
		}
		return nil, dberr.Wrap(err, "get_song")
	}

	return s, nil
}

func (repository *PostgresRepository) CreateSong(context context.Context, s *Song) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s, %s
	`,
		schema.Cancion.Table, schema.Cancion.Titulo, schema.Cancion.Artista, schema.Cancion.Album,
		schema.Cancion.Duracion, schema.Cancion.Anio, schema.Cancion.Genero, schema.Cancion.FechaCreacion,
		schema.Cancion.ID, schema.Cancion.FechaCreacion,
	)

	err := repository.db.QueryRow(context, query,
		s.Titulo, s.Artista, s.Album, s.Duracion, s.Anio, s.Genero,
	).Scan(&s.ID, &s.FechaCreacion)
	return dberr.Wrap(err, "create_song")
}

func (repository *PostgresRepository) UpdateSong(context context.Context, s *Song) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Cancion.Table,
		schema.Cancion.Titulo, schema.Cancion.Artista, schema.Cancion.Album,
		schema.Cancion.Duracion, schema.Cancion.Anio, schema.Cancion.Genero,
		schema.Cancion.ID, schema.Cancion.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query,
		s.ID, s.Titulo, s.Artista, s.Album, s.Duracion, s.Anio, s.Genero,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Song")
		}
		return dberr.Wrap(err, "update_song")
	}
	return nil
}

// DeleteSong removes the song together with every favorite that references
// it, inside a single transaction so no orphaned pairing can survive.
func (repository *PostgresRepository) DeleteSong(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_song_tx")
	}
	defer transaction.Rollback(context)

	favQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Favorito.Table, schema.Favorito.IDCancion,
	)
	if _, err := transaction.Exec(context, favQuery, id); err != nil {
		return dberr.Wrap(err, "delete_song_favorites")
	}

	songQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Cancion.Table, schema.Cancion.ID,
	)
	cmd, err := transaction.Exec(context, songQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_song")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Song")
	}

	return transaction.Commit(context)
}

func scanSongs(rows pgx.Rows) ([]*Song, error) {
	var songs []*Song
	for rows.Next() {
		s := &Song{}
		if err := rows.Scan(&s.ID, &s.Titulo, &s.Artista, &s.Album, &s.Duracion, &s.Anio, &s.Genero, &s.FechaCreacion); err != nil {
			return nil, dberr.Wrap(err, "scan_song")
		}
		songs = append(songs, s)
	}
	return songs, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
