package favorite

import (
	"context"
	"errors"
	"fmt"

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

// joinedSelect is the favorite row joined with both endpoint summaries.
// Read paths always resolve the projections in one round-trip.
func joinedSelect() string {
	return fmt.Sprintf(`
		SELECT f.%s, f.%s, f.%s, f.%s,
		       u.%s, u.%s,
		       c.%s, c.%s, c.%s
		FROM %s f
		JOIN %s u ON u.%s = f.%s
		JOIN %s c ON c.%s = f.%s
	`,
		schema.Favorito.ID, schema.Favorito.IDUsuario, schema.Favorito.IDCancion, schema.Favorito.FechaMarcado,
		schema.Usuario.ID, schema.Usuario.Nombre,
		schema.Cancion.ID, schema.Cancion.Titulo, schema.Cancion.Artista,
		schema.Favorito.Table,
		schema.Usuario.Table, schema.Usuario.ID, schema.Favorito.IDUsuario,
		schema.Cancion.Table, schema.Cancion.ID, schema.Favorito.IDCancion,
	)
}

func scanJoined(row pgx.Row) (*Favorite, error) {
	f := &Favorite{Usuario: &UserSummary{}, Cancion: &SongSummary{}}
	err := row.Scan(
		&f.ID, &f.IDUsuario, &f.IDCancion, &f.FechaMarcado,
		&f.Usuario.ID, &f.Usuario.Nombre,
		&f.Cancion.ID, &f.Cancion.Titulo, &f.Cancion.Artista,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (repository *PostgresRepository) ListFavorites(context context.Context, limit, offset int) ([]*Favorite, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Favorito.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_favorites")
	}

	query := joinedSelect() + fmt.Sprintf(" ORDER BY f.%s ASC LIMIT $1 OFFSET $2", schema.Favorito.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	var favorites []*Favorite
	for rows.Next() {
		f, err := scanJoined(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_favorite")
		}
		favorites = append(favorites, f)
	}

	return favorites, total, nil
}

func (repository *PostgresRepository) GetFavorite(context context.Context, id int) (*Favorite, error) {
	query := joinedSelect() + fmt.Sprintf(" WHERE f.%s = $1", schema.Favorito.ID)

	f, err := scanJoined(repository.db.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Favorite")
		}
		return nil, dberr.Wrap(err, "get_favorite")
	}

	return f, nil
}

func (repository *PostgresRepository) PairExists(context context.Context, userID, songID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.Favorito.Table, schema.Favorito.IDUsuario, schema.Favorito.IDCancion,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, userID, songID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "favorite_pair_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateFavorite(context context.Context, f *Favorite) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		RETURNING %s, %s
	`,
		schema.Favorito.Table, schema.Favorito.IDUsuario, schema.Favorito.IDCancion, schema.Favorito.FechaMarcado,
		schema.Favorito.ID, schema.Favorito.FechaMarcado,
	)

	err := repository.db.QueryRow(context, query, f.IDUsuario, f.IDCancion).Scan(&f.ID, &f.FechaMarcado)
	if err != nil {
		// The pre-check can lose a race; the constraint decides, and a lost
		// race reports the same duplicate error as the pre-check.
		if dberr.IsUniqueViolation(err, schema.UniquePair) {
			return ErrAlreadyFavorite
		}
		// An endpoint deleted between the existence check and the insert
		// trips the foreign key instead.
		if dberr.IsForeignKeyViolation(err) {
			return apperr.NotFound("User or Song")
		}
		return dberr.Wrap(err, "create_favorite")
	}
	return nil
}

func (repository *PostgresRepository) DeleteFavorite(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Favorito.Table, schema.Favorito.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_favorite")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Favorite")
	}
	return nil
}

func (repository *PostgresRepository) DeletePair(context context.Context, userID, songID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Favorito.Table, schema.Favorito.IDUsuario, schema.Favorito.IDCancion,
	)

	cmd, err := repository.db.Exec(context, query, userID, songID)
	if err != nil {
		return dberr.Wrap(err, "delete_favorite_pair")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Favorite")
	}
	return nil
}

func (repository *PostgresRepository) ListSongsForUser(context context.Context, userID int) ([]SongSummary, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s
		FROM %s f
		JOIN %s c ON c.%s = f.%s
		WHERE f.%s = $1
		ORDER BY f.%s ASC
	`,
		schema.Cancion.ID, schema.Cancion.Titulo, schema.Cancion.Artista,
		schema.Favorito.Table,
		schema.Cancion.Table, schema.Cancion.ID, schema.Favorito.IDCancion,
		schema.Favorito.IDUsuario, schema.Favorito.ID,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_user_favorite_songs")
	}
	defer rows.Close()

	songs := []SongSummary{}
	for rows.Next() {
		var s SongSummary
		if err := rows.Scan(&s.ID, &s.Titulo, &s.Artista); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite_song")
		}
		songs = append(songs, s)
	}

	return songs, nil
}
