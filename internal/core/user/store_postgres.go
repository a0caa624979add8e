package user

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

func (repository *PostgresRepository) ListUsers(context context.Context, limit, offset int) ([]*User, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Usuario.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.Usuario.ID, schema.Usuario.Nombre, schema.Usuario.Correo, schema.Usuario.FechaRegistro,
		schema.Usuario.Table, schema.Usuario.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Correo, &u.FechaRegistro); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, total, nil
}

func (repository *PostgresRepository) GetUser(context context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Usuario.ID, schema.Usuario.Nombre, schema.Usuario.Correo, schema.Usuario.FechaRegistro,
		schema.Usuario.Table, schema.Usuario.ID,
	)

	u := &User{}
	err := repository.db.QueryRow(context, query, id).Scan(&u.ID, &u.Nombre, &u.Correo, &u.FechaRegistro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, dberr.Wrap(err, "get_user")
	}

	return u, nil
}

func (repository *PostgresRepository) CorreoInUse(context context.Context, correo string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Usuario.Table, schema.Usuario.Correo,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, correo).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "correo_in_use")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		RETURNING %s, %s
	`,
		schema.Usuario.Table, schema.Usuario.Nombre, schema.Usuario.Correo, schema.Usuario.FechaRegistro,
		schema.Usuario.ID, schema.Usuario.FechaRegistro,
	)

	err := repository.db.QueryRow(context, query, u.Nombre, u.Correo).Scan(&u.ID, &u.FechaRegistro)
	if err != nil {
		// The constraint is the authoritative arbiter under concurrency;
		// report it exactly like the service-level pre-check.
		if dberr.IsUniqueViolation(err, schema.UniqueCorreo) {
			return ErrCorreoRegistered
		}
		return dberr.Wrap(err, "create_user")
	}
	return nil
}

func (repository *PostgresRepository) UpdateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Usuario.Table, schema.Usuario.Nombre, schema.Usuario.Correo,
		schema.Usuario.ID, schema.Usuario.ID,
	)

	var id int
	err := repository.db.QueryRow(context, query, u.ID, u.Nombre, u.Correo).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("User")
		}
		if dberr.IsUniqueViolation(err, schema.UniqueCorreo) {
			return ErrCorreoRegistered
		}
		return dberr.Wrap(err, "update_user")
	}
	return nil
}

// DeleteUser removes the user together with every favorite that references
// it, inside a single transaction so no orphaned pairing can survive.
func (repository *PostgresRepository) DeleteUser(context context.Context, id int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_user_tx")
	}
	defer transaction.Rollback(context)

	favQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Favorito.Table, schema.Favorito.IDUsuario,
	)
	if _, err := transaction.Exec(context, favQuery, id); err != nil {
		return dberr.Wrap(err, "delete_user_favorites")
	}

	userQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Usuario.Table, schema.Usuario.ID,
	)
	cmd, err := transaction.Exec(context, userQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return transaction.Commit(context)
}
