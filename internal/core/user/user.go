package user

import (
	"time"

	"github.com/dgcastell/musica/internal/platform/validate"
)

// Fields holds the caller-supplied attributes of a user account.
// It is embedded in [User] so the full record composes the writable
// field set with the generated identity and timestamp.
type Fields struct {
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

// User represents a registered listener of the service.
type User struct {
	ID int `json:"id"`
	Fields
	FechaRegistro time.Time `json:"fecha_registro"`
}

// Patch carries a sparse update: nil fields keep their stored value.
type Patch struct {
	Nombre *string `json:"nombre"`
	Correo *string `json:"correo"`
}

const (
	FieldNombre = "nombre"
	FieldCorreo = "correo"
)

// ErrCorreoRegistered reports a duplicate correo. The service pre-checks it
// for a friendlier error path; the store returns the same error when the
// unique constraint fires under a concurrent race.
var ErrCorreoRegistered = validate.RequiredError(FieldCorreo, "Email address is already registered")
