package favorite

import (
	"time"

	"github.com/dgcastell/musica/internal/platform/apperr"
)

// Favorite is the join relationship marking a song as preferred by a user.
// The (IDUsuario, IDCancion) pair is unique and immutable once created.
type Favorite struct {
	ID           int       `json:"id"`
	IDUsuario    int       `json:"id_usuario"`
	IDCancion    int       `json:"id_cancion"`
	FechaMarcado time.Time `json:"fecha_marcado"`

	// Denormalized projections attached on read paths so list consumers
	// don't have to fetch the full referenced records.
	Usuario *UserSummary `json:"usuario,omitempty"`
	Cancion *SongSummary `json:"cancion,omitempty"`
}

// Input is the JSON body accepted when creating a favorite directly.
type Input struct {
	IDUsuario int `json:"id_usuario"`
	IDCancion int `json:"id_cancion"`
}

// UserSummary is the reduced user view exposed on favorite read paths.
type UserSummary struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// SongSummary is the reduced song view exposed on favorite read paths.
type SongSummary struct {
	ID      int    `json:"id"`
	Titulo  string `json:"titulo"`
	Artista string `json:"artista"`
}

// UserFavorites is the denormalized listing of a user's favorite songs.
type UserFavorites struct {
	Usuario            UserSummary   `json:"usuario"`
	CancionesFavoritas []SongSummary `json:"canciones_favoritas"`
}

// ErrAlreadyFavorite reports a duplicate pairing. The service pre-checks it
// for a friendlier error path; the store returns the same error when the
// unique constraint fires under a concurrent race.
var ErrAlreadyFavorite = apperr.Conflict("Song is already marked as a favorite for this user")
