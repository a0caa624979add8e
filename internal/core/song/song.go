package song

import "time"

// Fields holds the caller-supplied attributes of a song record.
// Optional attributes are pointers so their absence survives round-trips.
type Fields struct {
	Titulo   string  `json:"titulo"`
	Artista  string  `json:"artista"`
	Album    *string `json:"album"`
	Duracion *int    `json:"duracion"`
	Anio     *int    `json:"año"`
	Genero   *string `json:"genero"`
}

// Song represents a track in the catalogue.
type Song struct {
	ID int `json:"id"`
	Fields
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// Patch carries a sparse update: nil fields keep their stored value.
type Patch struct {
	Titulo   *string `json:"titulo"`
	Artista  *string `json:"artista"`
	Album    *string `json:"album"`
	Duracion *int    `json:"duracion"`
	Anio     *int    `json:"año"`
	Genero   *string `json:"genero"`
}

// Filter holds the parameters for a free-text song search.
// Titulo and Artista are case-insensitive substring matches, Genero is an
// exact match; supplied filters are ANDed together.
type Filter struct {
	Titulo  string
	Artista string
	Genero  string
}

const (
	FieldTitulo   = "titulo"
	FieldArtista  = "artista"
	FieldAlbum    = "album"
	FieldDuracion = "duracion"
	FieldAnio     = "año"
	FieldGenero   = "genero"
)
