package schema

// CancionTable represents the 'cancion' table
type CancionTable struct {
	Table         string
	ID            string
	Titulo        string
	Artista       string
	Album         string
	Duracion      string
	Anio          string
	Genero        string
	FechaCreacion string
}

// Cancion is the schema definition for cancion
var Cancion = CancionTable{
	Table:         "cancion",
	ID:            "id",
	Titulo:        "titulo",
	Artista:       "artista",
	Album:         "album",
	Duracion:      "duracion",
	Anio:          "anio",
	Genero:        "genero",
	FechaCreacion: "fechacreacion",
}

func (t CancionTable) Columns() []string {
	return []string{
		t.ID, t.Titulo, t.Artista, t.Album, t.Duracion, t.Anio, t.Genero, t.FechaCreacion,
	}
}
