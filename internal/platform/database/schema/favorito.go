package schema

// FavoritoTable represents the 'favorito' table
type FavoritoTable struct {
	Table        string
	ID           string
	IDUsuario    string
	IDCancion    string
	FechaMarcado string
}

// Favorito is the schema definition for favorito
var Favorito = FavoritoTable{
	Table:        "favorito",
	ID:           "id",
	IDUsuario:    "idusuario",
	IDCancion:    "idcancion",
	FechaMarcado: "fechamarcado",
}

// UniquePair is the named unique constraint guarding the
// (idusuario, idcancion) pairing.
const UniquePair = "favorito_pair_key"
