package schema

// UsuarioTable represents the 'usuario' table
type UsuarioTable struct {
	Table         string
	ID            string
	Nombre        string
	Correo        string
	FechaRegistro string
}

// Usuario is the schema definition for usuario
var Usuario = UsuarioTable{
	Table:         "usuario",
	ID:            "id",
	Nombre:        "nombre",
	Correo:        "correo",
	FechaRegistro: "fecharegistro",
}

// UniqueCorreo is the named unique constraint guarding usuario.correo.
const UniqueCorreo = "usuario_correo_key"
