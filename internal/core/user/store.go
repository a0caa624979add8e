package user

import "context"

type Repository interface {
	ListUsers(context context.Context, limit, offset int) ([]*User, int, error)
	GetUser(context context.Context, id int) (*User, error)
	CorreoInUse(context context.Context, correo string) (bool, error)
	CreateUser(context context.Context, u *User) error
	UpdateUser(context context.Context, u *User) error
	DeleteUser(context context.Context, id int) error
}
