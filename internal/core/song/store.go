package song

import "context"

type Repository interface {
	ListSongs(context context.Context, limit, offset int) ([]*Song, int, error)
	SearchSongs(context context.Context, f Filter) ([]*Song, error)
	GetSong(context context.Context, id int) (*Song, error)
	CreateSong(context context.Context, s *Song) error
	UpdateSong(context context.Context, s *Song) error
	DeleteSong(context context.Context, id int) error
}
