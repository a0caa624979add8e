package favorite

import "context"

type Repository interface {
	ListFavorites(context context.Context, limit, offset int) ([]*Favorite, int, error)
	GetFavorite(context context.Context, id int) (*Favorite, error)
	PairExists(context context.Context, userID, songID int) (bool, error)
	CreateFavorite(context context.Context, f *Favorite) error
	DeleteFavorite(context context.Context, id int) error
	DeletePair(context context.Context, userID, songID int) error
	ListSongsForUser(context context.Context, userID int) ([]SongSummary, error)
}
