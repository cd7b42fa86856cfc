package artists

import (
	"context"

	"showbill/internal/store"
)

// Store defines persistence operations for artist profiles
type Store interface {
	CreateArtist(ctx context.Context, artist store.Artist) (store.Artist, error)
	ArtistByID(ctx context.Context, id int64) (store.Artist, error)
	ListArtists(ctx context.Context) ([]store.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist store.Artist) (store.Artist, error)
}

// Service coordinates artist profile operations
type Service interface {
	Create(ctx context.Context, artist store.Artist) (store.Artist, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	List(ctx context.Context) ([]store.Artist, error)
	Update(ctx context.Context, id int64, artist store.Artist) (store.Artist, error)
}

type service struct {
	store Store
}

// New constructs an artists Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, artist store.Artist) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Get(ctx context.Context, id int64) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.ArtistByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Update(ctx context.Context, id int64, artist store.Artist) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}
