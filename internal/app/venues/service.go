package venues

import (
	"context"

	"showbill/internal/store"
)

// Store defines persistence operations for venue profiles
type Store interface {
	CreateVenue(ctx context.Context, venue store.Venue) (store.Venue, error)
	VenueByID(ctx context.Context, id int64) (store.Venue, error)
	ListVenues(ctx context.Context) ([]store.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue store.Venue) (store.Venue, error)
}

// Service coordinates venue profile operations
type Service interface {
	Create(ctx context.Context, venue store.Venue) (store.Venue, error)
	Get(ctx context.Context, id int64) (store.Venue, error)
	List(ctx context.Context) ([]store.Venue, error)
	Update(ctx context.Context, id int64, venue store.Venue) (store.Venue, error)
}

type service struct {
	store Store
}

// New constructs a venues Service backed by the provided Store
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, venue store.Venue) (store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return store.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Get(ctx context.Context, id int64) (store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return store.Venue{}, err
	}
	return s.store.VenueByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListVenues(ctx)
}

func (s *service) Update(ctx context.Context, id int64, venue store.Venue) (store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return store.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}
