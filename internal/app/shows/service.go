package shows

import (
	"context"
	"errors"
	"fmt"

	"showbill/internal/store"
)

// Store defines persistence operations for show bookings
type Store interface {
	CreateShow(ctx context.Context, show store.Show) (store.Show, error)
}

// ArtistService allows validating that artists exist before creating shows
type ArtistService interface {
	Get(ctx context.Context, id int64) (store.Artist, error)
}

// VenueService allows validating that venues exist before creating shows
type VenueService interface {
	Get(ctx context.Context, id int64) (store.Venue, error)
}

// Service coordinates show booking operations
type Service interface {
	Create(ctx context.Context, show store.Show) (store.Show, error)
}

type service struct {
	store   Store
	artists ArtistService
	venues  VenueService
}

// New constructs a shows Service. The artist and venue services are used to
// reject bookings against records that do not exist; the database foreign
// keys remain the backstop.
func New(store Store, artists ArtistService, venues VenueService) Service {
	return &service{
		store:   store,
		artists: artists,
		venues:  venues,
	}
}

func (s *service) Create(ctx context.Context, show store.Show) (store.Show, error) {
	if err := ctx.Err(); err != nil {
		return store.Show{}, err
	}

	if s.artists != nil && show.ArtistID > 0 {
		if _, err := s.artists.Get(ctx, show.ArtistID); err != nil {
			if errors.Is(err, store.ErrArtistNotFound) {
				return store.Show{}, fmt.Errorf("%w: artist %d does not exist", store.ErrInvalidShow, show.ArtistID)
			}
			return store.Show{}, err
		}
	}
	if s.venues != nil && show.VenueID > 0 {
		if _, err := s.venues.Get(ctx, show.VenueID); err != nil {
			if errors.Is(err, store.ErrVenueNotFound) {
				return store.Show{}, fmt.Errorf("%w: venue %d does not exist", store.ErrInvalidShow, show.VenueID)
			}
			return store.Show{}, err
		}
	}

	return s.store.CreateShow(ctx, show)
}
