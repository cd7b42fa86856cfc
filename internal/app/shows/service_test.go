package shows

import (
	"context"
	"errors"
	"testing"
	"time"

	"showbill/internal/store"
)

type stubStore struct {
	created    store.Show
	err        error
	callCount  int
	lastCreate store.Show
}

func (s *stubStore) CreateShow(ctx context.Context, show store.Show) (store.Show, error) {
	s.callCount++
	s.lastCreate = show
	return s.created, s.err
}

type stubArtists struct {
	err error
}

func (s *stubArtists) Get(ctx context.Context, id int64) (store.Artist, error) {
	return store.Artist{ID: id}, s.err
}

type stubVenues struct {
	err error
}

func (s *stubVenues) Get(ctx context.Context, id int64) (store.Venue, error) {
	return store.Venue{ID: id}, s.err
}

func TestCreateShowDelegatesToStore(t *testing.T) {
	start := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	st := &stubStore{created: store.Show{ID: 11, ArtistID: 4, VenueID: 1, StartTime: start}}

	svc := New(st, &stubArtists{}, &stubVenues{})

	got, err := svc.Create(context.Background(), store.Show{ArtistID: 4, VenueID: 1, StartTime: start})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 11 {
		t.Fatalf("expected show ID 11, got %d", got.ID)
	}
	if st.lastCreate.ArtistID != 4 || st.lastCreate.VenueID != 1 {
		t.Fatalf("show not forwarded to store: %#v", st.lastCreate)
	}
}

func TestCreateShowMissingArtist(t *testing.T) {
	st := &stubStore{}
	svc := New(st, &stubArtists{err: store.ErrArtistNotFound}, &stubVenues{})

	_, err := svc.Create(context.Background(), store.Show{
		ArtistID:  999,
		VenueID:   1,
		StartTime: time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, store.ErrInvalidShow) {
		t.Fatalf("missing artist must surface as ErrInvalidShow, got %v", err)
	}
	if st.callCount != 0 {
		t.Fatalf("store must not be reached for a dangling booking")
	}
}

func TestCreateShowMissingVenue(t *testing.T) {
	st := &stubStore{}
	svc := New(st, &stubArtists{}, &stubVenues{err: store.ErrVenueNotFound})

	_, err := svc.Create(context.Background(), store.Show{
		ArtistID:  4,
		VenueID:   999,
		StartTime: time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, store.ErrInvalidShow) {
		t.Fatalf("missing venue must surface as ErrInvalidShow, got %v", err)
	}
	if st.callCount != 0 {
		t.Fatalf("store must not be reached for a dangling booking")
	}
}

func TestCreateShowCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(&stubStore{}, &stubArtists{}, &stubVenues{})

	_, err := svc.Create(ctx, store.Show{ArtistID: 4, VenueID: 1, StartTime: time.Now()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
