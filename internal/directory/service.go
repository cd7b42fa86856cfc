// Package directory derives the read-time views of the booking directory:
// venues grouped by location, artist and venue pages with their shows
// partitioned into past and upcoming, the flat show listing, and search
// envelopes. It holds no state of its own beyond a clock.
package directory

import (
	"context"
	"time"

	"showbill/internal/store"
)

// startTimeLayout is the display format for show start times.
const startTimeLayout = "2006-01-02 15:04:05"

// Store defines the persistence reads the directory views are built from.
type Store interface {
	ArtistByID(ctx context.Context, id int64) (store.Artist, error)
	VenueByID(ctx context.Context, id int64) (store.Venue, error)
	ListVenues(ctx context.Context) ([]store.Venue, error)
	ListShowDetails(ctx context.Context) ([]store.ShowDetail, error)
	ShowsByArtist(ctx context.Context, artistID int64) ([]store.ShowWithVenue, error)
	ShowsByVenue(ctx context.Context, venueID int64) ([]store.ShowWithArtist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]store.Artist, error)
	SearchVenuesByName(ctx context.Context, term string) ([]store.Venue, error)
	UpcomingShowCountsByVenue(ctx context.Context, after time.Time) (map[int64]int, error)
}

// Service builds directory views over the Store.
type Service struct {
	store Store
	now   func() time.Time
}

// New constructs a Service reading the wall clock. Tests pin the clock with
// WithClock.
func New(st Store) *Service {
	return &Service{store: st, now: time.Now}
}

// WithClock replaces the time source and returns the service.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// VenueSummary is one venue entry inside a location group or a search result.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueGroup collects the venues sharing a (city, state) pair.
type VenueGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueAppearance is a show seen from an artist page.
type VenueAppearance struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistAppearance is a show seen from a venue page.
type ArtistAppearance struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistPage is an artist profile with its shows partitioned by the query
// instant.
type ArtistPage struct {
	store.Artist
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// VenuePage is a venue profile with its shows partitioned by the query
// instant.
type VenuePage struct {
	store.Venue
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// ShowListing is one row of the flat show list.
type ShowListing struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistSearchResults wraps artist name-search matches.
type ArtistSearchResults struct {
	Count int            `json:"count"`
	Data  []store.Artist `json:"data"`
}

// VenueSearchResults wraps venue name-search matches.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenueGroups partitions all venues into (city, state) groups. Groups appear
// in the order their key first occurs in the store's (state, city) ordering
// and every venue lands in exactly one group.
func (s *Service) VenueGroups(ctx context.Context) ([]VenueGroup, error) {
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.store.UpcomingShowCountsByVenue(ctx, s.now())
	if err != nil {
		return nil, err
	}

	groups := []VenueGroup{}
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			groups = append(groups, VenueGroup{City: v.City, State: v.State})
			i = len(groups) - 1
			index[key] = i
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	return groups, nil
}

// ArtistPage returns the artist with its shows partitioned into past and
// upcoming. A missing artist propagates as store.ErrArtistNotFound before any
// view is assembled.
func (s *Service) ArtistPage(ctx context.Context, id int64) (ArtistPage, error) {
	artist, err := s.store.ArtistByID(ctx, id)
	if err != nil {
		return ArtistPage{}, err
	}

	shows, err := s.store.ShowsByArtist(ctx, id)
	if err != nil {
		return ArtistPage{}, err
	}

	page := ArtistPage{
		Artist:        artist,
		PastShows:     []VenueAppearance{},
		UpcomingShows: []VenueAppearance{},
	}

	now := s.now()
	for _, sh := range shows {
		appearance := VenueAppearance{
			VenueID:        sh.VenueID,
			VenueName:      sh.VenueName,
			VenueImageLink: sh.VenueImageLink,
			StartTime:      sh.StartTime.Format(startTimeLayout),
		}
		if sh.StartTime.Before(now) {
			page.PastShows = append(page.PastShows, appearance)
		} else {
			page.UpcomingShows = append(page.UpcomingShows, appearance)
		}
	}

	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// VenuePage returns the venue with its shows partitioned into past and
// upcoming. A missing venue propagates as store.ErrVenueNotFound.
func (s *Service) VenuePage(ctx context.Context, id int64) (VenuePage, error) {
	venue, err := s.store.VenueByID(ctx, id)
	if err != nil {
		return VenuePage{}, err
	}

	shows, err := s.store.ShowsByVenue(ctx, id)
	if err != nil {
		return VenuePage{}, err
	}

	page := VenuePage{
		Venue:         venue,
		PastShows:     []ArtistAppearance{},
		UpcomingShows: []ArtistAppearance{},
	}

	now := s.now()
	for _, sh := range shows {
		appearance := ArtistAppearance{
			ArtistID:        sh.ArtistID,
			ArtistName:      sh.ArtistName,
			ArtistImageLink: sh.ArtistImageLink,
			StartTime:       sh.StartTime.Format(startTimeLayout),
		}
		if sh.StartTime.Before(now) {
			page.PastShows = append(page.PastShows, appearance)
		} else {
			page.UpcomingShows = append(page.UpcomingShows, appearance)
		}
	}

	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)
	return page, nil
}

// Shows returns every show joined to both endpoints with formatted start
// times.
func (s *Service) Shows(ctx context.Context) ([]ShowListing, error) {
	details, err := s.store.ListShowDetails(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]ShowListing, 0, len(details))
	for _, d := range details {
		listings = append(listings, ShowListing{
			VenueID:         d.VenueID,
			VenueName:       d.VenueName,
			ArtistID:        d.ArtistID,
			ArtistName:      d.ArtistName,
			ArtistImageLink: d.ArtistImageLink,
			StartTime:       d.StartTime.Format(startTimeLayout),
		})
	}

	return listings, nil
}

// SearchArtists returns the {count, data} envelope for a case-insensitive
// substring match on artist names. An empty term matches every artist.
func (s *Service) SearchArtists(ctx context.Context, term string) (ArtistSearchResults, error) {
	matches, err := s.store.SearchArtistsByName(ctx, term)
	if err != nil {
		return ArtistSearchResults{}, err
	}
	if matches == nil {
		matches = []store.Artist{}
	}
	return ArtistSearchResults{Count: len(matches), Data: matches}, nil
}

// SearchVenues returns the {count, data} envelope for a case-insensitive
// substring match on venue names, each hit carrying its upcoming show count.
func (s *Service) SearchVenues(ctx context.Context, term string) (VenueSearchResults, error) {
	matches, err := s.store.SearchVenuesByName(ctx, term)
	if err != nil {
		return VenueSearchResults{}, err
	}

	counts := map[int64]int{}
	if len(matches) > 0 {
		counts, err = s.store.UpcomingShowCountsByVenue(ctx, s.now())
		if err != nil {
			return VenueSearchResults{}, err
		}
	}

	data := make([]VenueSummary, 0, len(matches))
	for _, v := range matches {
		data = append(data, VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	return VenueSearchResults{Count: len(data), Data: data}, nil
}
