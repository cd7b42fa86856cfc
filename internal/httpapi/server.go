package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"showbill/internal/directory"
	"showbill/internal/store"
)

// ArtistService captures the artist profile operations needed by the HTTP handlers.
type ArtistService interface {
	Create(ctx context.Context, artist store.Artist) (store.Artist, error)
	Get(ctx context.Context, id int64) (store.Artist, error)
	List(ctx context.Context) ([]store.Artist, error)
	Update(ctx context.Context, id int64, artist store.Artist) (store.Artist, error)
}

// VenueService captures the venue profile operations needed by the HTTP handlers.
type VenueService interface {
	Create(ctx context.Context, venue store.Venue) (store.Venue, error)
	Get(ctx context.Context, id int64) (store.Venue, error)
	Update(ctx context.Context, id int64, venue store.Venue) (store.Venue, error)
}

// ShowService captures show booking creation.
type ShowService interface {
	Create(ctx context.Context, show store.Show) (store.Show, error)
}

// DirectoryService provides the aggregated read views.
type DirectoryService interface {
	VenueGroups(ctx context.Context) ([]directory.VenueGroup, error)
	ArtistPage(ctx context.Context, id int64) (directory.ArtistPage, error)
	VenuePage(ctx context.Context, id int64) (directory.VenuePage, error)
	Shows(ctx context.Context) ([]directory.ShowListing, error)
	SearchArtists(ctx context.Context, term string) (directory.ArtistSearchResults, error)
	SearchVenues(ctx context.Context, term string) (directory.VenueSearchResults, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	artists   ArtistService
	venues    VenueService
	shows     ShowService
	directory DirectoryService
}

// New configures a Server with the given services.
func New(artists ArtistService, venues VenueService, shows ShowService, dir DirectoryService) *Server {
	return &Server{
		artists:   artists,
		venues:    venues,
		shows:     shows,
		directory: dir,
	}
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Artist routes
	mux.HandleFunc("GET /api/v1/artists", s.handleListArtists)
	mux.HandleFunc("POST /api/v1/artists", s.handleCreateArtist)
	mux.HandleFunc("GET /api/v1/artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /api/v1/artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /api/v1/artists/{id}/edit", s.handleEditArtist)
	mux.HandleFunc("POST /api/v1/artists/search", s.handleSearchArtists)

	// Venue routes
	mux.HandleFunc("GET /api/v1/venues", s.handleListVenues)
	mux.HandleFunc("POST /api/v1/venues", s.handleCreateVenue)
	mux.HandleFunc("GET /api/v1/venues/{id}", s.handleGetVenue)
	mux.HandleFunc("GET /api/v1/venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /api/v1/venues/{id}/edit", s.handleEditVenue)
	mux.HandleFunc("POST /api/v1/venues/search", s.handleSearchVenues)

	// Show routes
	mux.HandleFunc("GET /api/v1/shows", s.handleListShows)
	mux.HandleFunc("POST /api/v1/shows", s.handleCreateShow)

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

type searchRequest struct {
	SearchTerm string `json:"search_term"`
}

// writeServiceError maps the store's typed failures onto HTTP statuses:
// constraint violations become 400 with the specific message, missing records
// become 404, and anything else is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidArtist),
		errors.Is(err, store.ErrInvalidVenue),
		errors.Is(err, store.ErrInvalidShow):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrArtistNotFound),
		errors.Is(err, store.ErrVenueNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Msg("unhandled service failure")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
