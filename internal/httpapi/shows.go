package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"showbill/internal/directory"
	"showbill/internal/store"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.directory.Shows(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if shows == nil {
		shows = []directory.ShowListing{}
	}
	writeJSON(w, http.StatusOK, struct {
		Count int                     `json:"count"`
		Data  []directory.ShowListing `json:"data"`
	}{Count: len(shows), Data: shows})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ArtistID  int64     `json:"artist_id"`
		VenueID   int64     `json:"venue_id"`
		StartTime time.Time `json:"start_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	created, err := s.shows.Create(r.Context(), store.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: req.StartTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
