package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidShow indicates a show that is missing a required field or
	// references an artist or venue that does not exist.
	ErrInvalidShow = errors.New("invalid show")
)

// Show links one artist and one venue at a start time. Shows are immutable
// once created.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowDetail is a show joined to both of its endpoints for listing.
type ShowDetail struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowWithVenue is a show seen from the artist's side.
type ShowWithVenue struct {
	VenueID        int64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowWithArtist is a show seen from the venue's side.
type ShowWithArtist struct {
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// CreateShow inserts a new show. The artists/venues foreign keys are enforced
// by the database; a failed reference surfaces as ErrInvalidShow so no row is
// persisted for a dangling booking.
func (s *Store) CreateShow(ctx context.Context, show Show) (Show, error) {
	if err := validateShow(show); err != nil {
		return Show{}, err
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, show.ArtistID, show.VenueID, show.StartTime).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Show{}, fmt.Errorf("%w: artist or venue does not exist", ErrInvalidShow)
		}
		return Show{}, fmt.Errorf("insert show: %w", err)
	}

	show.ID = id
	return show, nil
}

// ListShowDetails returns every show joined to its artist and venue, in
// start-time order.
func (s *Store) ListShowDetails(ctx context.Context) ([]ShowDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		INNER JOIN artists a ON s.artist_id = a.id
		ORDER BY s.start_time ASC, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowDetail
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(&d.VenueID, &d.VenueName, &d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}

// ShowsByArtist returns every show referencing the artist, joined to its
// venue, in start-time order.
func (s *Store) ShowsByArtist(ctx context.Context, artistID int64) ([]ShowWithVenue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select artist shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowWithVenue
	for rows.Next() {
		var sv ShowWithVenue
		if err := rows.Scan(&sv.VenueID, &sv.VenueName, &sv.VenueImageLink, &sv.StartTime); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		shows = append(shows, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist shows: %w", err)
	}

	return shows, nil
}

// ShowsByVenue returns every show referencing the venue, joined to its
// artist, in start-time order.
func (s *Store) ShowsByVenue(ctx context.Context, venueID int64) ([]ShowWithArtist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON s.artist_id = a.id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("select venue shows: %w", err)
	}
	defer rows.Close()

	var shows []ShowWithArtist
	for rows.Next() {
		var sa ShowWithArtist
		if err := rows.Scan(&sa.ArtistID, &sa.ArtistName, &sa.ArtistImageLink, &sa.StartTime); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		shows = append(shows, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue shows: %w", err)
	}

	return shows, nil
}

// UpcomingShowCountsByVenue counts, per venue, the shows starting strictly
// after the given instant. Venues with no upcoming shows are absent from the
// map.
func (s *Store) UpcomingShowCountsByVenue(ctx context.Context, after time.Time) (map[int64]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT venue_id, COUNT(*)
		FROM shows
		WHERE start_time > $1
		GROUP BY venue_id
	`, after)
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			venueID int64
			count   int
		)
		if err := rows.Scan(&venueID, &count); err != nil {
			return nil, fmt.Errorf("scan show count: %w", err)
		}
		counts[venueID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show counts: %w", err)
	}

	return counts, nil
}

func validateShow(show Show) error {
	switch {
	case show.ArtistID <= 0:
		return fmt.Errorf("%w: artist_id is required", ErrInvalidShow)
	case show.VenueID <= 0:
		return fmt.Errorf("%w: venue_id is required", ErrInvalidShow)
	case show.StartTime.IsZero():
		return fmt.Errorf("%w: start_time is required", ErrInvalidShow)
	}
	return nil
}
