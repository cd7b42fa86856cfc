package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVenue indicates validation failure for venue data.
	ErrInvalidVenue = errors.New("invalid venue")
	// ErrVenueNotFound signals a missing venue record.
	ErrVenueNotFound = errors.New("venue not found")
)

// Venue models a bookable location profile.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// CreateVenue inserts a new venue and returns it with its generated id.
func (s *Store) CreateVenue(ctx context.Context, venue Venue) (Venue, error) {
	if err := validateVenue(venue); err != nil {
		return Venue{}, err
	}

	venue.Name = strings.TrimSpace(venue.Name)

	genresJSON, err := json.Marshal(venue.Genres)
	if err != nil {
		return Venue{}, fmt.Errorf("prepare genres payload: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10, $11)
		RETURNING id
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, string(genresJSON),
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription).Scan(&id)
	if err != nil {
		return Venue{}, fmt.Errorf("insert venue: %w", err)
	}

	venue.ID = id
	return venue, nil
}

// VenueByID returns a single venue by its identifier.
func (s *Store) VenueByID(ctx context.Context, id int64) (Venue, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`, id)

	venue, err := scanVenueRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Venue{}, ErrVenueNotFound
		}
		return Venue{}, err
	}
	return venue, nil
}

// ListVenues returns every venue ordered by state then city, the order the
// grouped directory view relies on for adjacency.
func (s *Store) ListVenues(ctx context.Context) ([]Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		ORDER BY state ASC, city ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues, err := scanVenueRows(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

// UpdateVenue overwrites every profile field of the venue identified by id.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue Venue) (Venue, error) {
	if err := validateVenue(venue); err != nil {
		return Venue{}, err
	}

	venue.Name = strings.TrimSpace(venue.Name)

	genresJSON, err := json.Marshal(venue.Genres)
	if err != nil {
		return Venue{}, fmt.Errorf("prepare genres payload: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6::jsonb,
		    image_link = $7, facebook_link = $8, website = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, string(genresJSON),
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, id)

	updated, err := scanVenueRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Venue{}, ErrVenueNotFound
		}
		return Venue{}, err
	}
	return updated, nil
}

// SearchVenuesByName returns venues whose name contains the term,
// case-insensitively. An empty term matches every venue.
func (s *Store) SearchVenuesByName(ctx context.Context, term string) ([]Venue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	venues, err := scanVenueRows(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

func validateVenue(venue Venue) error {
	switch {
	case strings.TrimSpace(venue.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidVenue)
	case strings.TrimSpace(venue.City) == "":
		return fmt.Errorf("%w: city is required", ErrInvalidVenue)
	case strings.TrimSpace(venue.State) == "":
		return fmt.Errorf("%w: state is required", ErrInvalidVenue)
	case strings.TrimSpace(venue.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidVenue)
	}
	return nil
}

func scanVenueRow(scanner rowScanner) (Venue, error) {
	var (
		v          Venue
		genresJSON []byte
	)

	if err := scanner.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &genresJSON,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Venue{}, err
		}
		return Venue{}, fmt.Errorf("scan venue: %w", err)
	}

	if err := json.Unmarshal(genresJSON, &v.Genres); err != nil {
		return Venue{}, fmt.Errorf("decode genres: %w", err)
	}

	return v, nil
}

func scanVenueRows(rows *sql.Rows) ([]Venue, error) {
	var venues []Venue

	for rows.Next() {
		v, err := scanVenueRow(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}

	return venues, nil
}
