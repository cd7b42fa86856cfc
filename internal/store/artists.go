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
	// ErrInvalidArtist indicates validation failure for artist data.
	ErrInvalidArtist = errors.New("invalid artist")
	// ErrArtistNotFound signals a missing artist record.
	ErrArtistNotFound = errors.New("artist not found")
)

// Artist models a bookable performer profile.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// CreateArtist inserts a new artist and returns it with its generated id.
func (s *Store) CreateArtist(ctx context.Context, artist Artist) (Artist, error) {
	if err := validateArtist(artist); err != nil {
		return Artist{}, err
	}

	artist.Name = strings.TrimSpace(artist.Name)

	genresJSON, err := json.Marshal(artist.Genres)
	if err != nil {
		return Artist{}, fmt.Errorf("prepare genres payload: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $9, $10)
		RETURNING id
	`, artist.Name, artist.City, artist.State, artist.Phone, string(genresJSON),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription).Scan(&id)
	if err != nil {
		return Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	artist.ID = id
	return artist, nil
}

// ArtistByID returns a single artist by its identifier.
func (s *Store) ArtistByID(ctx context.Context, id int64) (Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`, id)

	artist, err := scanArtistRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrArtistNotFound
		}
		return Artist{}, err
	}
	return artist, nil
}

// ListArtists returns every artist in id order.
func (s *Store) ListArtists(ctx context.Context) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description
		FROM artists
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists, err := scanArtistRows(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// UpdateArtist overwrites every profile field of the artist identified by id.
// The update is a single statement, so readers never observe a partial write.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist Artist) (Artist, error) {
	if err := validateArtist(artist); err != nil {
		return Artist{}, err
	}

	artist.Name = strings.TrimSpace(artist.Name)

	genresJSON, err := json.Marshal(artist.Genres)
	if err != nil {
		return Artist{}, fmt.Errorf("prepare genres payload: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5::jsonb,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description
	`, artist.Name, artist.City, artist.State, artist.Phone, string(genresJSON),
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, id)

	updated, err := scanArtistRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrArtistNotFound
		}
		return Artist{}, err
	}
	return updated, nil
}

// SearchArtistsByName returns artists whose name contains the term,
// case-insensitively. An empty term matches every artist.
func (s *Store) SearchArtistsByName(ctx context.Context, term string) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description
		FROM artists
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	artists, err := scanArtistRows(rows)
	if err != nil {
		return nil, err
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

func validateArtist(artist Artist) error {
	switch {
	case strings.TrimSpace(artist.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidArtist)
	case strings.TrimSpace(artist.City) == "":
		return fmt.Errorf("%w: city is required", ErrInvalidArtist)
	case strings.TrimSpace(artist.State) == "":
		return fmt.Errorf("%w: state is required", ErrInvalidArtist)
	case strings.TrimSpace(artist.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidArtist)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtistRow(scanner rowScanner) (Artist, error) {
	var (
		a          Artist
		genresJSON []byte
	)

	if err := scanner.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genresJSON,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, err
		}
		return Artist{}, fmt.Errorf("scan artist: %w", err)
	}

	if err := json.Unmarshal(genresJSON, &a.Genres); err != nil {
		return Artist{}, fmt.Errorf("decode genres: %w", err)
	}

	return a, nil
}

func scanArtistRows(rows *sql.Rows) ([]Artist, error) {
	var artists []Artist

	for rows.Next() {
		a, err := scanArtistRow(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}

	return artists, nil
}
