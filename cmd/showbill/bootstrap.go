package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

func bootstrapDemoData(ctx context.Context, db *sql.DB) error {
	return ensureDemoDirectory(ctx, db)
}

// ensureDemoDirectory seeds a small directory of artists, venues, and shows
// the first time the service starts against an empty database.
func ensureDemoDirectory(ctx context.Context, db *sql.DB) error {
	for _, table := range []string{"artists", "venues", "shows"} {
		exists, err := tableExists(ctx, db, table)
		if err != nil {
			return fmt.Errorf("check %s table: %w", table, err)
		}
		if !exists {
			return nil
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM artists
	`).Scan(&count); err != nil {
		return fmt.Errorf("count artists: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedArtist struct {
		Name   string
		City   string
		State  string
		Phone  string
		Genres []string
		Image  string
	}
	type seedVenue struct {
		Name    string
		City    string
		State   string
		Address string
		Phone   string
		Genres  []string
		Image   string
	}

	seedArtists := []seedArtist{
		{
			Name:   "Guns N Petals",
			City:   "San Francisco",
			State:  "CA",
			Phone:  "326-123-5000",
			Genres: []string{"Rock n Roll"},
			Image:  "https://images.example.com/guns-n-petals.jpg",
		},
		{
			Name:   "Matt Quevedo",
			City:   "New York",
			State:  "NY",
			Phone:  "300-400-5000",
			Genres: []string{"Jazz"},
			Image:  "https://images.example.com/matt-quevedo.jpg",
		},
		{
			Name:   "The Wild Sax Band",
			City:   "San Francisco",
			State:  "CA",
			Phone:  "432-325-5432",
			Genres: []string{"Jazz", "Classical"},
			Image:  "https://images.example.com/wild-sax-band.jpg",
		},
	}

	seedVenues := []seedVenue{
		{
			Name:    "The Musical Hop",
			City:    "San Francisco",
			State:   "CA",
			Address: "1015 Folsom Street",
			Phone:   "123-123-1234",
			Genres:  []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			Image:   "https://images.example.com/musical-hop.jpg",
		},
		{
			Name:    "The Dueling Pianos Bar",
			City:    "New York",
			State:   "NY",
			Address: "335 Delancey Street",
			Phone:   "914-003-1132",
			Genres:  []string{"Classical", "R&B", "Hip-Hop"},
			Image:   "https://images.example.com/dueling-pianos.jpg",
		},
		{
			Name:    "Park Square Live Music & Coffee",
			City:    "San Francisco",
			State:   "CA",
			Address: "34 Whiskey Moore Ave",
			Phone:   "415-000-1234",
			Genres:  []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Image:   "https://images.example.com/park-square.jpg",
		},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	artistIDs := make([]int64, 0, len(seedArtists))
	for _, a := range seedArtists {
		genresJSON, err := json.Marshal(a.Genres)
		if err != nil {
			return fmt.Errorf("marshal genres for %q: %w", a.Name, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5::jsonb, $6, '', '', FALSE, '')
			RETURNING id
		`, a.Name, a.City, a.State, a.Phone, string(genresJSON), a.Image).Scan(&id); err != nil {
			return fmt.Errorf("insert demo artist %q: %w", a.Name, err)
		}
		artistIDs = append(artistIDs, id)
	}

	venueIDs := make([]int64, 0, len(seedVenues))
	for _, v := range seedVenues {
		genresJSON, err := json.Marshal(v.Genres)
		if err != nil {
			return fmt.Errorf("marshal genres for %q: %w", v.Name, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, '', '', FALSE, '')
			RETURNING id
		`, v.Name, v.City, v.State, v.Address, v.Phone, string(genresJSON), v.Image).Scan(&id); err != nil {
			return fmt.Errorf("insert demo venue %q: %w", v.Name, err)
		}
		venueIDs = append(venueIDs, id)
	}

	now := time.Now()
	seedShows := []struct {
		artist int
		venue  int
		start  time.Time
	}{
		{artist: 0, venue: 0, start: now.AddDate(0, -6, 0)},
		{artist: 1, venue: 2, start: now.AddDate(0, -2, 0)},
		{artist: 2, venue: 2, start: now.AddDate(0, 1, 0)},
		{artist: 2, venue: 1, start: now.AddDate(0, 2, 0)},
	}

	for _, sh := range seedShows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO shows (artist_id, venue_id, start_time)
			VALUES ($1, $2, $3)
		`, artistIDs[sh.artist], venueIDs[sh.venue], sh.start); err != nil {
			return fmt.Errorf("insert demo show: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	tx = nil

	return nil
}

type queryRower interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func tableExists(ctx context.Context, q queryRower, table string) (bool, error) {
	var name sql.NullString
	if err := q.QueryRowContext(ctx, `SELECT to_regclass($1)`, table).Scan(&name); err != nil {
		return false, err
	}
	return name.Valid, nil
}
