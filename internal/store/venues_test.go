package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestValidateVenue(t *testing.T) {
	tests := []struct {
		name    string
		venue   Venue
		wantErr bool
	}{
		{
			name: "valid venue",
			venue: Venue{
				Name:    "The Musical Hop",
				City:    "San Francisco",
				State:   "CA",
				Address: "1015 Folsom Street",
				Phone:   "123-123-1234",
			},
		},
		{
			name: "address is optional",
			venue: Venue{
				Name:  "The Musical Hop",
				City:  "San Francisco",
				State: "CA",
				Phone: "123-123-1234",
			},
		},
		{
			name: "missing name",
			venue: Venue{
				City:  "San Francisco",
				State: "CA",
				Phone: "123-123-1234",
			},
			wantErr: true,
		},
		{
			name: "missing state",
			venue: Venue{
				Name:  "The Musical Hop",
				City:  "San Francisco",
				Phone: "123-123-1234",
			},
			wantErr: true,
		},
		{
			name: "missing phone",
			venue: Venue{
				Name:  "The Musical Hop",
				City:  "San Francisco",
				State: "CA",
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := validateVenue(tc.venue)
			if tc.wantErr && !errors.Is(err, ErrInvalidVenue) {
				t.Fatalf("expected ErrInvalidVenue, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestCreateVenueSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10, $11)
		RETURNING id
	`)).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			`["Jazz","Reggae","Swing"]`, "", "", "", true, "Looking for local artists").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	venue := Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             []string{"Jazz", "Reggae", "Swing"},
		SeekingTalent:      true,
		SeekingDescription: "Looking for local artists",
	}

	got, err := s.CreateVenue(context.Background(), venue)
	if err != nil {
		t.Fatalf("CreateVenue error: %v", err)
	}

	if got.ID != 1 {
		t.Fatalf("expected venue ID 1, got %d", got.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateVenueMissingCity(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	_, err = s.CreateVenue(context.Background(), Venue{
		Name:  "The Musical Hop",
		State: "CA",
		Phone: "123-123-1234",
	})
	if !errors.Is(err, ErrInvalidVenue) {
		t.Fatalf("expected ErrInvalidVenue, got %v", err)
	}
}

func TestVenueByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.VenueByID(context.Background(), 42)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListVenuesOrderedByStateCity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	columns := []string{
		"id", "name", "city", "state", "address", "phone", "genres", "image_link", "facebook_link", "website", "seeking_talent", "seeking_description",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		ORDER BY state ASC, city ASC, id ASC
	`)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234", `["Jazz"]`, "", "", "", false, "").
			AddRow(int64(3), "Park Square Live Music & Coffee", "San Francisco", "CA", "34 Whiskey Moore Ave", "415-000-1234", `["Rock n Roll"]`, "", "", "", false, "").
			AddRow(int64(2), "The Dueling Pianos Bar", "New York", "NY", "335 Delancey Street", "914-003-1132", `["Classical"]`, "", "", "", false, ""))

	venues, err := s.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("ListVenues error: %v", err)
	}

	if len(venues) != 3 {
		t.Fatalf("expected 3 venues, got %d", len(venues))
	}
	if venues[0].ID != 1 || venues[1].ID != 3 || venues[2].ID != 2 {
		t.Fatalf("row order not preserved: %d, %d, %d", venues[0].ID, venues[1].ID, venues[2].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE venues`)).
		WillReturnError(sql.ErrNoRows)

	_, err = s.UpdateVenue(context.Background(), 404, Venue{
		Name:  "Ghost Hall",
		City:  "Nowhere",
		State: "ZZ",
		Phone: "000",
	})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchVenuesNoMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	columns := []string{
		"id", "name", "city", "state", "address", "phone", "genres", "image_link", "facebook_link", "website", "seeking_talent", "seeking_description",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description
		FROM venues
		WHERE name ILIKE $1
		ORDER BY id ASC
	`)).
		WithArgs("%xyzzy%").
		WillReturnRows(sqlmock.NewRows(columns))

	venues, err := s.SearchVenuesByName(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("SearchVenuesByName error: %v", err)
	}

	if len(venues) != 0 {
		t.Fatalf("expected no venues, got %d", len(venues))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
