package survey

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no survey exists under a key.
var ErrNotFound = errors.New("survey not found")

// Stored pairs a committed survey with its document key.
type Stored struct {
	Key       string          `json:"key"`
	Landlord  string          `json:"landlord,omitempty"`
	Survey    *PropertySurvey `json:"survey"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Repository stores committed surveys as whole JSON documents keyed by
// the address-derived key. It implements DocumentStore.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a survey repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Put writes the full survey document under key, replacing any prior
// document. There is no partial commit.
func (r *Repository) Put(key string, s *PropertySurvey) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling survey: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO surveys (key, doc) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`,
		key, string(doc),
	)
	if err != nil {
		return fmt.Errorf("writing survey %s: %w", key, err)
	}
	return nil
}

// Get returns the survey stored under key.
func (r *Repository) Get(key string) (*Stored, error) {
	row := r.db.QueryRow(
		"SELECT key, doc, landlord, created_at, updated_at FROM surveys WHERE key = ?", key,
	)

	st, err := scanStored(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("survey %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying survey %s: %w", key, err)
	}
	return st, nil
}

// List returns all stored surveys, most recently updated first.
func (r *Repository) List() ([]*Stored, error) {
	rows, err := r.db.Query(
		"SELECT key, doc, landlord, created_at, updated_at FROM surveys ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing surveys: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var surveys []*Stored
	for rows.Next() {
		st, err := scanStored(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning survey: %w", err)
		}
		surveys = append(surveys, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating surveys: %w", err)
	}
	return surveys, nil
}

// UpdateTenantInfo merges a tenant assignment into the stored document,
// leaving every other field as persisted.
func (r *Repository) UpdateTenantInfo(key string, t *TenantRef) error {
	st, err := r.Get(key)
	if err != nil {
		return err
	}

	st.Survey.TenantInfo = t
	return r.Put(key, st.Survey)
}

// SetLandlord records the landlord name on the stored survey row.
func (r *Repository) SetLandlord(key, landlord string) error {
	res, err := r.db.Exec("UPDATE surveys SET landlord = ? WHERE key = ?", landlord, key)
	if err != nil {
		return fmt.Errorf("setting landlord for %s: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("survey %s: %w", key, ErrNotFound)
	}
	return nil
}

func scanStored(row interface{ Scan(...interface{}) error }) (*Stored, error) {
	var st Stored
	var doc string

	if err := row.Scan(&st.Key, &doc, &st.Landlord, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}

	var s PropertySurvey
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return nil, fmt.Errorf("parsing survey document: %w", err)
	}
	s.normalize()
	st.Survey = &s
	return &st, nil
}
