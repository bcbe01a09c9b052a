package tenant

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no tenant record exists under a name.
var ErrNotFound = errors.New("tenant not found")

// Repository stores tenant records keyed by tenant display name, with
// the whole tenant sub-record as one JSON document.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a tenant repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the tenant record for name.
func (r *Repository) Get(name string) (*Info, error) {
	var doc string
	err := r.db.QueryRow(
		"SELECT tenant_info FROM tenants WHERE name = ?", name,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tenant %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying tenant %s: %w", name, err)
	}

	var info Info
	if err := json.Unmarshal([]byte(doc), &info); err != nil {
		return nil, fmt.Errorf("parsing tenant record: %w", err)
	}
	return &info, nil
}

// Put writes the entire tenant sub-record under name, replacing any
// prior record. There is no version check: the later of two concurrent
// writers wins outright.
func (r *Repository) Put(name string, info *Info) error {
	doc, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling tenant record: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO tenants (name, tenant_info, survey_key) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			tenant_info = excluded.tenant_info,
			survey_key = excluded.survey_key,
			updated_at = CURRENT_TIMESTAMP`,
		name, string(doc), info.SurveyKey,
	)
	if err != nil {
		return fmt.Errorf("writing tenant %s: %w", name, err)
	}
	return nil
}

// List returns all tenant records, ordered by name.
func (r *Repository) List() ([]*Info, error) {
	rows, err := r.db.Query("SELECT tenant_info FROM tenants ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var infos []*Info
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning tenant: %w", err)
		}
		var info Info
		if err := json.Unmarshal([]byte(doc), &info); err != nil {
			return nil, fmt.Errorf("parsing tenant record: %w", err)
		}
		infos = append(infos, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tenants: %w", err)
	}
	return infos, nil
}
