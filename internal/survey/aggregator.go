package survey

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Commit-time validation errors. Persistence failures are wrapped
// around the underlying store error instead.
var (
	ErrMissingAddress      = errors.New("all five address fields are required")
	ErrMissingVerification = errors.New("id, ownership, and house images are required")
)

// Patch is a partial survey update produced by one wizard screen.
// Only the fields present are applied; a category present in Categories
// fully replaces the prior list for that category.
type Patch struct {
	Categories   map[Category][]RoomEntry
	Verification *VerificationImages
	Address      *Address
	TenantInfo   *TenantRef
}

// DocumentStore is the document half of the persistence gateway the
// aggregator commits through.
type DocumentStore interface {
	Put(key string, s *PropertySurvey) error
}

// Aggregator owns the in-flight PropertySurvey during the wizard and
// writes the committed aggregate through the document store. Cross-
// screen state travels as a serialized fragment, not shared memory.
type Aggregator struct {
	store DocumentStore
}

// NewAggregator creates an aggregator committing through store.
func NewAggregator(store DocumentStore) *Aggregator {
	return &Aggregator{store: store}
}

// Init deserializes a carried-forward fragment, or returns the
// all-empty default when the fragment is empty.
func (a *Aggregator) Init(fragment []byte) (*PropertySurvey, error) {
	if len(fragment) == 0 {
		return NewPropertySurvey(), nil
	}

	var s PropertySurvey
	if err := json.Unmarshal(fragment, &s); err != nil {
		return nil, fmt.Errorf("parsing survey fragment: %w", err)
	}
	s.normalize()
	return &s, nil
}

// Serialize renders the aggregate for transport to the next screen.
func (a *Aggregator) Serialize(s *PropertySurvey) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("serializing survey: %w", err)
	}
	return data, nil
}

// ApplyPartial merges a screen's update into the aggregate. The merge
// is shallow: a category present in the patch replaces the existing
// list outright, absent keys keep their current value.
func (a *Aggregator) ApplyPartial(s *PropertySurvey, p Patch) (*PropertySurvey, error) {
	for c, entries := range p.Categories {
		if err := s.SetEntries(c, entries); err != nil {
			return nil, err
		}
	}
	if p.Verification != nil {
		s.Verification = *p.Verification
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.TenantInfo != nil {
		s.TenantInfo = p.TenantInfo
	}
	return s, nil
}

// Commit validates the aggregate and writes the whole document through
// the store under its address-derived key. Nothing is written when
// validation fails.
func (a *Aggregator) Commit(s *PropertySurvey) (string, error) {
	if !s.Address.Complete() {
		return "", ErrMissingAddress
	}
	if !s.Verification.Complete() {
		return "", ErrMissingVerification
	}

	key := s.Address.Key()
	if err := a.store.Put(key, s); err != nil {
		return "", fmt.Errorf("committing survey %s: %w", key, err)
	}
	return key, nil
}
