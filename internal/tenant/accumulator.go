package tenant

import (
	"errors"
	"fmt"
	"time"

	"github.com/homedoc/homedoc/internal/survey"
)

// Accumulator appends dated entries to a tenant's growing histories.
//
// Every append is a read-modify-write of the whole tenant record with
// no optimistic-concurrency token: two concurrent appends against the
// same record race, and the later write silently wins. That matches the
// persisted-store semantics this service was built against.
type Accumulator struct {
	repo *Repository
	now  func() time.Time
}

// NewAccumulator creates an accumulator over the tenant repository.
func NewAccumulator(repo *Repository) *Accumulator {
	return &Accumulator{repo: repo, now: time.Now}
}

// AppendCorner records a new corner capture for a category. A missing
// tenant record is initialized empty; the corner's side index is the
// current history length plus one.
func (a *Accumulator) AppendCorner(name string, category survey.Category, imageRef string) (*Corner, error) {
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if !survey.ValidCategory(string(category)) {
		return nil, fmt.Errorf("unknown category: %s", category)
	}
	if imageRef == "" {
		return nil, fmt.Errorf("empty image reference")
	}

	info, err := a.repo.Get(name)
	if errors.Is(err, ErrNotFound) {
		info = &Info{Name: name}
	} else if err != nil {
		return nil, err
	}

	corner := Corner{
		Side: len(info.HouseImages.Corners(category)) + 1,
		Room: survey.RoomEntry{
			Name:   string(category),
			Images: []string{imageRef},
		},
		CapturedAt: a.now(),
	}
	if err := info.HouseImages.Append(category, corner); err != nil {
		return nil, err
	}

	if err := a.repo.Put(name, info); err != nil {
		return nil, err
	}
	return &corner, nil
}

// AppendProblem records a problem report against an existing tenant.
func (a *Accumulator) AppendProblem(name string, imageRef, description string) (*Problem, error) {
	if imageRef == "" {
		return nil, fmt.Errorf("empty image reference")
	}

	info, err := a.repo.Get(name)
	if err != nil {
		return nil, err
	}

	problem := Problem{ImageURL: imageRef, Description: description}
	info.Problems = append(info.Problems, problem)

	if err := a.repo.Put(name, info); err != nil {
		return nil, err
	}
	return &problem, nil
}
