package tenant

import (
	"errors"
	"testing"
	"time"

	"github.com/homedoc/homedoc/internal/survey"
)

func TestRepositoryPutAndGet(t *testing.T) {
	repo := testRepo(t)

	info := &Info{
		Name:        "Dana",
		PhoneNumber: "555-0101",
		OTP:         "4321",
		SurveyKey:   "IL|Springfield|Main St|123|4",
	}
	if err := info.HouseImages.Append(survey.Kitchen, Corner{
		Side:       1,
		Room:       survey.RoomEntry{Name: "kitchen", Images: []string{"images/c.png"}},
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Put("Dana", info); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get("Dana")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PhoneNumber != "555-0101" || got.OTP != "4321" {
		t.Errorf("record = %+v", got)
	}
	if len(got.HouseImages.Kitchen) != 1 {
		t.Errorf("kitchen corners = %d, want 1", len(got.HouseImages.Kitchen))
	}
}

func TestRepositoryGetNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Get("Nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRepositoryPutReplacesRecord(t *testing.T) {
	repo := testRepo(t)

	if err := repo.Put("Dana", &Info{Name: "Dana", PhoneNumber: "555-0101"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put("Dana", &Info{Name: "Dana", PhoneNumber: "555-0202"}); err != nil {
		t.Fatalf("re-put: %v", err)
	}

	got, err := repo.Get("Dana")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PhoneNumber != "555-0202" {
		t.Errorf("phone = %q, want replacement", got.PhoneNumber)
	}
}

func TestRepositoryList(t *testing.T) {
	repo := testRepo(t)

	for _, name := range []string{"Cleo", "Avery", "Dana"} {
		if err := repo.Put(name, &Info{Name: name}); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	infos, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("len = %d, want 3", len(infos))
	}
	if infos[0].Name != "Avery" {
		t.Errorf("first = %q, want Avery (ordered by name)", infos[0].Name)
	}
}
