package survey

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPropertySurveyHasAllCategories(t *testing.T) {
	s := NewPropertySurvey()

	for _, c := range Categories {
		entries := s.Entries(c)
		if entries == nil {
			t.Errorf("category %s is nil, want empty list", c)
		}
		if len(entries) != 0 {
			t.Errorf("category %s = %d entries, want 0", c, len(entries))
		}
	}
}

func TestSerializedSurveyKeepsEmptyCategories(t *testing.T) {
	data, err := json.Marshal(NewPropertySurvey())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, c := range Categories {
		if !strings.Contains(string(data), `"`+string(c)+`":[]`) {
			t.Errorf("serialized survey missing %q key: %s", c, data)
		}
	}
}

func TestRoundTripNormalizesMissingCategories(t *testing.T) {
	// A fragment written by an older client may omit categories.
	var s PropertySurvey
	if err := json.Unmarshal([]byte(`{"kitchen":[{"name":"Kitchen","images":["images/k.png"]}]}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.normalize()

	if len(s.Entries(Kitchen)) != 1 {
		t.Error("kitchen entry lost")
	}
	for _, c := range Categories {
		if s.Entries(c) == nil {
			t.Errorf("category %s is nil after normalize", c)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(string(c)) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if ValidCategory("garage") {
		t.Error("ValidCategory(garage) = true, want false")
	}
	if ValidCategory("") {
		t.Error("ValidCategory(\"\") = true, want false")
	}
}

func TestAddressKey(t *testing.T) {
	a := Address{
		State:          "IL",
		City:           "Springfield",
		Street:         "Main St",
		HouseNumber:    "123",
		ApartmentEntry: "4",
	}
	if got := a.Key(); got != "IL|Springfield|Main St|123|4" {
		t.Errorf("key = %q", got)
	}
}

func TestAddressKeyDoesNotRejectSeparator(t *testing.T) {
	// A "|" inside a field silently corrupts the key shape. The
	// derivation does not guard against it.
	a := Address{
		State:          "IL",
		City:           "Spring|field",
		Street:         "Main St",
		HouseNumber:    "123",
		ApartmentEntry: "4",
	}
	if got := a.Key(); got != "IL|Spring|field|Main St|123|4" {
		t.Errorf("key = %q", got)
	}
}

func TestAddressComplete(t *testing.T) {
	a := Address{State: "IL", City: "Springfield", Street: "Main St", HouseNumber: "123", ApartmentEntry: "4"}
	if !a.Complete() {
		t.Error("complete address reported incomplete")
	}

	a.ApartmentEntry = ""
	if a.Complete() {
		t.Error("incomplete address reported complete")
	}
}

func TestVerificationComplete(t *testing.T) {
	v := VerificationImages{IDImage: "a", OwnershipImage: "b", HouseImage: "c"}
	if !v.Complete() {
		t.Error("complete verification reported incomplete")
	}
	v.HouseImage = ""
	if v.Complete() {
		t.Error("incomplete verification reported complete")
	}
}

func TestSetEntriesUnknownCategory(t *testing.T) {
	s := NewPropertySurvey()
	if err := s.SetEntries(Category("garage"), nil); err == nil {
		t.Error("expected error for unknown category")
	}
}
