// Package survey provides the property survey domain model, the wizard
// aggregation protocol, and survey data access.
package survey

import (
	"fmt"
	"strings"
)

// Category is one of the seven fixed room/space classifications a
// survey collects.
type Category string

const (
	Bedrooms         Category = "bedrooms"
	Bathrooms        Category = "bathrooms"
	Kitchen          Category = "kitchen"
	LivingRooms      Category = "livingRooms"
	ExternalView     Category = "externalView"
	AddRooms         Category = "addRooms"
	AddExternalSpace Category = "addExternalSpace"
)

// Categories lists every category in wizard order.
var Categories = []Category{
	Bedrooms,
	Bathrooms,
	Kitchen,
	LivingRooms,
	ExternalView,
	AddRooms,
	AddExternalSpace,
}

// ValidCategory returns true if s names a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case Bedrooms, Bathrooms, Kitchen, LivingRooms, ExternalView, AddRooms, AddExternalSpace:
		return true
	}
	return false
}

// Title returns a human-readable label for the category.
func (c Category) Title() string {
	switch c {
	case Bedrooms:
		return "Bedroom"
	case Bathrooms:
		return "Bathroom"
	case Kitchen:
		return "Kitchen"
	case LivingRooms:
		return "Living Room"
	case ExternalView:
		return "External View"
	case AddRooms:
		return "Additional Room"
	case AddExternalSpace:
		return "Additional External Space"
	default:
		return string(c)
	}
}

// RoomEntry is one physical room or space instance within a category.
// Images hold durable references to already-uploaded captures, never
// raw bytes.
type RoomEntry struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

// VerificationImages holds the three identity/ownership captures
// required before a survey can be committed.
type VerificationImages struct {
	IDImage        string `json:"idImageUrl,omitempty"`
	OwnershipImage string `json:"ownershipImageUrl,omitempty"`
	HouseImage     string `json:"houseImageUrl,omitempty"`
}

// Complete returns true when all three images are present.
func (v VerificationImages) Complete() bool {
	return v.IDImage != "" && v.OwnershipImage != "" && v.HouseImage != ""
}

// Address is the five-part structured property address. Joined with
// "|" it doubles as the survey's durable document key.
type Address struct {
	State          string `json:"state"`
	City           string `json:"city"`
	Street         string `json:"street"`
	HouseNumber    string `json:"houseNumber"`
	ApartmentEntry string `json:"apartmentEntry"`
}

// Complete returns true when every address field is non-empty.
func (a Address) Complete() bool {
	return a.State != "" && a.City != "" && a.Street != "" &&
		a.HouseNumber != "" && a.ApartmentEntry != ""
}

// Key derives the survey document key. A "|" inside a field corrupts
// key parsing; that is a known product-level gap, not rejected here.
func (a Address) Key() string {
	return strings.Join([]string{a.State, a.City, a.Street, a.HouseNumber, a.ApartmentEntry}, "|")
}

// TenantRef is the tenant assignment recorded on a committed survey.
type TenantRef struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp,omitempty"`
}

// PropertySurvey is the aggregate accumulated across the wizard
// screens. Every category key is always present, possibly as an empty
// list; no category may be dropped on a serialization round trip.
type PropertySurvey struct {
	Bedrooms         []RoomEntry        `json:"bedrooms"`
	Bathrooms        []RoomEntry        `json:"bathrooms"`
	Kitchen          []RoomEntry        `json:"kitchen"`
	LivingRooms      []RoomEntry        `json:"livingRooms"`
	ExternalView     []RoomEntry        `json:"externalView"`
	AddRooms         []RoomEntry        `json:"addRooms"`
	AddExternalSpace []RoomEntry        `json:"addExternalSpace"`
	Verification     VerificationImages `json:"landlordVerificationData"`
	Address          Address            `json:"address"`
	TenantInfo       *TenantRef         `json:"tenantInfo,omitempty"`
}

// NewPropertySurvey returns the all-empty default aggregate.
func NewPropertySurvey() *PropertySurvey {
	s := &PropertySurvey{}
	s.normalize()
	return s
}

// Entries returns the room list for a category.
func (s *PropertySurvey) Entries(c Category) []RoomEntry {
	switch c {
	case Bedrooms:
		return s.Bedrooms
	case Bathrooms:
		return s.Bathrooms
	case Kitchen:
		return s.Kitchen
	case LivingRooms:
		return s.LivingRooms
	case ExternalView:
		return s.ExternalView
	case AddRooms:
		return s.AddRooms
	case AddExternalSpace:
		return s.AddExternalSpace
	}
	return nil
}

// SetEntries replaces the room list for a category.
func (s *PropertySurvey) SetEntries(c Category, entries []RoomEntry) error {
	if entries == nil {
		entries = []RoomEntry{}
	}
	switch c {
	case Bedrooms:
		s.Bedrooms = entries
	case Bathrooms:
		s.Bathrooms = entries
	case Kitchen:
		s.Kitchen = entries
	case LivingRooms:
		s.LivingRooms = entries
	case ExternalView:
		s.ExternalView = entries
	case AddRooms:
		s.AddRooms = entries
	case AddExternalSpace:
		s.AddExternalSpace = entries
	default:
		return fmt.Errorf("unknown category: %s", c)
	}
	return nil
}

// normalize ensures every category list is non-nil so serialized
// fragments always carry all seven keys.
func (s *PropertySurvey) normalize() {
	for _, c := range Categories {
		if s.Entries(c) == nil {
			// SetEntries never fails for a known category.
			_ = s.SetEntries(c, []RoomEntry{})
		}
	}
}
