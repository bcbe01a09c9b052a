// Package tenant provides the tenant domain model, the corner history
// accumulator, and tenant data access.
package tenant

import (
	"fmt"
	"time"

	"github.com/homedoc/homedoc/internal/survey"
)

// Corner is one dated tenant capture of a house area. Immutable once
// created; corners are appended, never edited or removed.
type Corner struct {
	Side       int              `json:"side"`
	Room       survey.RoomEntry `json:"room"`
	CapturedAt time.Time        `json:"capturedAt"`
}

// HouseImages maps each survey category to its growing corner history.
// Every list grows monotonically over the tenancy.
type HouseImages struct {
	Bedrooms         []Corner `json:"bedrooms,omitempty"`
	Bathrooms        []Corner `json:"bathrooms,omitempty"`
	Kitchen          []Corner `json:"kitchen,omitempty"`
	LivingRooms      []Corner `json:"livingRooms,omitempty"`
	ExternalView     []Corner `json:"externalView,omitempty"`
	AddRooms         []Corner `json:"addRooms,omitempty"`
	AddExternalSpace []Corner `json:"addExternalSpace,omitempty"`
}

// Corners returns the corner history for a category.
func (h *HouseImages) Corners(c survey.Category) []Corner {
	switch c {
	case survey.Bedrooms:
		return h.Bedrooms
	case survey.Bathrooms:
		return h.Bathrooms
	case survey.Kitchen:
		return h.Kitchen
	case survey.LivingRooms:
		return h.LivingRooms
	case survey.ExternalView:
		return h.ExternalView
	case survey.AddRooms:
		return h.AddRooms
	case survey.AddExternalSpace:
		return h.AddExternalSpace
	}
	return nil
}

// Append adds a corner to a category's history.
func (h *HouseImages) Append(c survey.Category, corner Corner) error {
	switch c {
	case survey.Bedrooms:
		h.Bedrooms = append(h.Bedrooms, corner)
	case survey.Bathrooms:
		h.Bathrooms = append(h.Bathrooms, corner)
	case survey.Kitchen:
		h.Kitchen = append(h.Kitchen, corner)
	case survey.LivingRooms:
		h.LivingRooms = append(h.LivingRooms, corner)
	case survey.ExternalView:
		h.ExternalView = append(h.ExternalView, corner)
	case survey.AddRooms:
		h.AddRooms = append(h.AddRooms, corner)
	case survey.AddExternalSpace:
		h.AddExternalSpace = append(h.AddExternalSpace, corner)
	default:
		return fmt.Errorf("unknown category: %s", c)
	}
	return nil
}

// Problem is a tenant-reported issue: an annotated image plus a
// description. Appended to the tenant's problem list, never edited.
type Problem struct {
	ImageURL    string `json:"imageURL"`
	Description string `json:"description"`
}

// Info is the tenant sub-record persisted per tenant. HouseImages and
// Problems default to empty and only ever grow.
type Info struct {
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	OTP         string      `json:"otp,omitempty"`
	SurveyKey   string      `json:"surveyKey,omitempty"`
	HouseImages HouseImages `json:"houseImages"`
	Problems    []Problem   `json:"problems,omitempty"`
}
