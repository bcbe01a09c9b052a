package survey

import (
	"errors"
	"fmt"
)

// MaxEntries is the upper bound of the entry-count slider.
const MaxEntries = 10

// ErrIncompleteEntry is returned by Save when an entry is missing a
// name or has no image attached.
var ErrIncompleteEntry = errors.New("every entry needs a name and at least one image")

// Editor collects the room entries for a single category screen. The
// operator picks a count on [0,10], names each entry, and attaches one
// captured image per entry; Save folds the result into the carried
// fragment as a Patch.
type Editor struct {
	category Category
	title    string
	entries  []RoomEntry
}

// NewEditor creates an editor for one category. The title seeds the
// default entry names.
func NewEditor(category Category, title string) (*Editor, error) {
	if !ValidCategory(string(category)) {
		return nil, fmt.Errorf("unknown category: %s", category)
	}
	if title == "" {
		title = category.Title()
	}
	return &Editor{category: category, title: title, entries: []RoomEntry{}}, nil
}

// Category returns the category this editor edits.
func (e *Editor) Category() Category { return e.category }

// Count returns the current number of entries.
func (e *Editor) Count() int { return len(e.entries) }

// Entries returns a copy of the current entries.
func (e *Editor) Entries() []RoomEntry {
	out := make([]RoomEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Resize sets the entry count. Shrinking discards the trailing entries
// outright; growing fabricates default-named empty entries. Growing
// back never restores what a shrink discarded.
func (e *Editor) Resize(count int) error {
	if count < 0 || count > MaxEntries {
		return fmt.Errorf("count must be 0-%d, got %d", MaxEntries, count)
	}

	if count <= len(e.entries) {
		e.entries = e.entries[:count]
		return nil
	}

	for i := len(e.entries); i < count; i++ {
		e.entries = append(e.entries, RoomEntry{
			Name:   fmt.Sprintf("%s %d", e.title, i+1),
			Images: []string{},
		})
	}
	return nil
}

// Rename sets the name of the entry at index.
func (e *Editor) Rename(index int, name string) error {
	if index < 0 || index >= len(e.entries) {
		return fmt.Errorf("entry index %d out of range", index)
	}
	e.entries[index].Name = name
	return nil
}

// AttachImage binds an uploaded image reference to the entry at index.
func (e *Editor) AttachImage(index int, imageRef string) error {
	if index < 0 || index >= len(e.entries) {
		return fmt.Errorf("entry index %d out of range", index)
	}
	if imageRef == "" {
		return fmt.Errorf("empty image reference")
	}
	e.entries[index].Images = append(e.entries[index].Images, imageRef)
	return nil
}

// Save validates every entry and returns the category patch to merge
// into the carried fragment. Validation failure leaves the entries
// untouched for correction.
func (e *Editor) Save() (Patch, error) {
	for i, entry := range e.entries {
		if entry.Name == "" || len(entry.Images) == 0 {
			return Patch{}, fmt.Errorf("entry %d (%s): %w", i+1, e.category, ErrIncompleteEntry)
		}
	}

	return Patch{
		Categories: map[Category][]RoomEntry{e.category: e.Entries()},
	}, nil
}
