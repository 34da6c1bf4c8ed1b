package state

import (
	"github.com/google/uuid"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
)

// Registry owns the category set. Exactly one entry, the "Other" category,
// is protected: Delete refuses to remove it, and RestoreDefaults guarantees
// it is present. Names are not unique; identity is the id alone.
type Registry struct {
	categories []models.Category
}

func NewRegistry(categories []models.Category) *Registry {
	return &Registry{categories: DedupeByID(categories)}
}

// All returns a copy of the category set in insertion order.
func (r *Registry) All() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

func (r *Registry) Len() int {
	return len(r.categories)
}

// Get looks a category up by id.
func (r *Registry) Get(id string) (models.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// First returns the first category in the set. Used as the timer's fallback
// selection when the previously selected category no longer exists.
func (r *Registry) First() (models.Category, bool) {
	if len(r.categories) == 0 {
		return models.Category{}, false
	}
	return r.categories[0], true
}

// Sentinel resolves the protected "Other" category, falling back to the
// first entry if a hand-edited import removed it.
func (r *Registry) Sentinel() (models.Category, bool) {
	if c, ok := r.Get(models.OtherCategoryID); ok {
		return c, true
	}
	return r.First()
}

// Add appends a new category with a fresh id.
func (r *Registry) Add(name, color, iconName string) models.Category {
	c := models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Color:    color,
		IconName: iconName,
	}
	r.categories = append(r.categories, c)
	return c
}

// Update replaces the entry matching updated.ID. Returns false if no entry
// matches.
func (r *Registry) Update(updated models.Category) bool {
	for i, c := range r.categories {
		if c.ID == updated.ID {
			r.categories[i] = updated
			return true
		}
	}
	return false
}

// Delete removes the entry with the given id. Deleting the sentinel or an
// unknown id is a no-op and returns false.
func (r *Registry) Delete(id string) bool {
	if id == models.OtherCategoryID {
		return false
	}
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps the whole category set, deduplicating by id. Used by import.
func (r *Registry) Replace(categories []models.Category) {
	r.categories = DedupeByID(categories)
}

// RestoreDefaults re-introduces any default category whose name (exact,
// case-sensitive) is absent from the current set. Existing categories are
// left untouched in their original order; missing defaults are appended
// after them. A category the user renamed away from a default name is not
// treated as that default, so restoring brings the original back alongside
// the renamed copy. The renamed copy still occupies the well-known id, so
// the re-introduced default gets a fresh id in that case to keep ids
// unique.
func (r *Registry) RestoreDefaults() {
	names := make(map[string]struct{}, len(r.categories))
	ids := make(map[string]struct{}, len(r.categories))
	for _, c := range r.categories {
		names[c.Name] = struct{}{}
		ids[c.ID] = struct{}{}
	}

	for _, d := range models.DefaultCategories() {
		if _, ok := names[d.Name]; ok {
			continue
		}
		if _, ok := ids[d.ID]; ok {
			d.ID = uuid.New().String()
		}
		r.categories = append(r.categories, d)
		ids[d.ID] = struct{}{}
	}
}

// DedupeByID removes duplicate ids from a category list, keeping the first
// occurrence of each and preserving order.
func DedupeByID(categories []models.Category) []models.Category {
	seen := make(map[string]struct{}, len(categories))
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
