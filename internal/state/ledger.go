package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
)

// Ledger owns the activity log, newest first. Entries embed a copy of the
// category they were logged under; keeping those copies in sync with
// category edits is the facade's job, via ReassignCategory.
type Ledger struct {
	activities []models.Activity
}

func NewLedger(activities []models.Activity) *Ledger {
	return &Ledger{activities: activities}
}

// All returns a copy of the log in canonical (newest first) order.
func (l *Ledger) All() []models.Activity {
	out := make([]models.Activity, len(l.activities))
	copy(out, l.activities)
	return out
}

func (l *Ledger) Len() int {
	return len(l.activities)
}

// Append assigns a fresh id and inserts the activity at the head of the
// log. The log is kept newest-first and never re-sorted elsewhere.
func (l *Ledger) Append(a models.Activity) models.Activity {
	a.ID = uuid.New().String()
	l.activities = append([]models.Activity{a}, l.activities...)
	return a
}

// Update replaces the name and category of the entry matching id. Start,
// end and duration are immutable once logged. Unknown ids are a no-op.
func (l *Ledger) Update(id, name string, category models.Category) bool {
	for i, a := range l.activities {
		if a.ID == id {
			l.activities[i].Name = name
			l.activities[i].Category = category
			return true
		}
	}
	return false
}

// Delete removes the entry matching id. Unknown ids are a no-op.
func (l *Ledger) Delete(id string) bool {
	for i, a := range l.activities {
		if a.ID == id {
			l.activities = append(l.activities[:i], l.activities[i+1:]...)
			return true
		}
	}
	return false
}

// ReassignCategory replaces the embedded category on every activity logged
// under oldID. It serves both rename propagation (newCategory keeps the
// same id with updated fields) and delete reassignment (newCategory is the
// sentinel).
func (l *Ledger) ReassignCategory(oldID string, newCategory models.Category) int {
	n := 0
	for i, a := range l.activities {
		if a.Category.ID == oldID {
			l.activities[i].Category = newCategory
			n++
		}
	}
	return n
}

// Replace swaps the whole log. Used by import.
func (l *Ledger) Replace(activities []models.Activity) {
	l.activities = activities
}

// ForDay returns the activities whose start instant falls on the same local
// calendar date as day. Pure projection over the full log; end time does
// not matter.
func (l *Ledger) ForDay(day time.Time) []models.Activity {
	y, m, d := day.Date()
	var out []models.Activity
	for _, a := range l.activities {
		ay, am, ad := a.Start().Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}
	return out
}

// UsageOf reports whether any activity references the given category id.
func (l *Ledger) UsageOf(categoryID string) bool {
	for _, a := range l.activities {
		if a.Category.ID == categoryID {
			return true
		}
	}
	return false
}
