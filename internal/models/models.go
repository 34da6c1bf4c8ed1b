package models

import (
	"time"
)

// OtherCategoryID is the id of the protected "Other" category. It is
// guaranteed to exist in any non-empty category set and is the fallback
// target when another category is deleted.
const OtherCategoryID = "other"

// UntitledActivity is the placeholder name for activities logged without one.
const UntitledActivity = "Untitled Activity"

// Category is a named, colored, iconized tag used to classify activities.
// Color and IconName are symbolic tokens; rendering them is the UI's job.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	IconName string `json:"iconName"`
}

// Activity is one completed, named, categorized time interval.
// Category is a denormalized copy of the category as it existed at logging
// time; the state layer keeps it in sync with later category edits.
type Activity struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	StartTime int64    `json:"startTime"` // epoch milliseconds
	EndTime   int64    `json:"endTime"`   // epoch milliseconds
	Duration  int64    `json:"duration"`  // seconds
}

// Document is the persisted/exported shape: the full activity log plus the
// category set, nothing derived.
type Document struct {
	Activities []Activity `json:"activities"`
	Categories []Category `json:"categories"`
}

// Start returns the activity's start instant in local time.
func (a Activity) Start() time.Time {
	return time.UnixMilli(a.StartTime)
}

// End returns the activity's end instant in local time.
func (a Activity) End() time.Time {
	return time.UnixMilli(a.EndTime)
}

// DefaultCategories returns the built-in category seed. The slice is fresh
// on every call so callers can append without aliasing.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "text-blue-500", IconName: "Briefcase"},
		{ID: "learning", Name: "Learning", Color: "text-green-500", IconName: "BookOpen"},
		{ID: "exercise", Name: "Exercise", Color: "text-red-500", IconName: "Dumbbell"},
		{ID: "personal", Name: "Personal", Color: "text-purple-500", IconName: "User"},
		{ID: OtherCategoryID, Name: "Other", Color: "text-gray-500", IconName: "MoreHorizontal"},
	}
}

// ColorTokens lists the selectable color tokens, in palette order.
func ColorTokens() []string {
	return []string{
		"text-blue-500",
		"text-green-500",
		"text-red-500",
		"text-purple-500",
		"text-yellow-500",
		"text-pink-500",
		"text-orange-500",
		"text-teal-500",
		"text-gray-500",
	}
}
