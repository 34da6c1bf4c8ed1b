package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(store.NewStorage(t.TempDir()))
	app.Load()
	return app
}

func TestAppStartsWithDefaults(t *testing.T) {
	app := newTestApp(t)

	if !app.Loaded() {
		t.Fatal("Loaded = false after Load")
	}
	if len(app.Activities()) != 0 {
		t.Fatal("fresh app has activities")
	}
	if len(app.Categories()) != len(models.DefaultCategories()) {
		t.Fatalf("fresh app has %d categories", len(app.Categories()))
	}
}

func TestLogActivityEmptyNameGetsPlaceholder(t *testing.T) {
	app := newTestApp(t)
	c, _ := app.Category("work")

	logged := app.LogActivity(models.Activity{
		Category:  c,
		StartTime: 1000,
		EndTime:   3000,
		Duration:  2,
	})

	if logged.Name != models.UntitledActivity {
		t.Fatalf("name = %q, want %q", logged.Name, models.UntitledActivity)
	}
	if logged.ID == "" {
		t.Fatal("no id assigned")
	}
}

func TestCategoryLifecycleScenario(t *testing.T) {
	// Add a category, log under it, rename it, then delete it: the logged
	// activity follows every step and ends up under the sentinel.
	app := newTestApp(t)
	before := len(app.Categories())

	gaming := app.AddCategory("Gaming", "text-pink-500", "Heart")
	if len(app.Categories()) != before+1 {
		t.Fatalf("category count = %d, want %d", len(app.Categories()), before+1)
	}

	app.LogActivity(models.Activity{
		Name:      "Elden Ring",
		Category:  gaming,
		StartTime: time.Now().UnixMilli(),
		EndTime:   time.Now().UnixMilli() + 2000,
		Duration:  2,
	})

	gaming.Name = "Gaming2"
	app.UpdateCategory(gaming)
	if got := app.Activities()[0].Category.Name; got != "Gaming2" {
		t.Fatalf("embedded name = %q, want Gaming2", got)
	}

	app.DeleteCategory(gaming.ID)
	got := app.Activities()[0].Category
	if got.ID != models.OtherCategoryID || got.Name != "Other" {
		t.Fatalf("embedded category = %+v, want the sentinel", got)
	}
	if _, ok := app.Category(gaming.ID); ok {
		t.Fatal("deleted category still resolvable")
	}
}

func TestUpdateCategoryPropagatesColorAndIcon(t *testing.T) {
	app := newTestApp(t)
	c, _ := app.Category("work")
	app.LogActivity(models.Activity{Name: "x", Category: c, StartTime: 1, EndTime: 1001, Duration: 1})

	c.Color = "text-orange-500"
	c.IconName = "Car"
	app.UpdateCategory(c)

	got := app.Activities()[0].Category
	if got.Color != "text-orange-500" || got.IconName != "Car" {
		t.Fatalf("embedded copy not refreshed: %+v", got)
	}
}

func TestDeleteSentinelCategoryIsNoOp(t *testing.T) {
	app := newTestApp(t)
	before := len(app.Categories())

	app.DeleteCategory(models.OtherCategoryID)

	if len(app.Categories()) != before {
		t.Fatalf("category count changed: %d -> %d", before, len(app.Categories()))
	}
}

func TestRestoreDefaultsLeavesLedgerAlone(t *testing.T) {
	app := newTestApp(t)
	gaming := app.AddCategory("Gaming", "text-pink-500", "Heart")
	app.LogActivity(models.Activity{Name: "x", Category: gaming, StartTime: 1, EndTime: 1001, Duration: 1})

	app.DeleteCategory(gaming.ID)
	app.RestoreDefaultCategories()

	// The activity keeps its sentinel copy, it is not re-pointed anywhere
	if got := app.Activities()[0].Category.ID; got != models.OtherCategoryID {
		t.Fatalf("embedded category id = %q", got)
	}
}

func TestRestoreDefaultsReintroducesRenamedDefault(t *testing.T) {
	app := newTestApp(t)
	job, _ := app.Category("work")
	job.Name = "Job"
	app.UpdateCategory(job)

	app.RestoreDefaultCategories()

	var workIDs []string
	jobID := ""
	for _, c := range app.Categories() {
		switch c.Name {
		case "Work":
			workIDs = append(workIDs, c.ID)
		case "Job":
			jobID = c.ID
		}
	}
	if jobID != "work" {
		t.Fatalf("renamed copy has id %q, want work", jobID)
	}
	if len(workIDs) != 1 {
		t.Fatalf("got %d Work categories, want 1", len(workIDs))
	}
	if workIDs[0] == "work" {
		t.Fatal("re-introduced Work reuses the occupied id")
	}
}

func TestCategoryUsage(t *testing.T) {
	app := newTestApp(t)
	c, _ := app.Category("work")
	app.LogActivity(models.Activity{Name: "x", Category: c, StartTime: 1, EndTime: 1001, Duration: 1})

	for _, cu := range app.CategoryUsage() {
		if cu.ID == "work" && !cu.IsUsed {
			t.Fatal("work not flagged as used")
		}
		if cu.ID == "learning" && cu.IsUsed {
			t.Fatal("learning flagged as used")
		}
	}
}

func TestImportRejectsBadDocuments(t *testing.T) {
	app := newTestApp(t)
	c, _ := app.Category("work")
	app.LogActivity(models.Activity{Name: "keep me", Category: c, StartTime: 1, EndTime: 1001, Duration: 1})

	cases := []struct {
		name string
		data string
	}{
		{"not json", "{oops"},
		{"missing activities", `{"categories": []}`},
		{"missing categories", `{"activities": []}`},
		{"categories not an array", `{"activities": [], "categories": 5}`},
		{"null collections", `{"activities": null, "categories": null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := app.Import([]byte(tc.data)); err == nil {
				t.Fatal("Import accepted an invalid document")
			}
			// State untouched
			if len(app.Activities()) != 1 || app.Activities()[0].Name != "keep me" {
				t.Fatal("failed import mutated state")
			}
		})
	}
}

func TestImportReplacesWholesaleAndDedupes(t *testing.T) {
	app := newTestApp(t)
	app.AddCategory("Doomed", "text-red-500", "Car")

	doc := `{
		"activities": [
			{"id": "a1", "name": "Imported", "startTime": 1000, "endTime": 3000, "duration": 2,
			 "category": {"id": "x", "name": "X", "color": "text-teal-500", "iconName": "Music"}}
		],
		"categories": [
			{"id": "x", "name": "X", "color": "text-teal-500", "iconName": "Music"},
			{"id": "x", "name": "X duplicate", "color": "text-red-500", "iconName": "Car"},
			{"id": "other", "name": "Other", "color": "text-gray-500", "iconName": "MoreHorizontal"}
		]
	}`
	if err := app.Import([]byte(doc)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	categories := app.Categories()
	if len(categories) != 2 {
		t.Fatalf("got %d categories, want 2 (duplicate id dropped)", len(categories))
	}
	if categories[0].Name != "X" {
		t.Fatalf("dedupe kept %q, want the first occurrence", categories[0].Name)
	}
	activities := app.Activities()
	if len(activities) != 1 || activities[0].Name != "Imported" {
		t.Fatalf("activities = %+v", activities)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	app := newTestApp(t)
	gaming := app.AddCategory("Gaming", "text-pink-500", "Heart")
	app.LogActivity(models.Activity{
		Name:      "session",
		Category:  gaming,
		StartTime: 1700000000000,
		EndTime:   1700000002000,
		Duration:  2,
	})

	data, err := app.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	// The export carries only persisted fields
	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, c := range raw["categories"] {
		if _, ok := c["isUsed"]; ok {
			t.Fatal("export leaked the derived isUsed flag")
		}
	}

	other := NewApp(store.NewStorage(t.TempDir()))
	other.Load()
	if err := other.Import(data); err != nil {
		t.Fatalf("Import of own export: %v", err)
	}

	if len(other.Activities()) != 1 || other.Activities()[0].Name != "session" {
		t.Fatalf("activities after round trip: %+v", other.Activities())
	}
	if len(other.Categories()) != len(app.Categories()) {
		t.Fatalf("categories after round trip: %d != %d", len(other.Categories()), len(app.Categories()))
	}
}

func TestSaveIsGatedOnLoad(t *testing.T) {
	dir := t.TempDir()
	storage := store.NewStorage(dir)

	// Seed the store with real data
	seeded := NewApp(storage)
	seeded.Load()
	c, _ := seeded.Category("work")
	seeded.LogActivity(models.Activity{Name: "precious", Category: c, StartTime: 1, EndTime: 1001, Duration: 1})

	// A second app over the same store that mutates BEFORE Load must not
	// clobber the stored document with its empty in-memory state.
	early := NewApp(storage)
	early.DeleteActivity("whatever")
	early.AddCategory("Noise", "text-red-500", "Car")

	reloaded := NewApp(storage)
	reloaded.Load()
	if len(reloaded.Activities()) != 1 || reloaded.Activities()[0].Name != "precious" {
		t.Fatal("pre-load mutation clobbered persisted data")
	}
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	app := NewApp(store.NewStorage(dir))
	app.Load()
	gaming := app.AddCategory("Gaming", "text-pink-500", "Heart")
	app.LogActivity(models.Activity{Name: "x", Category: gaming, StartTime: 1, EndTime: 1001, Duration: 1})

	restarted := NewApp(store.NewStorage(dir))
	restarted.Load()
	if _, ok := restarted.Category(gaming.ID); !ok {
		t.Fatal("added category not persisted")
	}
	if len(restarted.Activities()) != 1 {
		t.Fatal("logged activity not persisted")
	}
}
