package state

import (
	"reflect"
	"sort"
	"testing"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
)

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())
	before := r.Len()

	c := r.Add("Gaming", "text-pink-500", "Heart")
	if c.ID == "" {
		t.Fatal("Add did not assign an id")
	}
	if r.Len() != before+1 {
		t.Fatalf("Len = %d, want %d", r.Len(), before+1)
	}
	got, ok := r.Get(c.ID)
	if !ok || got.Name != "Gaming" || got.Color != "text-pink-500" || got.IconName != "Heart" {
		t.Fatalf("Get(%q) = %+v, %v", c.ID, got, ok)
	}
}

func TestRegistryAddAllowsDuplicateNames(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())
	a := r.Add("Gaming", "text-pink-500", "Heart")
	b := r.Add("Gaming", "text-teal-500", "Gamepad2")
	if a.ID == b.ID {
		t.Fatal("two added categories share an id")
	}
	if r.Len() != len(models.DefaultCategories())+2 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())

	work, _ := r.Get("work")
	work.Name = "Deep Work"
	if !r.Update(work) {
		t.Fatal("Update returned false for a known id")
	}
	got, _ := r.Get("work")
	if got.Name != "Deep Work" {
		t.Fatalf("name = %q, want Deep Work", got.Name)
	}

	if r.Update(models.Category{ID: "nope", Name: "x"}) {
		t.Fatal("Update returned true for an unknown id")
	}
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())

	if !r.Delete("work") {
		t.Fatal("Delete returned false for a known id")
	}
	if _, ok := r.Get("work"); ok {
		t.Fatal("deleted category still present")
	}
	if r.Delete("work") {
		t.Fatal("Delete returned true for an already-deleted id")
	}
}

func TestRegistryDeleteSentinelIsNoOp(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())
	before := r.Len()

	if r.Delete(models.OtherCategoryID) {
		t.Fatal("Delete returned true for the sentinel")
	}
	if r.Len() != before {
		t.Fatalf("Len changed: %d -> %d", before, r.Len())
	}
	if _, ok := r.Get(models.OtherCategoryID); !ok {
		t.Fatal("sentinel missing after attempted delete")
	}
}

func TestRestoreDefaultsOnEmptySet(t *testing.T) {
	r := NewRegistry(nil)
	r.RestoreDefaults()

	if r.Len() != len(models.DefaultCategories()) {
		t.Fatalf("Len = %d, want %d", r.Len(), len(models.DefaultCategories()))
	}
	if _, ok := r.Get(models.OtherCategoryID); !ok {
		t.Fatal("sentinel missing after restore")
	}
}

func TestRestoreDefaultsKeepsExisting(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())
	custom := r.Add("Gaming", "text-pink-500", "Heart")

	r.RestoreDefaults()

	got, ok := r.Get(custom.ID)
	if !ok {
		t.Fatal("custom category lost by restore")
	}
	if !reflect.DeepEqual(got, custom) {
		t.Fatalf("custom category changed: %+v != %+v", got, custom)
	}
	// Full default set still present once each
	if r.Len() != len(models.DefaultCategories())+1 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestRestoreDefaultsIsNameKeyed(t *testing.T) {
	// A default renamed away from its default name is not "the default"
	// anymore: restore re-introduces the original alongside it.
	r := NewRegistry(models.DefaultCategories())
	work, _ := r.Get("work")
	work.Name = "Job"
	r.Update(work)

	r.RestoreDefaults()

	var workIDs, jobIDs []string
	for _, c := range r.All() {
		switch c.Name {
		case "Work":
			workIDs = append(workIDs, c.ID)
		case "Job":
			jobIDs = append(jobIDs, c.ID)
		}
	}
	if len(workIDs) != 1 || len(jobIDs) != 1 {
		t.Fatalf("got %d Work and %d Job categories, want 1 and 1", len(workIDs), len(jobIDs))
	}
	// The renamed copy keeps the well-known id, the re-introduced default
	// gets a fresh one
	if jobIDs[0] != "work" {
		t.Fatalf("renamed copy has id %q, want work", jobIDs[0])
	}
	if workIDs[0] == "work" || workIDs[0] == "" {
		t.Fatalf("re-introduced default has id %q, want a fresh id", workIDs[0])
	}
	seen := map[string]int{}
	for _, c := range r.All() {
		seen[c.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("id %q appears %d times", id, n)
		}
	}
}

func TestRestoreDefaultsIdempotent(t *testing.T) {
	r := NewRegistry(models.DefaultCategories())
	r.Add("Gaming", "text-pink-500", "Heart")
	work, _ := r.Get("work")
	work.Name = "Job"
	r.Update(work)

	r.RestoreDefaults()
	once := namesOf(r.All())
	r.RestoreDefaults()
	twice := namesOf(r.All())

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("restore is not idempotent: %v != %v", once, twice)
	}
}

func TestRestoreDefaultsAppendsAfterExisting(t *testing.T) {
	r := NewRegistry([]models.Category{
		{ID: "c1", Name: "Chores", Color: "text-teal-500", IconName: "Utensils"},
	})
	r.RestoreDefaults()

	all := r.All()
	if all[0].ID != "c1" {
		t.Fatalf("existing category not first: %+v", all[0])
	}
	for i, d := range models.DefaultCategories() {
		if all[i+1].ID != d.ID {
			t.Fatalf("default %q not appended in order, got %q", d.ID, all[i+1].ID)
		}
	}
}

func TestDedupeByID(t *testing.T) {
	in := []models.Category{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "a", Name: "duplicate"},
		{ID: "c", Name: "third"},
		{ID: "b", Name: "duplicate"},
	}

	out := DedupeByID(in)
	wantIDs := []string{"a", "b", "c"}
	if len(out) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(out), len(wantIDs))
	}
	for i, id := range wantIDs {
		if out[i].ID != id {
			t.Fatalf("out[%d].ID = %q, want %q", i, out[i].ID, id)
		}
	}
	if out[0].Name != "first" {
		t.Fatalf("dedupe kept %q, want the first occurrence", out[0].Name)
	}

	// Idempotent
	again := DedupeByID(out)
	if !reflect.DeepEqual(again, out) {
		t.Fatal("dedupe is not idempotent")
	}
}

func namesOf(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
