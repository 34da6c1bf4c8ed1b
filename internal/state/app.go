package state

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/store"
)

// ErrInvalidFormat is returned by Import when the document does not carry
// both an activities array and a categories array.
var ErrInvalidFormat = errors.New("invalid data file format")

// CategoryUsage is a category annotated with whether any logged activity
// still references it. Derived, never persisted.
type CategoryUsage struct {
	models.Category
	IsUsed bool
}

// App is the single mutation/query surface over the category registry, the
// activity ledger and the persistence gateway. All UI components read
// derived views from it and mutate through it; none of them hold
// authoritative state. Every successful mutation is followed by exactly one
// full-snapshot save, and saves are gated on Loaded so a save can never
// fire with seed data before the startup load has run.
type App struct {
	mu       sync.Mutex
	registry *Registry
	ledger   *Ledger
	gateway  *Gateway
	loaded   bool

	// OnChange, if set, is invoked after every mutation, outside the
	// lock. The UI uses it to refresh lists.
	OnChange func()
}

func NewApp(s *store.Storage) *App {
	return &App{
		registry: NewRegistry(nil),
		ledger:   NewLedger(nil),
		gateway:  NewGateway(s),
	}
}

// Load performs the one-time startup read. Until it has run, Loaded
// reports false and mutations are accepted but not persisted.
func (app *App) Load() {
	app.mu.Lock()
	defer app.mu.Unlock()

	doc := app.gateway.Load()
	app.registry = NewRegistry(doc.Categories)
	app.ledger = NewLedger(doc.Activities)
	app.loaded = true
}

// Loaded reports whether the startup load has completed.
func (app *App) Loaded() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.loaded
}

// save must be called with the lock held.
func (app *App) save() {
	if !app.loaded {
		return
	}
	app.gateway.Save(models.Document{
		Activities: app.ledger.All(),
		Categories: app.registry.All(),
	})
}

func (app *App) changed() {
	if app.OnChange != nil {
		app.OnChange()
	}
}

// Activities returns the full log, newest first.
func (app *App) Activities() []models.Activity {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.ledger.All()
}

// Categories returns the category set in insertion order.
func (app *App) Categories() []models.Category {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.registry.All()
}

// Category looks a category up by id.
func (app *App) Category(id string) (models.Category, bool) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.registry.Get(id)
}

// FirstCategory returns the first category, the timer's default selection.
func (app *App) FirstCategory() (models.Category, bool) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.registry.First()
}

// DailyActivities returns the activities started today, local time.
func (app *App) DailyActivities() []models.Activity {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.ledger.ForDay(time.Now())
}

// ActivitiesForDay returns the activities started on the given local date.
func (app *App) ActivitiesForDay(day time.Time) []models.Activity {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.ledger.ForDay(day)
}

// CategoryUsage returns every category flagged with whether the log still
// references it.
func (app *App) CategoryUsage() []CategoryUsage {
	app.mu.Lock()
	defer app.mu.Unlock()

	out := make([]CategoryUsage, 0, app.registry.Len())
	for _, c := range app.registry.All() {
		out = append(out, CategoryUsage{Category: c, IsUsed: app.ledger.UsageOf(c.ID)})
	}
	return out
}

// LogActivity appends a completed interval to the ledger. An empty name is
// replaced with the placeholder. The embedded category copy is taken as
// given: it is authoritative for log time even if the category has since
// been edited or removed.
func (app *App) LogActivity(a models.Activity) models.Activity {
	app.mu.Lock()
	if a.Name == "" {
		a.Name = models.UntitledActivity
	}
	logged := app.ledger.Append(a)
	app.save()
	app.mu.Unlock()
	app.changed()
	return logged
}

// UpdateActivity patches the name and category of a logged activity.
// Unknown ids are a no-op.
func (app *App) UpdateActivity(id, name string, category models.Category) {
	app.mu.Lock()
	if name == "" {
		name = models.UntitledActivity
	}
	if app.ledger.Update(id, name, category) {
		app.save()
	}
	app.mu.Unlock()
	app.changed()
}

// DeleteActivity removes a logged activity. Unknown ids are a no-op.
func (app *App) DeleteActivity(id string) {
	app.mu.Lock()
	if app.ledger.Delete(id) {
		app.save()
	}
	app.mu.Unlock()
	app.changed()
}

// AddCategory creates a new category. Names are not required to be unique.
func (app *App) AddCategory(name, color, iconName string) models.Category {
	app.mu.Lock()
	c := app.registry.Add(name, color, iconName)
	app.save()
	app.mu.Unlock()
	app.changed()
	return c
}

// UpdateCategory replaces a category and propagates the change into every
// activity logged under it, so embedded copies never go stale while the
// category lives. This propagation is the central integrity rule of the
// whole state layer.
func (app *App) UpdateCategory(updated models.Category) {
	app.mu.Lock()
	if app.registry.Update(updated) {
		app.ledger.ReassignCategory(updated.ID, updated)
		app.save()
	}
	app.mu.Unlock()
	app.changed()
}

// DeleteCategory removes a category, first re-pointing every activity
// logged under it at the sentinel so no activity is ever left referencing
// a missing category. Deleting the sentinel itself is a no-op.
func (app *App) DeleteCategory(id string) {
	app.mu.Lock()
	if id == models.OtherCategoryID {
		app.mu.Unlock()
		return
	}
	sentinel, ok := app.registry.Sentinel()
	if !ok {
		app.mu.Unlock()
		return
	}
	app.ledger.ReassignCategory(id, sentinel)
	if app.registry.Delete(id) {
		app.save()
	}
	app.mu.Unlock()
	app.changed()
}

// RestoreDefaultCategories re-introduces any missing default category. The
// ledger is untouched: existing activities keep whatever category copy they
// already carry.
func (app *App) RestoreDefaultCategories() {
	app.mu.Lock()
	app.registry.RestoreDefaults()
	app.save()
	app.mu.Unlock()
	app.changed()
}

// Import replaces both collections wholesale from a JSON document. The
// document must carry both an activities array and a categories array;
// otherwise ErrInvalidFormat is returned and nothing changes. Imported
// categories are deduplicated by id defensively.
func (app *App) Import(data []byte) error {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return ErrInvalidFormat
	}
	if doc.Activities == nil || doc.Categories == nil {
		return ErrInvalidFormat
	}

	app.mu.Lock()
	app.registry.Replace(doc.Categories)
	app.ledger.Replace(doc.Activities)
	app.save()
	app.mu.Unlock()
	app.changed()
	return nil
}

// Export serializes the current state as the interchange document. Only
// persisted fields are written; derived presentation state never appears in
// the Document type at all.
func (app *App) Export() ([]byte, error) {
	app.mu.Lock()
	doc := models.Document{
		Activities: app.ledger.All(),
		Categories: app.registry.All(),
	}
	app.mu.Unlock()
	return json.MarshalIndent(doc, "", "  ")
}
