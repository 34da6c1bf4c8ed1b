package state

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/store"
)

// ErrNoCategories is returned by Start when the registry is empty: there is
// no category to log the resulting activity under.
var ErrNoCategories = errors.New("no categories available, add a category before starting the timer")

// Storage keys for the running-session snapshot, kept separate from the
// ledger document so an in-progress timer survives a restart.
const (
	keyTimerRunning  = "timer-running"
	keyTimerStart    = "timer-start"
	keyTimerName     = "timer-name"
	keyTimerCategory = "timer-category"
)

// Session is the timer state machine: Idle until Start, Running until Stop.
// It owns no logged data. Elapsed time is always derived from the absolute
// start instant, never from an accumulator, so it stays correct across
// restarts and suspended processes. On Stop it hands the completed interval
// to the facade.
type Session struct {
	app     *App
	storage *store.Storage

	mu         sync.Mutex
	running    bool
	start      time.Time
	name       string
	categoryID string
}

// persist and clear write the session snapshot through storage. Failures
// never interrupt the timer, they are logged and the in-memory state wins.
func (s *Session) persist(key string, value []byte) {
	if err := s.storage.Set(key, value); err != nil {
		log.Printf("Failed to persist timer state %s: %v", key, err)
	}
}

func (s *Session) clear(key string) {
	if err := s.storage.Remove(key); err != nil {
		log.Printf("Failed to clear timer state %s: %v", key, err)
	}
}

func NewSession(app *App, s *store.Storage) *Session {
	sess := &Session{app: app, storage: s}
	if first, ok := app.FirstCategory(); ok {
		sess.categoryID = first.ID
	}
	return sess
}

// Resume restores a persisted running session, if any. Elapsed time picks
// up from the stored start instant rather than resetting to zero.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok, _ := s.storage.Get(keyTimerRunning); !ok || string(v) != "1" {
		return
	}
	v, ok, _ := s.storage.Get(keyTimerStart)
	if !ok {
		return
	}
	ms, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return
	}

	s.running = true
	s.start = time.UnixMilli(ms)
	if v, ok, _ := s.storage.Get(keyTimerName); ok {
		s.name = string(v)
	}
	if v, ok, _ := s.storage.Get(keyTimerCategory); ok {
		s.categoryID = string(v)
	}
}

// Running reports whether the session is in the Running state.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns the time since the session started, zero when idle.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0
	}
	return time.Since(s.start)
}

// Name returns the provisional activity name.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// SetName records the provisional activity name, persisted while running.
func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	if s.running {
		s.persist(keyTimerName, []byte(name))
	}
}

// CategoryID returns the currently selected category id.
func (s *Session) CategoryID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryID
}

// SetCategoryID records the selected category, persisted while running.
func (s *Session) SetCategoryID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryID = id
	if s.running {
		s.persist(keyTimerCategory, []byte(id))
	}
}

// Start moves the session to Running, capturing the start instant. Any
// previously entered provisional name is preserved. Starting with an empty
// registry is rejected, and starting while already running is a no-op.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	first, ok := s.app.FirstCategory()
	if !ok {
		return ErrNoCategories
	}
	if _, ok := s.app.Category(s.categoryID); !ok {
		s.categoryID = first.ID
	}

	s.running = true
	s.start = time.Now()

	s.persist(keyTimerRunning, []byte("1"))
	s.persist(keyTimerStart, []byte(strconv.FormatInt(s.start.UnixMilli(), 10)))
	s.persist(keyTimerName, []byte(s.name))
	s.persist(keyTimerCategory, []byte(s.categoryID))
	return nil
}

// Stop ends the session. When at least one whole second elapsed, the
// interval is logged through the facade under the selected category,
// falling back to the registry's first entry if the selection no longer
// exists. The session then resets to Idle with a fresh default selection
// and its persisted snapshot is cleared.
func (s *Session) Stop() (models.Activity, bool) {
	s.mu.Lock()

	if !s.running {
		s.mu.Unlock()
		return models.Activity{}, false
	}

	end := time.Now()
	start := s.start
	name := s.name
	categoryID := s.categoryID

	s.running = false
	s.start = time.Time{}
	s.name = ""
	s.clear(keyTimerRunning)
	s.clear(keyTimerStart)
	s.clear(keyTimerName)
	s.clear(keyTimerCategory)

	category, ok := s.app.Category(categoryID)
	if !ok {
		category, ok = s.app.FirstCategory()
	}
	s.categoryID = category.ID
	s.mu.Unlock()

	if !ok {
		return models.Activity{}, false
	}

	startMs := start.UnixMilli()
	endMs := end.UnixMilli()
	duration := (endMs - startMs + 500) / 1000
	if duration <= 0 {
		return models.Activity{}, false
	}

	logged := s.app.LogActivity(models.Activity{
		Name:      name,
		Category:  category,
		StartTime: startMs,
		EndTime:   endMs,
		Duration:  duration,
	})
	return logged, true
}
