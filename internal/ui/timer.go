package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/state"
)

// Tracker is the timer card: elapsed display, provisional activity name,
// category selection and the start/stop button.
type Tracker struct {
	app       *state.App
	session   *state.Session
	timerData binding.String

	statusLabel    *widget.Label
	nameEntry      *widget.Entry
	categorySelect *widget.Select
	categoryIDs    []string
	btn            *widget.Button
}

func NewTracker(app *state.App, session *state.Session) *Tracker {
	return &Tracker{
		app:       app,
		session:   session,
		timerData: binding.NewString(),
	}
}

func (t *Tracker) MakeUI() fyne.CanvasObject {
	t.timerData.Set("00:00:00")

	timerLabel := widget.NewLabelWithData(t.timerData)
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.Alignment = fyne.TextAlignCenter

	t.statusLabel = widget.NewLabel("Press Start to begin.")
	t.statusLabel.Alignment = fyne.TextAlignCenter

	t.nameEntry = widget.NewEntry()
	t.nameEntry.PlaceHolder = "What are you doing?"
	t.nameEntry.OnChanged = func(s string) {
		t.session.SetName(s)
	}

	t.categorySelect = widget.NewSelect(nil, func(string) {
		i := t.categorySelect.SelectedIndex()
		if i >= 0 && i < len(t.categoryIDs) {
			t.session.SetCategoryID(t.categoryIDs[i])
		}
	})
	t.RefreshCategories()

	t.btn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if t.session.Running() {
			t.stop()
		} else {
			t.start()
		}
	})
	t.btn.Importance = widget.HighImportance

	// Resume a session persisted by a previous run
	if t.session.Running() {
		t.nameEntry.SetText(t.session.Name())
		t.selectCategory(t.session.CategoryID())
		t.setRunningUI(true)
	}

	// 1-second repaint of the elapsed display. Cosmetic only: the logged
	// duration is computed at stop time from the absolute instants.
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		for range ticker.C {
			fyne.Do(func() {
				if t.session.Running() {
					t.timerData.Set(formatDuration(t.session.Elapsed()))
				}
			})
		}
	}()

	return container.NewVBox(
		t.statusLabel,
		timerLabel,
		t.nameEntry,
		t.categorySelect,
		t.btn,
	)
}

func (t *Tracker) start() {
	if err := t.session.Start(); err != nil {
		parentWindow := fyne.CurrentApp().Driver().AllWindows()[0]
		dialog.ShowError(err, parentWindow)
		return
	}
	t.selectCategory(t.session.CategoryID())
	t.setRunningUI(true)
}

func (t *Tracker) stop() {
	t.session.Stop()
	t.nameEntry.SetText("")
	t.timerData.Set("00:00:00")
	t.selectCategory(t.session.CategoryID())
	t.setRunningUI(false)
}

// Toggle is the tray's start/stop entry point.
func (t *Tracker) Toggle() {
	if t.session.Running() {
		t.stop()
	} else {
		t.start()
	}
}

func (t *Tracker) setRunningUI(running bool) {
	if running {
		t.statusLabel.SetText("Activity in progress...")
		t.btn.SetText("Stop")
		t.btn.SetIcon(theme.MediaStopIcon())
	} else {
		t.statusLabel.SetText("Press Start to begin.")
		t.btn.SetText("Start")
		t.btn.SetIcon(theme.MediaPlayIcon())
	}
}

// RefreshCategories rebuilds the selector options after category changes.
func (t *Tracker) RefreshCategories() {
	categories := t.app.Categories()
	options := make([]string, 0, len(categories))
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		options = append(options, fmt.Sprintf("%s %s", GlyphFor(c.IconName), c.Name))
		ids = append(ids, c.ID)
	}
	t.categoryIDs = ids
	t.categorySelect.Options = options
	t.selectCategory(t.session.CategoryID())
	t.categorySelect.Refresh()
}

func (t *Tracker) selectCategory(id string) {
	for i, cid := range t.categoryIDs {
		if cid == id {
			t.categorySelect.SetSelectedIndex(i)
			return
		}
	}
	if len(t.categoryIDs) > 0 {
		t.categorySelect.SetSelectedIndex(0)
	} else {
		t.categorySelect.ClearSelected()
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
