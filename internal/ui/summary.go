package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/service"
	"github.com/VibeCoder01/OneTap-Time/internal/state"
)

// Summary shows today's total tracked time with a per-category breakdown.
type Summary struct {
	app     *state.App
	content *fyne.Container
}

func NewSummary(app *state.App) *Summary {
	return &Summary{app: app}
}

func (s *Summary) MakeUI() fyne.CanvasObject {
	s.content = container.NewVBox()
	s.Refresh()
	return s.content
}

// Refresh recomputes the breakdown from today's activities.
func (s *Summary) Refresh() {
	if s.content == nil {
		return
	}

	daily := s.app.DailyActivities()
	totals := service.TotalsByCategory(daily)
	total := service.TotalSeconds(daily)

	objects := []fyne.CanvasObject{
		widget.NewLabelWithStyle("Today's Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}

	if total == 0 {
		objects = append(objects, widget.NewLabel("No activities logged today."))
	} else {
		objects = append(objects, widget.NewLabel(fmt.Sprintf("Total: %s", formatSeconds(total))))
		for _, t := range totals {
			bar := widget.NewProgressBar()
			bar.Value = float64(t.Seconds) / float64(total)
			bar.TextFormatter = func() string { return "" }
			row := container.NewBorder(nil, nil,
				widget.NewLabel(fmt.Sprintf("%s %s", GlyphFor(t.Category.IconName), t.Category.Name)),
				widget.NewLabel(formatSeconds(t.Seconds)),
				bar)
			objects = append(objects, row)
		}
	}

	s.content.Objects = objects
	s.content.Refresh()
}

func formatSeconds(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	sec := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}
