package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/state"
)

// ActivityLog lists every logged activity, newest first, with edit and
// delete actions. Start, end and duration are read-only once logged; the
// edit dialog only touches name and category.
type ActivityLog struct {
	app      *state.App
	listData []models.Activity
	list     *widget.List
}

func NewActivityLog(app *state.App) *ActivityLog {
	return &ActivityLog{app: app}
}

func (al *ActivityLog) MakeUI() fyne.CanvasObject {
	al.listData = al.app.Activities()

	al.list = widget.NewList(
		func() int { return len(al.listData) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				container.NewHBox(
					widget.NewLabel("00:00:00"),
					widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil),
					widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				),
				container.NewVBox(
					widget.NewLabelWithStyle("Title", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
					widget.NewLabelWithStyle("Category", fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
				))
		},
		func(i int, o fyne.CanvasObject) {
			if i >= len(al.listData) {
				return
			}
			activity := al.listData[i]

			box := o.(*fyne.Container)
			rightBox := box.Objects[1].(*fyne.Container)
			durLabel := rightBox.Objects[0].(*widget.Label)
			editBtn := rightBox.Objects[1].(*widget.Button)
			delBtn := rightBox.Objects[2].(*widget.Button)

			infoBox := box.Objects[0].(*fyne.Container)
			titleLabel := infoBox.Objects[0].(*widget.Label)
			metaLabel := infoBox.Objects[1].(*widget.Label)

			titleLabel.SetText(activity.Name)
			metaLabel.SetText(fmt.Sprintf("%s %s · %s",
				GlyphFor(activity.Category.IconName),
				activity.Category.Name,
				activity.Start().Format("Mon, 02 Jan 15:04")))
			durLabel.SetText(formatDuration(time.Duration(activity.Duration) * time.Second))

			editBtn.OnTapped = func() {
				al.showEditDialog(activity)
			}
			delBtn.OnTapped = func() {
				parentWindow := fyne.CurrentApp().Driver().AllWindows()[0]
				dialog.ShowConfirm("Confirm Deletion", "Are you sure you want to delete this activity?", func(confirmed bool) {
					if !confirmed {
						return
					}
					al.app.DeleteActivity(activity.ID)
				}, parentWindow)
			}
		},
	)

	return al.list
}

// Refresh reloads the list from the facade.
func (al *ActivityLog) Refresh() {
	al.listData = al.app.Activities()
	if al.list != nil {
		al.list.Refresh()
	}
}

func (al *ActivityLog) showEditDialog(activity models.Activity) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(activity.Name)

	categories := al.app.Categories()
	options := make([]string, 0, len(categories))
	for _, c := range categories {
		options = append(options, fmt.Sprintf("%s %s", GlyphFor(c.IconName), c.Name))
	}
	categorySelect := widget.NewSelect(options, nil)
	for i, c := range categories {
		if c.ID == activity.Category.ID {
			categorySelect.SetSelectedIndex(i)
			break
		}
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Category", categorySelect),
	}

	parentWindow := fyne.CurrentApp().Driver().AllWindows()[0]
	dlg := dialog.NewForm("Edit Activity", "Save", "Cancel", items, func(b bool) {
		if !b {
			return
		}

		category := activity.Category
		if i := categorySelect.SelectedIndex(); i >= 0 && i < len(categories) {
			category = categories[i]
		}
		al.app.UpdateActivity(activity.ID, nameEntry.Text, category)
	}, parentWindow)
	dlg.Resize(fyne.NewSize(parentWindow.Canvas().Size().Width, dlg.MinSize().Height))
	dlg.Show()
}
