package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/state"
)

// CategoryManager lists categories with add/edit/delete/restore actions.
// The "Other" category cannot be deleted; deleting any other category
// re-points its activities at "Other".
type CategoryManager struct {
	app      *state.App
	listData []state.CategoryUsage
	list     *widget.List
}

func NewCategoryManager(app *state.App) *CategoryManager {
	return &CategoryManager{app: app}
}

func (cm *CategoryManager) MakeUI() fyne.CanvasObject {
	cm.listData = cm.app.CategoryUsage()

	cm.list = widget.NewList(
		func() int { return len(cm.listData) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				container.NewHBox(
					widget.NewLabel("in use"),
					widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil),
					widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
				),
				widget.NewLabel("Name"))
		},
		func(i int, o fyne.CanvasObject) {
			if i >= len(cm.listData) {
				return
			}
			cu := cm.listData[i]

			box := o.(*fyne.Container)
			nameLabel := box.Objects[0].(*widget.Label)
			rightBox := box.Objects[1].(*fyne.Container)
			usedLabel := rightBox.Objects[0].(*widget.Label)
			editBtn := rightBox.Objects[1].(*widget.Button)
			delBtn := rightBox.Objects[2].(*widget.Button)

			nameLabel.SetText(fmt.Sprintf("%s %s", GlyphFor(cu.IconName), cu.Name))
			if cu.IsUsed {
				usedLabel.SetText("in use")
			} else {
				usedLabel.SetText("")
			}

			category := cu.Category
			editBtn.OnTapped = func() {
				cm.showForm("Edit Category", category, func(updated models.Category) {
					cm.app.UpdateCategory(updated)
				})
			}
			if category.ID == models.OtherCategoryID {
				delBtn.Disable()
			} else {
				delBtn.Enable()
				delBtn.OnTapped = func() {
					parentWindow := fyne.CurrentApp().Driver().AllWindows()[0]
					msg := fmt.Sprintf("Delete %q? Its activities will be moved to \"Other\".", category.Name)
					dialog.ShowConfirm("Confirm Deletion", msg, func(confirmed bool) {
						if !confirmed {
							return
						}
						cm.app.DeleteCategory(category.ID)
					}, parentWindow)
				}
			}
		},
	)

	addBtn := widget.NewButtonWithIcon("Add Category", theme.ContentAddIcon(), func() {
		cm.showForm("Add Category", models.Category{
			Color:    models.ColorTokens()[0],
			IconName: IconNames()[0],
		}, func(c models.Category) {
			cm.app.AddCategory(c.Name, c.Color, c.IconName)
		})
	})

	restoreBtn := widget.NewButtonWithIcon("Restore Defaults", theme.ViewRefreshIcon(), func() {
		cm.app.RestoreDefaultCategories()
	})

	return container.NewBorder(
		container.NewHBox(addBtn, restoreBtn),
		nil, nil, nil,
		cm.list,
	)
}

// Refresh reloads the list from the facade.
func (cm *CategoryManager) Refresh() {
	cm.listData = cm.app.CategoryUsage()
	if cm.list != nil {
		cm.list.Refresh()
	}
}

// showForm runs the add/edit dialog. The category passed in provides the
// initial field values; onSave receives it back with the edited fields.
func (cm *CategoryManager) showForm(title string, category models.Category, onSave func(models.Category)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(category.Name)

	colorSelect := widget.NewSelect(models.ColorTokens(), nil)
	colorSelect.SetSelected(category.Color)

	iconNames := IconNames()
	iconOptions := make([]string, 0, len(iconNames))
	for _, n := range iconNames {
		iconOptions = append(iconOptions, fmt.Sprintf("%s %s", GlyphFor(n), n))
	}
	iconSelect := widget.NewSelect(iconOptions, nil)
	for i, n := range iconNames {
		if n == category.IconName {
			iconSelect.SetSelectedIndex(i)
			break
		}
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Color", colorSelect),
		widget.NewFormItem("Icon", iconSelect),
	}

	parentWindow := fyne.CurrentApp().Driver().AllWindows()[0]
	dlg := dialog.NewForm(title, "Save", "Cancel", items, func(b bool) {
		if !b {
			return
		}
		if nameEntry.Text == "" {
			dialog.ShowInformation("Invalid Category", "The category needs a name.", parentWindow)
			return
		}

		category.Name = nameEntry.Text
		if colorSelect.Selected != "" {
			category.Color = colorSelect.Selected
		}
		if i := iconSelect.SelectedIndex(); i >= 0 && i < len(iconNames) {
			category.IconName = iconNames[i]
		}
		onSave(category)
	}, parentWindow)
	dlg.Resize(fyne.NewSize(parentWindow.Canvas().Size().Width, dlg.MinSize().Height))
	dlg.Show()
}
