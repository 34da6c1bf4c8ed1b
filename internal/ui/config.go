package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/viper"

	"github.com/VibeCoder01/OneTap-Time/internal/store"
)

// Config is the settings screen: data folder location and destructive
// maintenance actions.
type Config struct {
	window             fyne.Window
	storage            *store.Storage
	userConfigFilePath string
	onErase            func()
}

func NewConfig(w fyne.Window, s *store.Storage, userConfigFilePath string, onErase func()) *Config {
	return &Config{window: w, storage: s, userConfigFilePath: userConfigFilePath, onErase: onErase}
}

func (c *Config) MakeUI() fyne.CanvasObject {
	dataFolder := viper.GetString("data_folder")
	entry := widget.NewEntry()
	entry.SetText(dataFolder)

	browseBtn := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				dialog.ShowError(err, c.window)
				return
			}
			if uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, c.window).Show()
	})

	folderContainer := container.NewBorder(nil, nil, nil, browseBtn, entry)

	saveBtn := widget.NewButton(lang.L("Save Configuration"), func() {
		newDataFolder := entry.Text
		if newDataFolder == "" {
			dialog.ShowError(filepath.ErrBadPattern, c.window)
			return
		}

		oldDataFolder := c.storage.BaseDir

		saveConfig := func() {
			viper.Set("data_folder", newDataFolder)
			err := viper.WriteConfigAs(c.userConfigFilePath)
			if err != nil {
				dialog.ShowError(err, c.window)
				return
			}
			dialog.ShowInformation(lang.L("Success"), lang.L("Configuration saved."), c.window)
		}

		if newDataFolder != oldDataFolder {
			// Ask user
			var d dialog.Dialog

			moveBtn := widget.NewButton(lang.L("Move existing data"), func() {
				d.Hide()
				if err := c.storage.MoveData(newDataFolder); err != nil {
					dialog.ShowError(err, c.window)
					return
				}
				saveConfig()
			})

			freshBtn := widget.NewButton(lang.L("Start fresh"), func() {
				d.Hide()
				c.storage.UpdateBaseDir(newDataFolder)
				saveConfig()
			})

			content := container.NewVBox(
				widget.NewLabel(lang.L("The data folder has changed. Move the existing data, or start fresh in the new location?")),
				container.NewHBox(moveBtn, freshBtn),
			)

			d = dialog.NewCustom(lang.L("Data Folder Changed"), lang.L("Cancel"), content, c.window)
			d.Show()
			return
		}

		// Same folder, just save (maybe other settings in future)
		saveConfig()
	})

	eraseBtn := widget.NewButtonWithIcon(lang.L("Erase All Data"), theme.DeleteIcon(), func() {
		dialog.ShowConfirm(lang.L("Erase All Data"), lang.L("Delete every logged activity and custom category? This cannot be undone."), func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := c.storage.DeleteAll(); err != nil {
				dialog.ShowError(err, c.window)
				return
			}
			if c.onErase != nil {
				c.onErase()
			}
			dialog.ShowInformation(lang.L("Success"), lang.L("All data has been erased."), c.window)
		}, c.window)
	})
	eraseBtn.Importance = widget.DangerImportance

	quitBtn := widget.NewButtonWithIcon(lang.L("Quit Application"), theme.LogoutIcon(), func() {
		fyne.CurrentApp().Quit()
	})

	return container.NewVBox(
		widget.NewLabel(lang.L("Settings")),
		widget.NewForm(
			widget.NewFormItem(lang.L("Data Folder"), folderContainer),
		),
		saveBtn,
		widget.NewSeparator(),
		eraseBtn,
		widget.NewSeparator(),
		quitBtn,
	)
}
