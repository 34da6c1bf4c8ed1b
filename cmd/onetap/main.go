package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"github.com/VibeCoder01/OneTap-Time/internal/state"
	"github.com/VibeCoder01/OneTap-Time/internal/store"
	"github.com/VibeCoder01/OneTap-Time/internal/ui"
	"github.com/VibeCoder01/OneTap-Time/internal/updater"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
)

var userConfigFilePath string

func setupViper() error {
	viper.SetConfigName("onetap")
	viper.SetConfigType("yaml")

	// Determine the user config directory
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting user home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(homeDir, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	userConfigFilePath = filepath.Join(configHome, "onetap", "onetap.yml")
	viper.SetConfigFile(userConfigFilePath)

	if err := os.MkdirAll(filepath.Dir(userConfigFilePath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	viper.SetDefault("data_folder", "./data")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			log.Println("Config file not found; creating one with default values")
			if err := viper.WriteConfigAs(userConfigFilePath); err != nil {
				return fmt.Errorf("error creating config file: %w", err)
			}
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func main() {
	os.Setenv("FYNE_SCALE", "auto")

	go func() {
		if err := updater.SelfUpdate("VibeCoder01", "OneTap-Time"); err != nil {
			log.Printf("Self-update failed: %v", err)
		}
	}()

	a := app.NewWithID("com.vibecoder01.onetap")
	a.Settings().SetTheme(theme.DarkTheme())

	w := a.NewWindow("OneTap Time")
	w.Resize(fyne.NewSize(420, 640))

	if err := setupViper(); err != nil {
		dialog.ShowError(err, w)
		w.ShowAndRun()
		return
	}

	storage := store.NewStorage(viper.GetString("data_folder"))

	// The startup load must complete before any mutation can trigger a
	// save, otherwise a save could clobber real stored data with seed
	// data. Load runs synchronously here, before the UI exists.
	appState := state.NewApp(storage)
	appState.Load()

	session := state.NewSession(appState, storage)
	session.Resume()

	tracker := ui.NewTracker(appState, session)
	summary := ui.NewSummary(appState)
	activityLog := ui.NewActivityLog(appState)
	categories := ui.NewCategoryManager(appState)
	dataUI := ui.NewDataManager(w, appState)
	configUI := ui.NewConfig(w, storage, userConfigFilePath, func() {
		appState.Load()
		if appState.OnChange != nil {
			appState.OnChange()
		}
	})

	trackerTab := container.NewVBox(tracker.MakeUI(), summary.MakeUI())
	tabs := container.NewAppTabs(
		container.NewTabItem("Tracker", trackerTab),
		container.NewTabItem("Log", activityLog.MakeUI()),
		container.NewTabItem("Categories", categories.MakeUI()),
		container.NewTabItem("Data", dataUI.MakeUI()),
		container.NewTabItem("Settings", configUI.MakeUI()),
	)

	appState.OnChange = func() {
		summary.Refresh()
		activityLog.Refresh()
		categories.Refresh()
		tracker.RefreshCategories()
	}

	w.SetContent(tabs)

	ui.SetupTray(a, w, theme.HistoryIcon(), tracker)
	ui.CheckVersion(w, storage)

	w.ShowAndRun()
}
