package ui

import (
	_ "embed"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/store"
	"github.com/VibeCoder01/OneTap-Time/internal/version"
)

//go:embed CHANGELOG.md
var changelogData string

// CheckVersion shows the release notes dialog on first run after an update.
func CheckVersion(w fyne.Window, s *store.Storage) {
	appState, _ := s.LoadAppState()
	// appState is zero-valued on error, which triggers the dialog below.

	currentVersion := version.Version
	if appState.LastRunVersion == currentVersion {
		return
	}

	showWelcomeDialog(w, currentVersion)

	appState.LastRunVersion = currentVersion
	s.SaveAppState(appState)
}

func showWelcomeDialog(w fyne.Window, v string) {
	notes := parseChangelog(v)
	if notes == "" {
		return
	}

	content := widget.NewRichTextFromMarkdown(notes)

	scroll := container.NewScroll(content)
	scroll.SetMinSize(fyne.NewSize(400, 300))

	dlg := dialog.NewCustom("What's New in "+v, "Close", scroll, w)
	dlg.Resize(fyne.NewSize(500, 400))
	dlg.Show()
}

// parseChangelog extracts the "## <version>" section from the embedded
// changelog, with or without a v prefix on either side.
func parseChangelog(v string) string {
	isVersionHeader := func(line, ver string) bool {
		if !strings.HasPrefix(line, "## ") {
			return false
		}
		return strings.Contains(line, "["+ver+"]") || strings.Contains(line, " "+ver+" ") || strings.HasSuffix(line, " "+ver)
	}

	var extracted []string
	capture := false
	for _, line := range strings.Split(changelogData, "\n") {
		if strings.HasPrefix(line, "## ") {
			if capture {
				break
			}
			if isVersionHeader(line, v) || (!strings.HasPrefix(v, "v") && isVersionHeader(line, "v"+v)) {
				capture = true
				continue
			}
		}
		if capture {
			extracted = append(extracted, line)
		}
	}

	return strings.Join(extracted, "\n")
}
