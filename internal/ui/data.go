package ui

import (
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/VibeCoder01/OneTap-Time/internal/state"
)

// DataManager is the import/export screen: JSON backup and restore plus a
// PDF activity report.
type DataManager struct {
	window fyne.Window
	app    *state.App
}

func NewDataManager(w fyne.Window, app *state.App) *DataManager {
	return &DataManager{window: w, app: app}
}

func (dm *DataManager) MakeUI() fyne.CanvasObject {
	exportBtn := widget.NewButtonWithIcon("Export Data", theme.DownloadIcon(), func() {
		dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			if writer == nil {
				return
			}
			defer writer.Close()

			data, err := dm.app.Export()
			if err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			if _, err := writer.Write(data); err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			dialog.ShowInformation("Export Complete", "Your data has been exported.", dm.window)
		}, dm.window)
		dlg.SetFileName("onetap-data.json")
		dlg.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
		dlg.Show()
	})

	importBtn := widget.NewButtonWithIcon("Import Data", theme.UploadIcon(), func() {
		dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			if reader == nil {
				return
			}
			defer reader.Close()

			data, err := io.ReadAll(reader)
			if err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			if err := dm.app.Import(data); err != nil {
				// Import leaves the current state untouched on failure.
				dialog.ShowError(err, dm.window)
				return
			}
			dialog.ShowInformation("Import Complete", "Your data has been restored.", dm.window)
		}, dm.window)
		dlg.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
		dlg.Show()
	})

	pdfBtn := widget.NewButtonWithIcon("Export PDF Report", theme.DocumentIcon(), func() {
		dlg := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, dm.window)
				return
			}
			if writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()

			activities := dm.app.Activities()
			end := time.Now()
			start := end
			if len(activities) > 0 {
				start = activities[len(activities)-1].Start()
			}
			if err := GeneratePDF(path, activities, start, end, "Daily"); err != nil {
				os.Remove(path)
				dialog.ShowError(err, dm.window)
				return
			}
			dialog.ShowInformation("Report Ready", "The PDF report has been written.", dm.window)
		}, dm.window)
		dlg.SetFileName("onetap-report.pdf")
		dlg.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
		dlg.Show()
	})

	return container.NewVBox(
		widget.NewLabelWithStyle("Data Management", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Backup your activity log and categories to a JSON file, or restore from one. Importing replaces the current data."),
		exportBtn,
		importBtn,
		widget.NewSeparator(),
		pdfBtn,
	)
}
