package ui

import (
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2/lang"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/service"
)

var pdfTableProps = props.TableList{
	HeaderProp: props.TableListContent{
		Size:      10,
		GridSizes: []uint{3, 4, 2, 3},
	},
	ContentProp: props.TableListContent{
		Size:      10,
		GridSizes: []uint{3, 4, 2, 3},
	},
	Align:                consts.Center,
	AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
	HeaderContentSpace:   1,
	Line:                 false,
}

// GeneratePDF writes an activity report covering [start, end], optionally
// grouped by day or week.
func GeneratePDF(path string, activities []models.Activity, start, end time.Time, groupBy string) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(lang.L("OneTap Activity Report"), props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				dateRange := fmt.Sprintf("%s - %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
				m.Text(dateRange, props.Text{
					Top:   3,
					Style: consts.Normal,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	headers := []string{
		lang.L("Date"),
		lang.L("Activity"),
		lang.L("Category"),
		lang.L("Duration"),
	}

	var totalSeconds int64
	for _, a := range activities {
		totalSeconds += a.Duration
	}

	if groupBy == service.GroupByNone {
		rows := [][]string{}
		for _, a := range activities {
			rows = append(rows, activityRow(a))
		}
		m.TableList(headers, rows, pdfTableProps)
	} else {
		groups := make(map[string][]models.Activity)
		var keys []string

		for _, a := range activities {
			key := service.GetGroupKey(a.Start(), groupBy)
			if _, exists := groups[key]; !exists {
				keys = append(keys, key)
			}
			groups[key] = append(groups[key], a)
		}

		sort.Sort(sort.Reverse(sort.StringSlice(keys)))

		for _, key := range keys {
			groupActivities := groups[key]
			var groupSeconds int64
			rows := [][]string{}
			for _, a := range groupActivities {
				groupSeconds += a.Duration
				rows = append(rows, activityRow(a))
			}

			title := service.GetGroupTitle(groupActivities[0].Start(), groupBy)
			m.Row(10, func() {
				m.Col(12, func() {
					m.Text(title, props.Text{
						Top:   5,
						Style: consts.Bold,
						Size:  12,
						Align: consts.Left,
					})
				})
			})

			m.TableList(headers, rows, pdfTableProps)

			m.Row(10, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("%s: %s", lang.L("Subtotal"), formatSeconds(groupSeconds)), props.Text{
						Top:   0,
						Style: consts.Bold,
						Align: consts.Right,
						Size:  10,
					})
				})
			})

			m.Row(5, func() {})
		}
	}

	m.Row(20, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s: %s", lang.L("Total Time"), formatSeconds(totalSeconds)), props.Text{
				Top:   10,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	return m.OutputFileAndClose(path)
}

func activityRow(a models.Activity) []string {
	return []string{
		a.Start().Format("2006-01-02"),
		a.Name,
		a.Category.Name,
		formatSeconds(a.Duration),
	}
}
