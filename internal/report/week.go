package report

import (
	"fmt"
	"regexp"
	"time"
)

var sheetNameExpr = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d+)주차$`)

// Week identifies a Wednesday-anchored week of a month.
type Week struct {
	Year   int
	Month  time.Month
	Number int
}

// WeekOf anchors d to the Wednesday on or before it (within three days
// either side) and counts weeks from the first Wednesday of that month.
func WeekOf(d time.Time) Week {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) - int(time.Wednesday) + 7) % 7
	anchor := day.AddDate(0, 0, -back)

	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	ahead := (int(time.Wednesday) - int(first.Weekday()) + 7) % 7
	firstWed := first.AddDate(0, 0, ahead)

	days := int(anchor.Sub(firstWed).Hours() / 24)
	return Week{Year: anchor.Year(), Month: anchor.Month(), Number: 1 + days/7}
}

// SheetName renders the week as "YY.MM.N주차".
func (w Week) SheetName() string {
	return fmt.Sprintf("%02d.%02d.%d주차", w.Year%100, int(w.Month), w.Number)
}

// Label renders the week as "YY년 MM월 N주차" for the HTML greeting.
func (w Week) Label() string {
	return fmt.Sprintf("%02d년 %02d월 %d주차", w.Year%100, int(w.Month), w.Number)
}

// SheetName is WeekOf(d).SheetName().
func SheetName(d time.Time) string {
	return WeekOf(d).SheetName()
}

// LabelFromSheetName turns "YY.MM.N주차" into "YY년 MM월 N주차". Other
// names are returned unchanged.
func LabelFromSheetName(sheet string) string {
	m := sheetNameExpr.FindStringSubmatch(sheet)
	if m == nil {
		return sheet
	}
	return m[1] + "년 " + m[2] + "월 " + m[3] + "주차"
}
