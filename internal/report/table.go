// Package report renders result rows as a spreadsheet table and as the HTML
// newsletter body.
package report

import "NewsScraper/internal/domain"

// Header is the column title row of the table.
var Header = []string{"", "순번", "타이틀", "링크", "세부내용", "기자", "일자"}

// Table returns a blank spacer row, the header and one row per result.
func Table(rows []domain.ResultRow) [][]string {
	out := make([][]string, 0, len(rows)+2)
	out = append(out, make([]string, len(Header)), append([]string(nil), Header...))
	for _, r := range rows {
		out = append(out, r.Cells())
	}
	return out
}

// Build renders a finished run into the spreadsheet table and HTML body.
func Build(baseName string, result domain.RunResult, g Greeting) domain.Report {
	return domain.Report{
		BaseName:  baseName,
		SheetName: result.SheetName,
		Table:     Table(result.Rows),
		HTML:      HTML(result.Rows, LabelFromSheetName(result.SheetName), g),
	}
}
