// Package console prints run results for the operator.
package console

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"NewsScraper/internal/domain"
	"NewsScraper/internal/ports"
)

const (
	titleWidth   = 40
	summaryWidth = 32
)

// TablePreviewer renders result rows as a text table.
type TablePreviewer struct {
	out io.Writer
}

var _ ports.Previewer = (*TablePreviewer)(nil)

// NewTablePreviewer writes to out, or stdout when out is nil.
func NewTablePreviewer(out io.Writer) *TablePreviewer {
	if out == nil {
		out = os.Stdout
	}
	return &TablePreviewer{out: out}
}

// Preview prints one line per row.
func (p *TablePreviewer) Preview(rows []domain.ResultRow) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"순번", "타이틀", "세부내용", "기자", "일자", "링크"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: titleWidth, WidthMaxEnforcer: text.Trim},
		{Number: 3, WidthMax: summaryWidth, WidthMaxEnforcer: text.Trim},
	})

	for _, r := range rows {
		t.AppendRow(table.Row{r.Seq, r.Title, r.Summary, r.Reporter, r.Date.Format(domain.DateLayout), r.URL})
	}
	t.AppendFooter(table.Row{"", "", "", "", "합계", len(rows)})

	t.Render()
	return nil
}
