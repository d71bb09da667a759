package report

import (
	"html"
	"strconv"
	"strings"

	"NewsScraper/internal/domain"
)

// Greeting fills the newsletter preamble.
type Greeting struct {
	Sender string
	Topic  string
}

// HTML renders rows as the newsletter body under the given week label.
// All row text is escaped.
func HTML(rows []domain.ResultRow, label string, g Greeting) string {
	var b strings.Builder
	b.WriteString(`<div align="">`)
	b.WriteString(paragraph("안녕하세요.", false, false))
	b.WriteString(br(1))
	b.WriteString(paragraph(g.Sender+" 입니다.", false, false))
	b.WriteString(br(1))
	b.WriteString(paragraph(label+" "+g.Topic+" 입니다.", false, false))
	b.WriteString(br(5))

	for i, r := range rows {
		seq := r.Seq
		if seq == 0 {
			seq = i + 1
		}
		b.WriteString(paragraph(strconv.Itoa(seq)+".\u00a0"+r.Title, false, true))
		b.WriteString(br(2))
		if r.URL != "" {
			b.WriteString(`<p align="left"><a href="` + html.EscapeString(r.URL) +
				`" target="_blank" rel="noopener noreferrer">기사원문</a></p>`)
			b.WriteString(br(2))
		}
		if r.Summary != "" {
			b.WriteString(paragraph(r.Summary, false, false))
		}
		if r.Reporter != "" {
			b.WriteString(paragraph(r.Reporter, true, true))
		}
		if !r.Date.IsZero() {
			b.WriteString(paragraph(r.Date.Format(domain.DateLayout), true, true))
		}
		b.WriteString(br(6))
	}

	b.WriteString("</div>")
	return b.String()
}

func paragraph(text string, small, bold bool) string {
	t := strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
	if bold {
		t = "<b>" + t + "</b>"
	}
	if small {
		t = `<span style="font-size:90%">` + t + "</span>"
	}
	return `<p align="left">` + t + "</p>"
}

func br(n int) string {
	return strings.Repeat("<br>", n)
}
