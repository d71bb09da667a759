package domain

import (
	"strconv"
	"time"
)

// DateLayout is the date format used in report rows.
const DateLayout = "2006-01-02"

// Candidate is a raw (title, url) pair surfaced by search-result parsing.
type Candidate struct {
	Title string
	URL   string
}

// Page is a fetched document after redirects were followed.
type Page struct {
	FinalURL string
	Markup   string
}

// ArticleDetail holds everything extracted from a fetched article page.
// FinalURL supersedes the candidate URL for host and identity decisions.
type ArticleDetail struct {
	FinalURL    string
	Markup      string
	Authors     []string
	PublishedAt *time.Time
}

// ScoredItem is a surviving candidate with its priority score.
type ScoredItem struct {
	// Rank is the original parse order and only breaks score ties.
	Rank          int
	PriorityScore int
	Title         string
	URL           string
	Summary       string
	Authors       []string
	AuthorsCell   string
	PublishedDate time.Time
	Host          string
}

// ResultRow is one line of the final report.
type ResultRow struct {
	Seq      int
	Title    string
	URL      string
	Summary  string
	Reporter string
	Date     time.Time
}

// Cells renders the row in report column order.
func (r ResultRow) Cells() []string {
	seq := ""
	if r.Seq > 0 {
		seq = strconv.Itoa(r.Seq)
	}
	return []string{"", seq, r.Title, r.URL, r.Summary, r.Reporter, r.Date.Format(DateLayout)}
}

// RunResult is everything a single pipeline run produces.
type RunResult struct {
	Rows      []ResultRow
	Logs      []string
	SheetName string
}

// Report is a rendered run ready to be written out.
type Report struct {
	BaseName  string
	SheetName string
	Table     [][]string
	HTML      string
}
