package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsScraper/internal/domain"
)

func TestWeekOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		day   time.Time
		sheet string
		label string
	}{
		{time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC), "25.10.1주차", "25년 10월 1주차"},
		{time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC), "25.10.1주차", "25년 10월 1주차"},
		{time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC), "25.10.2주차", "25년 10월 2주차"},
		// Tuesday belongs to the previous month's last Wednesday.
		{time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "25.09.4주차", "25년 09월 4주차"},
	}
	for _, tt := range tests {
		w := WeekOf(tt.day)
		assert.Equal(t, tt.sheet, w.SheetName(), tt.day.Format(domain.DateLayout))
		assert.Equal(t, tt.label, w.Label())
	}
	assert.Equal(t, "25.10.1주차", SheetName(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLabelFromSheetName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "25년 10월 1주차", LabelFromSheetName("25.10.1주차"))
	assert.Equal(t, "custom", LabelFromSheetName("custom"))
}

func TestTable(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	table := Table([]domain.ResultRow{{Seq: 1, Title: "제목", URL: "https://a.kr", Summary: "요약", Reporter: "전자신문", Date: day}})
	require.Len(t, table, 3)
	assert.Equal(t, make([]string, 7), table[0])
	assert.Equal(t, Header, table[1])
	assert.Equal(t, []string{"", "1", "제목", "https://a.kr", "요약", "전자신문", "2025-10-01"}, table[2])
}

func TestHTMLEscapesUserText(t *testing.T) {
	t.Parallel()

	rows := []domain.ResultRow{{
		Seq:      1,
		Title:    "<script>alert(1)</script>",
		URL:      `https://a.kr/?x="1"&y=2`,
		Summary:  "줄1\n줄2",
		Reporter: "전자신문 홍길동 기자",
		Date:     time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}}
	out := HTML(rows, WeekOf(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)).Label(), Greeting{Sender: "아이디알서비스", Topic: "에너지 뉴스 모음"})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.True(t, strings.HasPrefix(out, `<div align=""><p align="left">안녕하세요.</p><br>`))
	assert.Contains(t, out, `<p align="left">25년 10월 1주차 에너지 뉴스 모음 입니다.</p><br><br><br><br><br>`)
	assert.Contains(t, out, "<p align=\"left\"><b>1.\u00a0&lt;script&gt;")
	assert.Contains(t, out, `href="https://a.kr/?x=&#34;1&#34;&amp;y=2" target="_blank" rel="noopener noreferrer">기사원문</a>`)
	assert.Contains(t, out, "줄1<br>줄2")
	assert.Contains(t, out, `<span style="font-size:90%"><b>2025-10-01</b></span>`)
	assert.True(t, strings.HasSuffix(out, "<br><br><br><br><br><br></div>"))
}

func TestBuild(t *testing.T) {
	t.Parallel()

	rep := Build("out", domain.RunResult{SheetName: "25.10.1주차"}, Greeting{Sender: "s", Topic: "t"})
	assert.Equal(t, "out", rep.BaseName)
	assert.Equal(t, "25.10.1주차", rep.SheetName)
	assert.Len(t, rep.Table, 2)
	assert.Contains(t, rep.HTML, "25년 10월 1주차 t 입니다.")
}
