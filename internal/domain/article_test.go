package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestResultRowCells(t *testing.T) {
	t.Parallel()

	row := ResultRow{
		Seq:      3,
		Title:    "전력수급 점검",
		URL:      "https://www.etnews.com/1",
		Summary:  "요약",
		Reporter: "전자신문 홍길동 기자",
		Date:     time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
	}

	want := []string{"", "3", "전력수급 점검", "https://www.etnews.com/1", "요약", "전자신문 홍길동 기자", "2025-10-01"}
	if got := row.Cells(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Cells() = %#v; want %#v", got, want)
	}
}
