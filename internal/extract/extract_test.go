package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsScraper/internal/document"
	"NewsScraper/internal/domain"
	"NewsScraper/internal/textutil"
)

func mustParse(t *testing.T, markup string) *document.Document {
	t.Helper()
	doc, err := document.Parse(markup)
	require.NoError(t, err)
	return doc
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	calls := 0
	got := FirstNonEmpty(
		func() string { calls++; return "" },
		func() string { calls++; return "second" },
		func() string { calls++; return "third" },
	)
	assert.Equal(t, "second", got)
	assert.Equal(t, 2, calls)
	assert.Empty(t, FirstNonEmpty[string]())
	assert.Nil(t, FirstNonEmptySlice(func() []int { return nil }))
}

func TestMeaningfulSentenceSkipsBoilerplate(t *testing.T) {
	t.Parallel()

	text := "사진=연합뉴스. 정부가 분산에너지 활성화를 위한 새로운 지원 계획을 발표했다. 두번째 문장입니다."
	assert.Equal(t, "정부가 분산에너지 활성화를 위한 새로운 지원 계획을 발표했다.", MeaningfulSentence(text))
	assert.Equal(t, "…!", MeaningfulSentence("…!"))
	assert.Empty(t, MeaningfulSentence("  "))
}

func TestConciseSummaryBounded(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("전력수급기본계획 ", 20) + "발표."
	got := ConciseSummary(long)
	assert.LessOrEqual(t, textutil.RuneLen(got), SummaryRunes+1)
	assert.True(t, strings.HasSuffix(got, textutil.Ellipsis))
}

func TestSummaryFallsBackToMetaThenTitle(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><head><meta property="og:description" content="계통 안정화 대책이 나왔다. 이후 내용."></head><body></body></html>`)
	assert.Equal(t, "계통 안정화 대책이 나왔다.", Summary(doc, "https://example.kr/a", "제목"))

	empty := mustParse(t, `<html><body></body></html>`)
	assert.Equal(t, "짧은 제목", Summary(empty, "https://example.kr/a", "  짧은   제목 "))
	assert.Equal(t, "제목만", Summary(nil, "", "제목만"))
}

func TestMainTextUsesPublisherContainer(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("아이디알서비스가 수요반응 사업을 확대한다. ", 5)
	doc := mustParse(t, `<html><body><nav>메뉴</nav><div id="articleBody">`+body+`</div></body></html>`)
	got := MainText(doc, "https://example.kr/news/1")
	assert.Contains(t, got, "아이디알서비스가 수요반응 사업을 확대한다.")
	assert.Empty(t, MainText(nil, ""))
}

func TestAuthorsFromLinkedData(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><head>
<script type="application/ld+json">{"@graph":[{"@type":"NewsArticle","author":[{"name":"홍길동 기자"},{"name":"김철수"}],"datePublished":"2025-10-01T09:30:00+09:00"}]}</script>
<meta name="author" content="이영희 기자">
</head><body></body></html>`)

	assert.Equal(t, []string{"홍길동 기자", "김철수"}, Authors(doc))

	ts := PublishedAt(doc, time.UTC)
	require.NotNil(t, ts)
	assert.True(t, ts.Equal(time.Date(2025, 10, 1, 0, 30, 0, 0, time.UTC)), "got %s", ts)
}

func TestAuthorsFallBackToMarkup(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><head><script type="application/ld+json">{not json</script></head>
<body><span class="byline">By 박민수 기자 (minsu@example.kr)</span><div data-writer="정수진"></div></body></html>`)

	assert.Equal(t, []string{"박민수 기자", "정수진"}, Authors(doc))
}

func TestNormalizeAuthors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{"separators", []string{"홍길동 · 김철수 기자"}, []string{"김철수 기자", "홍길동"}},
		{"joined title", []string{"이영희기자"}, []string{"이영희 기자"}},
		{"photo title", []string{"기자명: 최지훈 사진기자"}, []string{"최지훈 사진기자"}},
		{"dedupe and cap", []string{"홍길동 기자", "홍길동 기자 / 김철수 특파원 / 박민수"}, []string{"김철수 특파원", "홍길동 기자"}},
		{"titled name after label", []string{"입력 2025.10.01 홍길동 기자"}, []string{"홍길동 기자"}},
		{"bare name fallback", []string{"입력 홍길동"}, []string{"입력"}},
		{"no hangul", []string{"John Smith"}, nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeAuthors(tt.raw))
		})
	}
}

func TestSplitNameTitle(t *testing.T) {
	t.Parallel()

	name, title := SplitNameTitle("홍길동 기자")
	assert.Equal(t, "홍길동", name)
	assert.Equal(t, "기자", title)

	name, title = SplitNameTitle("김철수")
	assert.Equal(t, "김철수", name)
	assert.Empty(t, title)
}

func TestPublishedAtFallbacks(t *testing.T) {
	t.Parallel()

	kst := time.FixedZone("KST", 9*60*60)
	meta := mustParse(t, `<html><head><meta property="article:published_time" content="2025-09-30 14:00:00"></head></html>`)
	ts := PublishedAt(meta, kst)
	require.NotNil(t, ts)
	assert.Equal(t, "2025-09-30", ts.In(kst).Format(domain.DateLayout))

	tag := mustParse(t, `<html><body><time datetime="2025-09-29T23:00:00Z">어제</time></body></html>`)
	ts = PublishedAt(tag, kst)
	require.NotNil(t, ts)
	assert.Equal(t, "2025-09-30", ts.In(kst).Format(domain.DateLayout))

	assert.Nil(t, PublishedAt(mustParse(t, `<html><body><time datetime="soon">곧</time></body></html>`), kst))
}

func TestDetail(t *testing.T) {
	t.Parallel()

	page := domain.Page{FinalURL: "https://example.kr/a", Markup: `<html><head><meta name="byl" content="홍길동 기자"></head></html>`}
	d := Detail(page, mustParse(t, page.Markup), time.UTC)
	assert.Equal(t, page.FinalURL, d.FinalURL)
	assert.Equal(t, []string{"홍길동 기자"}, d.Authors)
	assert.Nil(t, d.PublishedAt)
}
