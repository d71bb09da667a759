package extract

import (
	"NewsScraper/internal/document"
	"NewsScraper/internal/textutil"
)

// SummaryRunes bounds a summary before the ellipsis.
const SummaryRunes = 30

// boilerplateMarkers flag copyright, byline and photo-credit sentences.
var boilerplateMarkers = []string{"무단전재", "재배포", "저작권", "사진", "기자", "연합뉴스"}

// Summary returns a one-sentence summary of at most SummaryRunes runes
// plus an ellipsis. It falls back to og:description, the description meta
// tag and finally titleFallback.
func Summary(doc *document.Document, pageURL, titleFallback string) string {
	var steps []func() string
	if doc != nil {
		steps = append(steps,
			func() string { return ConciseSummary(MainText(doc, pageURL)) },
			func() string { return ConciseSummary(doc.Meta("og:description")) },
			func() string { return ConciseSummary(doc.Meta("description")) },
		)
	}
	steps = append(steps, func() string {
		return textutil.Truncate(textutil.Clean(titleFallback), SummaryRunes)
	})
	return FirstNonEmpty(steps...)
}

// ConciseSummary picks the first meaningful sentence and truncates it.
func ConciseSummary(text string) string {
	return textutil.Truncate(MeaningfulSentence(text), SummaryRunes)
}

// MeaningfulSentence skips short boilerplate sentences and sentences with
// almost no letters, returning the first raw sentence if nothing survives.
func MeaningfulSentence(text string) string {
	parts := textutil.Sentences(text)
	if len(parts) == 0 {
		return ""
	}
	for _, s := range parts {
		if textutil.RuneLen(s) < 30 && textutil.ContainsAny(s, boilerplateMarkers...) {
			continue
		}
		if textutil.CountWordRunes(s) < 4 {
			continue
		}
		return s
	}
	return parts[0]
}
