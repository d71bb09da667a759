// Package rank filters, scores and selects articles for the report.
package rank

import (
	"net/url"
	"strings"

	"NewsScraper/internal/config"
)

// PriorityHostBonus is added once when the article lives on a priority outlet.
const PriorityHostBonus = 20

// Scorer applies the exclusion list and the weighted terms.
type Scorer struct {
	weights  []config.TermWeight
	excluded []string
}

// NewScorer lowercases the weighted terms. Entries that fold to the same
// term are all kept, so each of them adds its weight.
func NewScorer(terms config.TermsConfig) *Scorer {
	weights := make([]config.TermWeight, 0, len(terms.Weights))
	for _, w := range terms.Weights {
		key := strings.ToLower(strings.TrimSpace(w.Term))
		if key == "" {
			continue
		}
		weights = append(weights, config.TermWeight{Term: key, Weight: w.Weight})
	}

	excluded := make([]string, 0, len(terms.Excluded))
	for _, t := range terms.Excluded {
		if t = strings.TrimSpace(t); t != "" {
			excluded = append(excluded, t)
		}
	}

	return &Scorer{weights: weights, excluded: excluded}
}

// Excluded reports whether any text contains an excluded term. Texts are
// also checked in percent-decoded form so Hangul in URLs is matched.
func (s *Scorer) Excluded(texts ...string) bool {
	for _, text := range texts {
		if text == "" {
			continue
		}
		if s.containsExcluded(text) {
			return true
		}
		if decoded, err := url.PathUnescape(text); err == nil && decoded != text && s.containsExcluded(decoded) {
			return true
		}
	}
	return false
}

func (s *Scorer) containsExcluded(text string) bool {
	for _, term := range s.excluded {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// Score sums the host bonus and the weight of every table entry whose term
// is present in the title, summary or final URL. Each entry counts at most once.
func (s *Scorer) Score(title, summary, finalURL string, priorityHost bool) int {
	score := 0
	if priorityHost {
		score += PriorityHostBonus
	}
	blob := strings.ToLower(strings.Join([]string{title, summary, finalURL}, " "))
	for _, w := range s.weights {
		if strings.Contains(blob, w.Term) {
			score += w.Weight
		}
	}
	return score
}
