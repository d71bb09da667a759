package rank

import (
	"math/rand"
	"sort"

	"NewsScraper/internal/domain"
)

// ShuffleFunc has the shape of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// RandomShuffle is the default, unseeded shuffle.
var RandomShuffle ShuffleFunc = rand.Shuffle

// SelectDay orders one day's items by score, then parse rank, and keeps the
// first perDay. The input slice is not modified.
func SelectDay(items []domain.ScoredItem, perDay int) []domain.ScoredItem {
	sorted := append([]domain.ScoredItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PriorityScore != sorted[j].PriorityScore {
			return sorted[i].PriorityScore > sorted[j].PriorityScore
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	if perDay >= 0 && len(sorted) > perDay {
		sorted = sorted[:perDay]
	}
	return sorted
}

// Finalize shuffles the pooled rows, keeps at most limit of them and
// numbers the survivors 1..N. A nil shuffle means RandomShuffle.
func Finalize(pooled []domain.ResultRow, limit int, shuffle ShuffleFunc) []domain.ResultRow {
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	rows := append([]domain.ResultRow(nil), pooled...)
	shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].Seq = i + 1
	}
	return rows
}
