package runner

import "sort"

// Leaderboard keeps the best scores in descending order, bounded to a fixed
// size. It seeds from persisted scores when a store is available and still
// works from memory when none is.
type Leaderboard struct {
	size   int
	scores []int
}

// NewLeaderboard creates an empty leaderboard holding up to size entries.
func NewLeaderboard(size int) *Leaderboard {
	if size < 1 {
		size = 1
	}
	return &Leaderboard{
		size:   size,
		scores: make([]int, 0, size),
	}
}

// Add inserts a score, re-sorts descending and truncates to the bound.
func (l *Leaderboard) Add(score int) {
	l.scores = append(l.scores, score)
	sort.Sort(sort.Reverse(sort.IntSlice(l.scores)))
	if len(l.scores) > l.size {
		l.scores = l.scores[:l.size]
	}
}

// Seed replaces the current entries with persisted scores, applying the same
// ordering and bound.
func (l *Leaderboard) Seed(scores []int) {
	l.scores = l.scores[:0]
	for _, s := range scores {
		l.Add(s)
	}
}

// Scores returns a copy of the entries, best first.
func (l *Leaderboard) Scores() []int {
	out := make([]int, len(l.scores))
	copy(out, l.scores)
	return out
}

// Best returns the highest entry, or 0 when empty.
func (l *Leaderboard) Best() int {
	if len(l.scores) == 0 {
		return 0
	}
	return l.scores[0]
}
