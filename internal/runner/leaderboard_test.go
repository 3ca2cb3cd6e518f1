package runner

import (
	"reflect"
	"testing"
)

func TestLeaderboardTopFive(t *testing.T) {
	l := NewLeaderboard(5)

	for _, s := range []int{50, 200, 10, 300, 150, 400} {
		l.Add(s)
	}

	expected := []int{400, 300, 200, 150, 50}
	if got := l.Scores(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Scores() = %v, expected %v", got, expected)
	}
	if l.Best() != 400 {
		t.Errorf("Best() = %d, expected 400", l.Best())
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	l := NewLeaderboard(5)

	if l.Best() != 0 {
		t.Errorf("empty board Best() = %d, expected 0", l.Best())
	}
	if len(l.Scores()) != 0 {
		t.Errorf("empty board should have no scores, got %v", l.Scores())
	}
}

func TestLeaderboardSeed(t *testing.T) {
	l := NewLeaderboard(3)

	l.Add(999)
	l.Seed([]int{10, 70, 30, 50, 20})

	expected := []int{70, 50, 30}
	if got := l.Scores(); !reflect.DeepEqual(got, expected) {
		t.Errorf("after Seed, Scores() = %v, expected %v", got, expected)
	}
}

func TestLeaderboardScoresCopy(t *testing.T) {
	l := NewLeaderboard(5)
	l.Add(100)

	scores := l.Scores()
	scores[0] = 1

	if l.Best() != 100 {
		t.Error("mutating the returned slice must not affect the board")
	}
}
