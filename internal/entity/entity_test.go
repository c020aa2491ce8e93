package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitForRound(t *testing.T) {
	t.Run("Cycles every four rounds starting with spade", func(t *testing.T) {
		// Given: the first eight rounds
		expected := []Suit{Spade, Diamond, Club, Heart, Spade, Diamond, Club, Heart}

		for i, want := range expected {
			// When: the suit of round i+1 is derived
			got := SuitForRound(i + 1)

			// Then: it follows the fixed cycle
			assert.Equal(t, want, got, "round %d", i+1)
		}
	})

	t.Run("Symbols and classes match the suit", func(t *testing.T) {
		assert.Equal(t, "♠", NewRound(1).Suit.Symbol())
		assert.Equal(t, "♦", NewRound(2).Suit.Symbol())
		assert.Equal(t, "♣", NewRound(3).Suit.Symbol())
		assert.Equal(t, "♥", NewRound(4).Suit.Symbol())
		assert.Equal(t, "♠", NewRound(5).Suit.Symbol())

		assert.Equal(t, "heart-symbol", Heart.Class())
		assert.Equal(t, "Round 7", NewRound(7).Label())
	})

	t.Run("Unknown suit has no symbol", func(t *testing.T) {
		assert.Empty(t, Suit(9).Symbol())
		assert.Equal(t, "suit(9)", Suit(9).String())
	})
}

func TestSanitizeBid(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"12":      "12",
		"-3":      "-3",
		"a1b2c":   "12",
		" 4 ":     "4",
		"+5":      "5",
		"1.5":     "15",
		"--2x-":   "--2-",
		"٣":       "",
		"seven 7": "7",
	}

	for raw, want := range cases {
		assert.Equal(t, want, SanitizeBid(raw), "raw %q", raw)
	}
}

func TestParseBid(t *testing.T) {
	cases := map[string]int{
		"":                      0,
		"-":                     0,
		"--3":                   0,
		"abc":                   0,
		"7":                     7,
		"-4":                    -4,
		"5-3":                   5,
		"-0":                    0,
		"x1y0":                  10,
		"99999999999999999999":  0,
		"-99999999999999999999": 0,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseBid(raw), "raw %q", raw)
	}
}

func TestSnapshot(t *testing.T) {
	t.Run("Clone does not share rows", func(t *testing.T) {
		// Given: a snapshot with one round
		snapshot := Snapshot{
			Players:   []Player{{Name: "A", TotalScore: 3}},
			Rounds:    1,
			RoundBids: [][]int{{3}},
		}

		// When: the clone is mutated
		clone := snapshot.Clone()
		clone.Players[0].TotalScore = 10
		clone.RoundBids[0][0] = 10

		// Then: the original is untouched
		assert.Equal(t, 3, snapshot.Players[0].TotalScore)
		assert.Equal(t, 3, snapshot.RoundBids[0][0])
	})

	t.Run("PlayerTotal sums a column and skips short rows", func(t *testing.T) {
		snapshot := Snapshot{RoundBids: [][]int{{3, 1}, {-2}, {5, 4}}}

		assert.Equal(t, 6, snapshot.PlayerTotal(0))
		assert.Equal(t, 5, snapshot.PlayerTotal(1))
		assert.Equal(t, 0, snapshot.PlayerTotal(2))
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.True(t, Snapshot{}.IsEmpty())
		assert.False(t, Snapshot{Rounds: 1, RoundBids: [][]int{{}}}.IsEmpty())
	})
}

func TestRank(t *testing.T) {
	t.Run("Orders by total descending", func(t *testing.T) {
		// Given: players with totals A:5, B:9, C:9 in join order
		players := []Player{{Name: "A", TotalScore: 5}, {Name: "B", TotalScore: 9}, {Name: "C", TotalScore: 9}}

		// When: the ranking is built
		ranking := Rank(players)

		// Then: B and C lead in join order and A is last
		require.Len(t, ranking, 3)
		assert.Equal(t, "1. B: 9 points", ranking[0].String())
		assert.Equal(t, "2. C: 9 points", ranking[1].String())
		assert.Equal(t, "3. A: 5 points", ranking[2].String())
	})

	t.Run("Ties keep join order for any number of tied players", func(t *testing.T) {
		// Given: many players sharing the same total, with a leader in the middle
		players := make([]Player, 0, 40)
		for i := 0; i < 40; i++ {
			players = append(players, Player{Name: string(rune('a'+i%26)) + string(rune('0'+i/26)), TotalScore: 1})
		}
		players[20].TotalScore = 2

		// When: the ranking is built
		ranking := Rank(players)

		// Then: the leader is first and everyone else follows in join order
		assert.Equal(t, players[20].Name, ranking[0].Name)

		rest := make([]string, 0, 39)
		for i, player := range players {
			if i != 20 {
				rest = append(rest, player.Name)
			}
		}

		got := make([]string, 0, 39)
		for _, entry := range ranking[1:] {
			got = append(got, entry.Name)
		}

		assert.Equal(t, rest, got)
	})

	t.Run("Negative totals rank below zero", func(t *testing.T) {
		ranking := Rank([]Player{{Name: "neg", TotalScore: -3}, {Name: "zero"}})

		assert.Equal(t, "1. zero: 0 points", ranking[0].String())
		assert.Equal(t, "2. neg: -3 points", ranking[1].String())
	})

	t.Run("Does not reorder the input", func(t *testing.T) {
		players := []Player{{Name: "A", TotalScore: 1}, {Name: "B", TotalScore: 2}}

		_ = Rank(players)

		assert.Equal(t, "A", players[0].Name)
	})
}
