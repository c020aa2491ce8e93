package entity

import (
	"fmt"
	"sort"
)

type RankEntry struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
}

func (that RankEntry) String() string {
	return fmt.Sprintf("%d. %s: %d points", that.Rank, that.Name, that.TotalScore)
}

// Rank orders players by total score, highest first. Players with equal totals keep their join order.
func Rank(players []Player) []RankEntry {
	ordered := make([]Player, len(players))
	copy(ordered, players)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalScore > ordered[j].TotalScore
	})

	entries := make([]RankEntry, 0, len(ordered))
	for i, player := range ordered {
		entries = append(entries, RankEntry{
			Rank:       i + 1,
			Name:       player.Name,
			TotalScore: player.TotalScore,
		})
	}

	return entries
}
