package entity

// Snapshot is the complete persisted state of a game.
type Snapshot struct {
	Players   []Player `json:"players"`
	Rounds    int      `json:"rounds"`
	RoundBids [][]int  `json:"roundBids"`
}

// Clone returns a deep copy so readers never share slices with the owner.
func (that Snapshot) Clone() Snapshot {
	clone := Snapshot{
		Players:   make([]Player, len(that.Players)),
		Rounds:    that.Rounds,
		RoundBids: make([][]int, len(that.RoundBids)),
	}

	copy(clone.Players, that.Players)

	for i, row := range that.RoundBids {
		clone.RoundBids[i] = make([]int, len(row))
		copy(clone.RoundBids[i], row)
	}

	return clone
}

func (that Snapshot) IsEmpty() bool {
	return len(that.Players) == 0 && that.Rounds == 0 && len(that.RoundBids) == 0
}

// PlayerTotal sums the bids of one player over every round.
func (that Snapshot) PlayerTotal(playerIndex int) int {
	total := 0
	for _, row := range that.RoundBids {
		if playerIndex < len(row) {
			total += row[playerIndex]
		}
	}

	return total
}
