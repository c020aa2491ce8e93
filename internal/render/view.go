package render

import (
	"strconv"

	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
)

const (
	roundHeader = "Round"
	totalLabel  = "Total"
)

type Cell struct {
	PlayerIndex int    `json:"player"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
}

type Row struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
	Class  string `json:"class"`
	Cells  []Cell `json:"cells"`
}

// View is everything the page draws: the header, one row per round, the totals and the ranking.
type View struct {
	Header      []string           `json:"header"`
	Rows        []Row              `json:"rows"`
	TotalLabel  string             `json:"totalLabel"`
	Totals      []int              `json:"totals"`
	Ranking     []entity.RankEntry `json:"ranking"`
	RankingText []string           `json:"rankingText"`
}

func Build(snapshot entity.Snapshot) View {
	view := View{
		Header:      make([]string, 0, len(snapshot.Players)+1),
		Rows:        make([]Row, 0, len(snapshot.RoundBids)),
		TotalLabel:  totalLabel,
		Totals:      make([]int, 0, len(snapshot.Players)),
		Ranking:     entity.Rank(snapshot.Players),
		RankingText: make([]string, 0, len(snapshot.Players)),
	}

	view.Header = append(view.Header, roundHeader)
	for _, player := range snapshot.Players {
		view.Header = append(view.Header, player.Name)
		view.Totals = append(view.Totals, player.TotalScore)
	}

	for i, bids := range snapshot.RoundBids {
		round := entity.NewRound(i + 1)

		row := Row{
			Index:  round.Index,
			Label:  round.Label(),
			Symbol: round.Suit.Symbol(),
			Class:  round.Suit.Class(),
			Cells:  make([]Cell, 0, len(snapshot.Players)),
		}

		for j, player := range snapshot.Players {
			row.Cells = append(row.Cells, Cell{
				PlayerIndex: j,
				Placeholder: player.Name,
				Value:       bidText(bids, j),
			})
		}

		view.Rows = append(view.Rows, row)
	}

	for _, entry := range view.Ranking {
		view.RankingText = append(view.RankingText, entry.String())
	}

	return view
}

// bidText leaves untouched cells blank so the placeholder shows through.
func bidText(bids []int, index int) string {
	if index >= len(bids) || bids[index] == 0 {
		return ""
	}

	return strconv.Itoa(bids[index])
}
