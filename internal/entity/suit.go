package entity

import "fmt"

type Suit int

const (
	Spade Suit = iota + 1
	Diamond
	Club
	Heart
)

const suitCount = 4

// SuitForRound returns the suit of a 1-based round: spade, diamond, club, heart, then spade again.
func SuitForRound(index int) Suit {
	position := ((index-1)%suitCount + suitCount) % suitCount

	return Suit(position + 1)
}

func (that Suit) Symbol() string {
	switch that {
	case Spade:
		return "♠"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Heart:
		return "♥"
	default:
		return ""
	}
}

func (that Suit) String() string {
	switch that {
	case Spade:
		return "spade"
	case Diamond:
		return "diamond"
	case Club:
		return "club"
	case Heart:
		return "heart"
	default:
		return fmt.Sprintf("suit(%d)", int(that))
	}
}

// Class is the css class the page uses to color the symbol.
func (that Suit) Class() string {
	return that.String() + "-symbol"
}

// Round is a 1-based round number together with its suit.
type Round struct {
	Index int  `json:"index"`
	Suit  Suit `json:"-"`
}

func NewRound(index int) Round {
	return Round{Index: index, Suit: SuitForRound(index)}
}

func (that Round) Label() string {
	return fmt.Sprintf("Round %d", that.Index)
}
