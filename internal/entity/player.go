package entity

type Player struct {
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
}

func NewPlayer(name string) Player {
	return Player{Name: name}
}
