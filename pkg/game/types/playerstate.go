package types

const (
	PlayerOne = "p1"
	PlayerTwo = "p2"
)

type PlayerState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Color    string  `json:"color"`
	OnGround bool    `json:"on_ground"`
}
