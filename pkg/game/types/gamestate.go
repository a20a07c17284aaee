package types

// WorldState is the authoritative snapshot returned by every input tick.
// It fully replaces the previous snapshot; the client never merges states.
type WorldState struct {
	// Level is the static geometry plus door and plate flags.
	Level Level `json:"level"`
	// Players maps player IDs ("p1", "p2") to player states.
	Players map[string]*PlayerState `json:"players"`
	// Win is true once every player has reached the goal.
	Win bool `json:"win"`
	// Raw is the undecoded response body the state was read from.
	Raw []byte `json:"-"`
}

// Rect is an axis-aligned box in canvas coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Plate is a pressure plate. Player is set on duo plates that only react to one player.
type Plate struct {
	Rect
	Active    bool   `json:"active"`
	Triggered bool   `json:"triggered,omitempty"`
	Duo       bool   `json:"duo,omitempty"`
	Player    string `json:"player,omitempty"`
}

type Level struct {
	Tiles          []Rect  `json:"tiles"`
	Doors          []Rect  `json:"doors,omitempty"`
	PressurePlates []Plate `json:"pressure_plates,omitempty"`
	Goal           Rect    `json:"goal"`
	GoalDoor       *Rect   `json:"goal_door,omitempty"`
	GoalPlate      *Plate  `json:"goal_plate,omitempty"`
	GoalPlates     []Plate `json:"goal_plates,omitempty"`
	DoorsOpen      bool    `json:"doors_open"`
	GoalLocked     bool    `json:"goal_locked,omitempty"`
}
