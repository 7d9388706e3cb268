package core

// Side classifies which half of the court a collision occurred on,
// derived from comparing ball x-position against the collider's center
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
