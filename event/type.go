package event

import "github.com/lixenwraith/paddle-duel/core"

// Type identifies a resolver outcome
type Type uint8

const (
	TypePaddleBounce Type = iota
	TypeWallBounce
	TypeGoal
)

func (t Type) String() string {
	switch t {
	case TypePaddleBounce:
		return "paddle_bounce"
	case TypeWallBounce:
		return "wall_bounce"
	case TypeGoal:
		return "goal"
	}
	return "unknown"
}

// Event is a single resolver outcome for the frame it occurred in
type Event struct {
	Type  Type
	Side  core.Side
	Frame uint64
}
