package shape

import "time"

// Light is the state of a traffic light. It can be Red, Yellow or Green.
type Light int

const (
	Red Light = iota
	Yellow
	Green
)

// String returns the colour name, like "Red".
func (l Light) String() string {
	switch l {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	default:
		return "<invalid shape.Light>"
	}
}

// Duration returns how long the light stays in this state.
// It panics if l is not a valid Light.
func (l Light) Duration() time.Duration {
	switch l {
	case Red:
		return 60 * time.Second
	case Yellow:
		return 10 * time.Second
	case Green:
		return 50 * time.Second
	default:
		panic("unhandled case in Duration")
	}
}

// Next returns the state that follows l: Red, then Green, then Yellow,
// then Red again.
func (l Light) Next() Light {
	switch l {
	case Red:
		return Green
	case Green:
		return Yellow
	case Yellow:
		return Red
	default:
		panic("unhandled case in Next")
	}
}
