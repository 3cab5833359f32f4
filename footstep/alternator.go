package footstep

// Side is the foot that plays next
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// FootAlternator holds the left/right cursor. The zero value starts on the left foot.
type FootAlternator struct {
	right bool
}

// Current returns the foot that plays on the next attempt
func (a *FootAlternator) Current() Side {
	if a.right {
		return SideRight
	}
	return SideLeft
}

// Advance flips to the other foot
func (a *FootAlternator) Advance() {
	a.right = !a.right
}

// Reset puts the cursor back on the left foot
func (a *FootAlternator) Reset() {
	a.right = false
}
