package config

// StateID is the movement state of a character
type StateID int

const (
	StateNone StateID = iota
	StateNormal
	StateRiding   // in a vehicle
	StateTransfer // between maps
)

var stateNames = map[StateID]string{
	StateNone:     "none",
	StateNormal:   "normal",
	StateRiding:   "riding",
	StateTransfer: "transfer",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
