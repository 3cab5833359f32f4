// Package footstep decides when a character's footstep sounds play, which sound plays, and how loud
// and at what pitch. It has no dependency on the game loop; collaborators are plain interfaces.
package footstep

import "slices"

// Operator compares a game variable against a play condition's value
type Operator int

const (
	OpUnknown Operator = iota
	OpEqual
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
)

var operatorNames = map[string]Operator{
	"==": OpEqual,
	"=":  OpEqual,
	"eq": OpEqual,
	"!=": OpNotEqual,
	"ne": OpNotEqual,
	">":  OpGreater,
	"gt": OpGreater,
	"<":  OpLess,
	"lt": OpLess,
	">=": OpGreaterEqual,
	"ge": OpGreaterEqual,
	"<=": OpLessEqual,
	"le": OpLessEqual,
}

// ParseOperator maps a configured operator string to an Operator.
// Unrecognised strings return OpUnknown, which never matches.
func ParseOperator(s string) Operator {
	if op, ok := operatorNames[s]; ok {
		return op
	}
	return OpUnknown
}

func (o Operator) String() string {
	switch o {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterEqual:
		return ">="
	case OpLessEqual:
		return "<="
	}
	return "?"
}

// PlayCondition gates a profile on a game variable.
// VariableID 0 means unset; an enabled condition with no variable never passes.
type PlayCondition struct {
	Enabled    bool
	VariableID int
	Operator   Operator
	Value      int
}

// SoundProfile is one left/right footstep pair. An empty sound name plays nothing for that foot.
type SoundProfile struct {
	Left      string
	Right     string
	Volume    int // 0-100
	Pitch     int // 50-150
	Condition *PlayCondition
}

// Silent reports whether neither foot has a sound assigned
func (p SoundProfile) Silent() bool {
	return p.Left == "" && p.Right == ""
}

// TerrainEntry binds a terrain code to a profile before filtering
type TerrainEntry struct {
	Code    int
	Profile SoundProfile
}

// TerrainTable maps terrain codes to sound profiles. It is never modified after construction.
type TerrainTable struct {
	profiles map[int]SoundProfile
}

// NewTerrainTable builds a table, dropping entries whose code is not positive or whose profile
// has no sound on either foot. A repeated code keeps the last entry.
func NewTerrainTable(entries []TerrainEntry) TerrainTable {
	t := TerrainTable{profiles: make(map[int]SoundProfile, len(entries))}
	for _, e := range entries {
		if !acceptEntry(e) {
			continue
		}
		t.profiles[e.Code] = e.Profile
	}
	return t
}

func acceptEntry(e TerrainEntry) bool {
	return e.Code > 0 && !e.Profile.Silent()
}

// Lookup returns the profile for code, if any
func (t TerrainTable) Lookup(code int) (SoundProfile, bool) {
	p, ok := t.profiles[code]
	return p, ok
}

// Len returns the number of terrain codes with a profile
func (t TerrainTable) Len() int {
	return len(t.profiles)
}

// Profiles returns the table's profiles ordered by terrain code
func (t TerrainTable) Profiles() []SoundProfile {
	codes := make([]int, 0, len(t.profiles))
	for code := range t.profiles {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	out := make([]SoundProfile, 0, len(codes))
	for _, code := range codes {
		out = append(out, t.profiles[code])
	}
	return out
}
