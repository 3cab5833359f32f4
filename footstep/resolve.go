package footstep

// Resolve picks the profile for a terrain code, falling back to def.
// It returns false when the code is unmapped and def is nil; callers treat that as no footstep.
func Resolve(code int, table TerrainTable, def *SoundProfile) (SoundProfile, bool) {
	if p, ok := table.Lookup(code); ok {
		return p, true
	}
	if def == nil {
		return SoundProfile{}, false
	}
	return *def, true
}

// Evaluate reports whether a profile's play condition lets it sound, given the current value of
// the condition's variable.
func Evaluate(cond *PlayCondition, value int) bool {
	if cond == nil || !cond.Enabled {
		return true
	}
	if cond.VariableID == 0 {
		return false
	}

	switch cond.Operator {
	case OpEqual:
		return value == cond.Value
	case OpNotEqual:
		return value != cond.Value
	case OpGreater:
		return value > cond.Value
	case OpLess:
		return value < cond.Value
	case OpGreaterEqual:
		return value >= cond.Value
	case OpLessEqual:
		return value <= cond.Value
	}
	return false
}
