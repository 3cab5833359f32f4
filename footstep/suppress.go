package footstep

// SuppressionContext is a snapshot of the input and motion state taken when a step completes
type SuppressionContext struct {
	JumpTriggered    bool // jump input fired on this tick
	Airborne         bool
	MasterSwitchOn   bool
	NormalState      bool // on foot, not riding or transferring
	MoveRouteForcing bool
	EventRunning     bool // a blocking map event is in progress
}

// ShouldAttempt decides whether a step gets a footstep attempt at all.
// Motion overrides are checked before the master switch, and character state last.
func ShouldAttempt(ctx SuppressionContext, masterSwitchConfigured bool) bool {
	if ctx.JumpTriggered {
		return false
	}
	if ctx.Airborne {
		return false
	}
	if masterSwitchConfigured && !ctx.MasterSwitchOn {
		return false
	}
	return ctx.NormalState && !ctx.MoveRouteForcing && !ctx.EventRunning
}
