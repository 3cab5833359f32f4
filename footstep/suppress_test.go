package footstep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldAttempt(t *testing.T) {
	allowed := SuppressionContext{NormalState: true, MasterSwitchOn: true}

	tests := []struct {
		name       string
		mutate     func(*SuppressionContext)
		configured bool
		want       bool
	}{
		{"normal step", func(*SuppressionContext) {}, true, true},
		{"jump input wins over everything", func(c *SuppressionContext) { c.JumpTriggered = true }, true, false},
		{"airborne", func(c *SuppressionContext) { c.Airborne = true }, true, false},
		{"master switch off", func(c *SuppressionContext) { c.MasterSwitchOn = false }, true, false},
		{"master switch off but not configured", func(c *SuppressionContext) { c.MasterSwitchOn = false }, false, true},
		{"not in normal state", func(c *SuppressionContext) { c.NormalState = false }, true, false},
		{"move route forcing", func(c *SuppressionContext) { c.MoveRouteForcing = true }, true, false},
		{"event running", func(c *SuppressionContext) { c.EventRunning = true }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := allowed
			tt.mutate(&ctx)
			assert.Equal(t, tt.want, ShouldAttempt(ctx, tt.configured))
		})
	}
}

func TestFootAlternator(t *testing.T) {
	var a FootAlternator
	assert.Equal(t, SideLeft, a.Current())

	a.Advance()
	assert.Equal(t, SideRight, a.Current())

	a.Advance()
	assert.Equal(t, SideLeft, a.Current())

	a.Advance()
	a.Reset()
	assert.Equal(t, SideLeft, a.Current())
}
