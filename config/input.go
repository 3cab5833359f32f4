package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	// Debug controls for the external game state
	ActionToggleSwitch
	ActionVolumeUp
	ActionVolumeDown
	ActionToggleWet
	ActionToggleEvent
	ActionToggleRoute
	ActionSave
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Symbols are the names other systems use to ask about an action ("jump", "left", ...)
	Symbols map[string]ActionID
}

// Input is the global input configuration
var Input InputConfig

// ActionForSymbol resolves an input symbol to its action
func ActionForSymbol(symbol string) (ActionID, bool) {
	id, ok := Input.Symbols[symbol]
	return id, ok
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			ActionToggleSwitch: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionVolumeDown:   {Keys: []ebiten.Key{ebiten.KeyMinus}},
			ActionVolumeUp:     {Keys: []ebiten.Key{ebiten.KeyEqual}},
			ActionToggleWet:    {Keys: []ebiten.Key{ebiten.KeyF2}},
			ActionToggleEvent:  {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleRoute:  {Keys: []ebiten.Key{ebiten.KeyF4}},
			ActionSave:         {Keys: []ebiten.Key{ebiten.KeyF5}},
			ActionRestart:      {Keys: []ebiten.Key{ebiten.KeyR}},
		},
		Symbols: map[string]ActionID{
			"left":  ActionMoveLeft,
			"right": ActionMoveRight,
			"up":    ActionMoveUp,
			"down":  ActionMoveDown,
			"jump":  ActionJump,
			"shift": ActionDash,
		},
	}
}
