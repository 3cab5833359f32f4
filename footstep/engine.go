package footstep

import (
	"math/rand/v2"
)

// InputState reports input symbols triggered on the current tick
type InputState interface {
	IsTriggered(symbol string) bool
}

// Jumper is the optional jump capability of a character
type Jumper interface {
	IsAirborne() bool
}

// Character is the motion state of the stepping character at the moment the step completed
type Character interface {
	IsNormal() bool
	IsMoveRouteForcing() bool
	IsEventRunning() bool
	TerrainTag() int
	// Jumper returns nil when the character cannot leave the ground
	Jumper() Jumper
}

// GameState exposes the game's switches and variables
type GameState interface {
	Switch(id int) bool
	Variable(id int) int
}

// AudioSink plays a sound. Results are not reported back.
type AudioSink interface {
	Play(s Sound)
}

// StepEvent is published by the movement simulation each time a character completes a step
type StepEvent struct {
	Character Character
}

// StepListener receives step events in order
type StepListener interface {
	OnStepAdvanced(ev StepEvent)
}

// Options are the engine's collaborators. Rand defaults to a process-seeded source.
type Options struct {
	Game  GameState
	Input InputState
	Sink  AudioSink
	Rand  Rand
}

// Engine runs the footstep pipeline for one session. It is not safe for concurrent use;
// step events are expected one at a time from the simulation loop.
type Engine struct {
	settings Settings
	feet     FootAlternator
	game     GameState
	input    InputState
	sink     AudioSink
	rng      Rand
}

var _ StepListener = (*Engine)(nil)

func NewEngine(settings Settings, opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		settings: settings,
		game:     opts.Game,
		input:    opts.Input,
		sink:     opts.Sink,
		rng:      rng,
	}
}

// OnStepAdvanced runs the pipeline for one completed step
func (e *Engine) OnStepAdvanced(ev StepEvent) {
	if ev.Character == nil {
		return
	}
	if !ShouldAttempt(e.suppressionContext(ev.Character), e.settings.MasterSwitchID != 0) {
		return
	}

	profile, ok := Resolve(ev.Character.TerrainTag(), e.settings.Table, e.settings.Default)
	if !ok {
		return
	}

	// Every attempt past this point moves the cursor, whether or not anything plays.
	side := e.feet.Current()
	defer e.feet.Advance()

	if !Evaluate(profile.Condition, e.conditionValue(profile.Condition)) {
		return
	}

	snd, ok := Compute(profile, side, e.settings.Mixer, e.masterVolume(), e.rng)
	if !ok {
		return
	}
	if e.sink != nil {
		e.sink.Play(snd)
	}
}

// Side returns the foot that plays on the next attempt
func (e *Engine) Side() Side {
	return e.feet.Current()
}

// Reset starts the gait over on the left foot. Call it only when the session is re-initialised.
func (e *Engine) Reset() {
	e.feet.Reset()
}

// Settings returns the engine's immutable configuration
func (e *Engine) Settings() Settings {
	return e.settings
}

func (e *Engine) suppressionContext(c Character) SuppressionContext {
	ctx := SuppressionContext{
		NormalState:      c.IsNormal(),
		MoveRouteForcing: c.IsMoveRouteForcing(),
		EventRunning:     c.IsEventRunning(),
	}
	if e.input != nil && e.settings.JumpSymbol != "" {
		ctx.JumpTriggered = e.input.IsTriggered(e.settings.JumpSymbol)
	}
	if j := c.Jumper(); j != nil {
		ctx.Airborne = j.IsAirborne()
	}
	if e.settings.MasterSwitchID != 0 && e.game != nil {
		ctx.MasterSwitchOn = e.game.Switch(e.settings.MasterSwitchID)
	}
	return ctx
}

func (e *Engine) conditionValue(cond *PlayCondition) int {
	if cond == nil || cond.VariableID == 0 || e.game == nil {
		return 0
	}
	return e.game.Variable(cond.VariableID)
}

func (e *Engine) masterVolume() int {
	if e.settings.MasterVolumeVariableID == 0 || e.game == nil {
		return MaxVolume
	}
	return e.game.Variable(e.settings.MasterVolumeVariableID)
}
