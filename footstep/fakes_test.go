package footstep

type fakeJumper struct{ airborne bool }

func (j *fakeJumper) IsAirborne() bool { return j.airborne }

type fakeCharacter struct {
	normal  bool
	forced  bool
	event   bool
	terrain int
	jumper  *fakeJumper
}

func walking(terrain int) *fakeCharacter {
	return &fakeCharacter{normal: true, terrain: terrain}
}

func (c *fakeCharacter) IsNormal() bool           { return c.normal }
func (c *fakeCharacter) IsMoveRouteForcing() bool { return c.forced }
func (c *fakeCharacter) IsEventRunning() bool     { return c.event }
func (c *fakeCharacter) TerrainTag() int          { return c.terrain }

func (c *fakeCharacter) Jumper() Jumper {
	if c.jumper == nil {
		return nil
	}
	return c.jumper
}

type fakeInput struct{ triggered map[string]bool }

func (i *fakeInput) IsTriggered(symbol string) bool { return i.triggered[symbol] }

type fakeGame struct {
	switches  map[int]bool
	variables map[int]int
}

func newFakeGame() *fakeGame {
	return &fakeGame{switches: map[int]bool{}, variables: map[int]int{}}
}

func (g *fakeGame) Switch(id int) bool  { return g.switches[id] }
func (g *fakeGame) Variable(id int) int { return g.variables[id] }

type recordingSink struct{ played []Sound }

func (s *recordingSink) Play(snd Sound) { s.played = append(s.played, snd) }

// fixedRand always returns v, so jitter is v*2-1 of the range
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
