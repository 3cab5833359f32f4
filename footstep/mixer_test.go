package footstep

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_SelectsSide(t *testing.T) {
	p := stoneProfile()
	cfg := MixerConfig{}

	left, ok := Compute(p, SideLeft, cfg, 0, fixedRand(0.5))
	require.True(t, ok)
	assert.Equal(t, "footL2", left.Name)

	right, ok := Compute(p, SideRight, cfg, 0, fixedRand(0.5))
	require.True(t, ok)
	assert.Equal(t, "footR2", right.Name)
}

func TestCompute_EmptySideIsSilent(t *testing.T) {
	p := SoundProfile{Left: "sand", Volume: 60, Pitch: 90}

	_, ok := Compute(p, SideRight, MixerConfig{}, 0, fixedRand(0.5))
	assert.False(t, ok)
}

func TestCompute_PitchBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := MixerConfig{PitchJitter: 8}

	for i := 0; i < 10000; i++ {
		snd, ok := Compute(SoundProfile{Left: "a", Pitch: 100, Volume: 50}, SideLeft, cfg, 0, rng)
		require.True(t, ok)
		require.GreaterOrEqual(t, snd.Pitch, 92)
		require.LessOrEqual(t, snd.Pitch, 108)
	}

	for i := 0; i < 10000; i++ {
		snd, _ := Compute(SoundProfile{Left: "a", Pitch: 148, Volume: 50}, SideLeft, cfg, 0, rng)
		require.LessOrEqual(t, snd.Pitch, MaxPitch)
		require.GreaterOrEqual(t, snd.Pitch, 140)
	}
}

func TestCompute_JitterExtremes(t *testing.T) {
	p := SoundProfile{Left: "a", Pitch: 100, Volume: 50}
	cfg := MixerConfig{PitchJitter: 8, VolumeJitter: 5}

	low, _ := Compute(p, SideLeft, cfg, 0, fixedRand(0))
	assert.Equal(t, 92, low.Pitch)
	assert.Equal(t, 45, low.Volume)

	mid, _ := Compute(p, SideLeft, cfg, 0, fixedRand(0.5))
	assert.Equal(t, 100, mid.Pitch)
	assert.Equal(t, 50, mid.Volume)
}

func TestCompute_Clamping(t *testing.T) {
	cfg := MixerConfig{PitchJitter: 20, VolumeJitter: 20}

	hi, _ := Compute(SoundProfile{Left: "a", Pitch: 145, Volume: 95}, SideLeft, cfg, 0, fixedRand(0.999))
	assert.Equal(t, MaxPitch, hi.Pitch)
	assert.Equal(t, MaxVolume, hi.Volume)

	lo, _ := Compute(SoundProfile{Left: "a", Pitch: 55, Volume: 5}, SideLeft, cfg, 0, fixedRand(0))
	assert.Equal(t, MinPitch, lo.Pitch)
	assert.Equal(t, MinVolume, lo.Volume)
}

func TestCompute_MasterVolume(t *testing.T) {
	p := SoundProfile{Left: "a", Pitch: 100, Volume: 90}

	tests := []struct {
		name       string
		configured bool
		master     int
		want       int
	}{
		{"half", true, 50, 45},
		{"full", true, 100, 90},
		{"muted", true, 0, 0},
		{"above range clamps to full", true, 250, 90},
		{"below range clamps to mute", true, -20, 0},
		{"not configured ignores value", false, 10, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MixerConfig{MasterVolumeConfigured: tt.configured}
			snd, ok := Compute(p, SideLeft, cfg, tt.master, fixedRand(0.5))
			require.True(t, ok)
			assert.Equal(t, tt.want, snd.Volume)
		})
	}
}

func TestCompute_ZeroRangeIgnoresRand(t *testing.T) {
	snd, ok := Compute(SoundProfile{Left: "a", Pitch: 100, Volume: 90}, SideLeft, MixerConfig{}, 0, nil)
	require.True(t, ok)
	assert.Equal(t, 100, snd.Pitch)
	assert.Equal(t, 90, snd.Volume)
	assert.Zero(t, snd.Pan)
}
