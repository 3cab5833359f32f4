package assets

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/footfall/config"
)

func TestLoadLevel_Demo(t *testing.T) {
	m, err := LoadLevel("")
	require.NoError(t, err)

	assert.Equal(t, 20, m.Width)
	assert.Equal(t, 11, m.Height)
	assert.Equal(t, config.Walker.TileSize, m.TileWidth)

	assert.True(t, m.SolidAt(0, 0), "border is walled")
	assert.True(t, m.SolidAt(9, 3), "stone/wood divider")
	assert.False(t, m.SolidAt(config.Walker.StartX, config.Walker.StartY), "player starts on open ground")

	assert.Equal(t, config.TerrainGrass, m.TerrainAt(1, 1))
	assert.Equal(t, config.TerrainStone, m.TerrainAt(6, 4))
	assert.Equal(t, config.TerrainWood, m.TerrainAt(10, 4))
	assert.Equal(t, config.TerrainPuddle, m.TerrainAt(13, 7))
	assert.Equal(t, config.TerrainSand, m.TerrainAt(13, 2))
	assert.Zero(t, m.TerrainAt(16, 4), "dirt has no terrain code")
}

func TestLoadLevel_MissingFile(t *testing.T) {
	_, err := LoadLevel("does/not/exist.tmx")
	assert.Error(t, err)
}

func TestPitchedSampleRate(t *testing.T) {
	tests := []struct {
		pitch int
		want  int
	}{
		{100, 44100},
		{150, 66150},
		{50, 22050},
		{0, 44100},
		{-10, 44100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pitchedSampleRate(44100, tt.pitch), "pitch %d", tt.pitch)
	}
}

func stereoFrame(l, r int16) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint16(b, uint16(l))
	binary.LittleEndian.PutUint16(b[2:], uint16(r))
	return b
}

func readFrame(b []byte) (int16, int16) {
	return int16(binary.LittleEndian.Uint16(b)), int16(binary.LittleEndian.Uint16(b[2:]))
}

func TestApplyPan(t *testing.T) {
	src := stereoFrame(1000, -1000)

	tests := []struct {
		name  string
		pan   int
		wantL int16
		wantR int16
	}{
		{"hard left", -100, 1000, 0},
		{"half right", 50, 500, -1000},
		{"hard right", 100, 0, -1000},
		{"clamped", 300, 0, -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := applyPan(src, tt.pan)
			l, r := readFrame(out)
			assert.Equal(t, tt.wantL, l)
			assert.Equal(t, tt.wantR, r)
		})
	}

	l, r := readFrame(src)
	assert.Equal(t, int16(1000), l, "source is not modified")
	assert.Equal(t, int16(-1000), r)
}
