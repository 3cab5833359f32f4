package footstep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stoneProfile() SoundProfile {
	return SoundProfile{Left: "footL2", Right: "footR2", Volume: 90, Pitch: 100}
}

func TestNewTerrainTable_DropsUnusableEntries(t *testing.T) {
	table := NewTerrainTable([]TerrainEntry{
		{Code: 0, Profile: stoneProfile()},
		{Code: -3, Profile: stoneProfile()},
		{Code: 4, Profile: SoundProfile{Volume: 90, Pitch: 100}},
		{Code: 5, Profile: SoundProfile{Left: "sand", Volume: 60, Pitch: 90}},
		{Code: 2, Profile: stoneProfile()},
	})

	assert.Equal(t, 2, table.Len())

	for _, code := range []int{0, -3, 4} {
		_, ok := table.Lookup(code)
		assert.False(t, ok, "code %d should have been dropped", code)
	}

	p, ok := table.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "sand", p.Left)
	assert.Empty(t, p.Right)
}

func TestNewTerrainTable_LastDuplicateWins(t *testing.T) {
	table := NewTerrainTable([]TerrainEntry{
		{Code: 1, Profile: SoundProfile{Left: "a", Right: "a"}},
		{Code: 1, Profile: SoundProfile{Left: "b", Right: "b"}},
	})

	p, ok := table.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "b", p.Left)
}

func TestResolve(t *testing.T) {
	table := NewTerrainTable([]TerrainEntry{{Code: 2, Profile: stoneProfile()}})
	def := &SoundProfile{Left: "dirtL", Right: "dirtR", Volume: 70, Pitch: 100}

	tests := []struct {
		name     string
		code     int
		def      *SoundProfile
		wantOK   bool
		wantLeft string
	}{
		{"mapped terrain", 2, def, true, "footL2"},
		{"mapped terrain without default", 2, nil, true, "footL2"},
		{"unmapped terrain falls back", 3, def, true, "dirtL"},
		{"unmapped terrain without default", 3, nil, false, ""},
		{"zero code falls back", 0, def, true, "dirtL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Resolve(tt.code, table, tt.def)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLeft, p.Left)
		})
	}
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		op    Operator
		value int
		want  bool
	}{
		{OpEqual, 10, true},
		{OpEqual, 9, false},
		{OpNotEqual, 9, true},
		{OpNotEqual, 10, false},
		{OpGreater, 11, true},
		{OpGreater, 10, false},
		{OpLess, 9, true},
		{OpLess, 10, false},
		{OpGreaterEqual, 10, true},
		{OpGreaterEqual, 9, false},
		{OpLessEqual, 10, true},
		{OpLessEqual, 11, false},
		{OpUnknown, 10, false},
		{Operator(99), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			cond := &PlayCondition{Enabled: true, VariableID: 5, Operator: tt.op, Value: 10}
			assert.Equal(t, tt.want, Evaluate(cond, tt.value))
		})
	}
}

func TestEvaluate_Gating(t *testing.T) {
	ge := &PlayCondition{Enabled: true, VariableID: 5, Operator: OpGreaterEqual, Value: 10}
	assert.True(t, Evaluate(ge, 10))
	assert.False(t, Evaluate(ge, 9))

	disabled := &PlayCondition{Enabled: false, VariableID: 5, Operator: OpGreaterEqual, Value: 10}
	assert.True(t, Evaluate(disabled, -100))

	assert.True(t, Evaluate(nil, 0))

	unset := &PlayCondition{Enabled: true, VariableID: 0, Operator: OpEqual, Value: 0}
	assert.False(t, Evaluate(unset, 0), "an enabled condition without a variable never passes")
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input string
		want  Operator
	}{
		{"==", OpEqual},
		{"eq", OpEqual},
		{"!=", OpNotEqual},
		{">", OpGreater},
		{"<", OpLess},
		{">=", OpGreaterEqual},
		{"le", OpLessEqual},
		{"=>", OpUnknown},
		{"", OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOperator(tt.input))
		})
	}
}
