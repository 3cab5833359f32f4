package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	assert.True(t, Loaded(Mono))
	assert.True(t, Loaded(MonoSmall))
	assert.NotNil(t, Mono.Get())
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)

	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestGet_Unknown(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
