package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSound_Bell(t *testing.T) {
	resource, err := Sound(BellSound)
	require.NoError(t, err)
	assert.Equal(t, "sounds/bell.wav", resource.Name())
	assert.Equal(t, "RIFF", string(resource.Content()[:4]))

	cached, err := Sound(BellSound)
	require.NoError(t, err)
	assert.Same(t, resource, cached)
}

func TestSound_Missing(t *testing.T) {
	_, err := Sound("missing.wav")
	assert.Error(t, err)
}

func TestMustLogo(t *testing.T) {
	assert.NotPanics(t, func() {
		MustLogo(AppLogo)
	})
	assert.Panics(t, func() {
		MustLogo("missing.png")
	})
}
