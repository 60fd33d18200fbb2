package sound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxtimer/resources"
)

func TestDecodeBuffer_Bell(t *testing.T) {
	resource, err := resources.Sound(resources.BellSound)
	require.NoError(t, err)

	buffer, err := decodeBuffer(resources.BellSound, resource.Content())
	require.NoError(t, err)

	assert.Equal(t, 22050, int(buffer.Format().SampleRate))
	assert.Greater(t, buffer.Len(), 0)
}

func TestDecodeBuffer_UnsupportedExtension(t *testing.T) {
	_, err := decodeBuffer("bell.ogg", []byte("OggS"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestDecodeBuffer_CorruptData(t *testing.T) {
	_, err := decodeBuffer("bell.wav", []byte("not a wav file"))
	assert.Error(t, err)
}
