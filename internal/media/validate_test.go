package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	t.Run("accepts png", func(t *testing.T) {
		assert.NoError(t, ValidateImage(encodePNG(t)))
	})

	t.Run("accepts jpeg", func(t *testing.T) {
		assert.NoError(t, ValidateImage(encodeJPEG(t)))
	})

	t.Run("rejects gif", func(t *testing.T) {
		gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
		err := ValidateImage(gif)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("rejects text masquerading as an image", func(t *testing.T) {
		err := ValidateImage([]byte("not an image at all"))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("sniffs content, not extension or header", func(t *testing.T) {
		// A renamed PDF must still fail.
		pdf := []byte("%PDF-1.4 fake document body")
		assert.ErrorIs(t, ValidateImage(pdf), ErrInvalidFormat)
	})
}
