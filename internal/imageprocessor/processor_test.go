package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	return cfg.Width, cfg.Height
}

func TestFitJPEGDownscalesToBounds(t *testing.T) {
	p := NewProcessor(100, 100, 85)

	out, err := p.FitJPEG(pngBytes(t, 400, 200))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestFitJPEGTallImageKeepsAspect(t *testing.T) {
	p := NewProcessor(100, 100, 85)

	out, err := p.FitJPEG(pngBytes(t, 200, 400))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 50, w)
	assert.Equal(t, 100, h)
}

func TestFitJPEGNeverUpscales(t *testing.T) {
	p := NewProcessor(1600, 1600, 85)

	out, err := p.FitJPEG(pngBytes(t, 40, 30))
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
}

func TestFitJPEGReencodesJPEGInput(t *testing.T) {
	p := NewProcessor(50, 50, 70)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 200, 200)), nil))

	out, err := p.FitJPEG(buf.Bytes())
	require.NoError(t, err)

	w, h := decodeDims(t, out)
	assert.Equal(t, 50, w)
	assert.Equal(t, 50, h)
}

func TestFitJPEGRejectsGarbage(t *testing.T) {
	p := NewProcessor(100, 100, 85)

	_, err := p.FitJPEG([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestNewProcessorDefaults(t *testing.T) {
	p := NewProcessor(0, -5, 400)
	assert.Equal(t, 1600, p.maxWidth)
	assert.Equal(t, 1600, p.maxHeight)
	assert.Equal(t, 85, p.quality)
}
