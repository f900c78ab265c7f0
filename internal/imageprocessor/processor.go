package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Register decoders for the formats uploads arrive in.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Processor downscales uploaded images to fit a bounding box and re-encodes
// them as JPEG, capping the stored size of any picture an author embeds.
type Processor struct {
	maxWidth  int
	maxHeight int
	quality   int // JPEG quality (1-100)
}

func NewProcessor(maxWidth, maxHeight, quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxWidth <= 0 {
		maxWidth = 1600
	}
	if maxHeight <= 0 {
		maxHeight = 1600
	}
	return &Processor{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		quality:   quality,
	}
}

// FitJPEG decodes data, scales it down to fit the configured bounds (never
// up), and returns it JPEG-encoded at the configured quality.
func (p *Processor) FitJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resize scales the image to fit the bounds, preserving aspect ratio.
func (p *Processor) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= p.maxWidth && height <= p.maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := p.maxWidth
	newHeight := p.maxHeight
	if float64(p.maxWidth)/float64(p.maxHeight) > ratio {
		newWidth = int(float64(p.maxHeight) * ratio)
	} else {
		newHeight = int(float64(p.maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
