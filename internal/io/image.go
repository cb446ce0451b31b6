package ioutils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultJPEGQuality is used when NewImageService receives an out of range quality.
const DefaultJPEGQuality = 90

// ErrEmptyImage is returned when there are no bytes to decode.
var ErrEmptyImage = errors.New("empty image data")

// ImageService decodes cover art in any registered format and encodes JPEG.
//
// ImageService is the codec used by the artwork engine:
//   - Dimensions reads only the image header
//   - Decode returns the full raster
//   - Encode writes a baseline JPEG at the configured quality
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding JPEG at quality (1-100).
func NewImageService(quality int) *ImageService {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &ImageService{quality: quality}
}

// Dimensions returns the width and height of an encoded image without
// decoding its pixel data.
//
// Returns an error if the data is empty or in an unknown/corrupt format.
func (s *ImageService) Dimensions(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrEmptyImage
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

// Decode decodes an encoded image into a raster.
func (s *ImageService) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Encode encodes a raster as JPEG.
func (s *ImageService) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
