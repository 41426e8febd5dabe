// ABOUTME: Server favicon decoding from data URIs and resampling to a requested size
// ABOUTME: Uses golang.org/x/image/draw CatmullRom for smooth downscale and upscale

package status

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

const (
	iconPrefix  = "data:image/png;base64,"
	MinIconSize = 16
	MaxIconSize = 256

	// maxSourceIconSide bounds the decoded favicon; servers send 64x64.
	maxSourceIconSide = 1024
)

// ErrNoIcon is returned when a server reports no favicon.
var ErrNoIcon = errors.New("server has no icon")

// ErrIconTooLarge is returned for favicons wider or taller than 1024 pixels.
var ErrIconTooLarge = errors.New("icon too large")

// DecodeIcon parses a base64 PNG data URI as delivered in Server.Icon.
func DecodeIcon(dataURI string) (image.Image, error) {
	if dataURI == "" {
		return nil, ErrNoIcon
	}
	if !strings.HasPrefix(dataURI, iconPrefix) {
		return nil, fmt.Errorf("unsupported icon encoding")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURI[len(iconPrefix):])
	if err != nil {
		return nil, fmt.Errorf("decoding icon base64: %w", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding icon png: %w", err)
	}
	if cfg.Width > maxSourceIconSide || cfg.Height > maxSourceIconSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrIconTooLarge, cfg.Width, cfg.Height)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding icon png: %w", err)
	}
	return img, nil
}

// ScaleIcon resamples img to a size x size square. size is clamped to
// [MinIconSize, MaxIconSize]; size <= 0 returns img unchanged.
func ScaleIcon(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	size = max(MinIconSize, min(MaxIconSize, size))
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
