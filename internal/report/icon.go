// ABOUTME: Draws the server favicon with half-block characters for color terminals
// ABOUTME: Each cell is two pixels: background is the upper one, foreground the lower

package report

import (
	"fmt"
	"image"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mauromedda/echostatus/internal/status"
)

const halfBlock = "▄"

// iconLines renders the favicon data URI at size cells wide. It returns nil
// when the profile has no colors or the icon cannot be decoded.
func (rep *Reporter) iconLines(dataURI string, size int) []string {
	if size <= 0 || rep.r.ColorProfile() == termenv.Ascii {
		return nil
	}
	img, err := status.DecodeIcon(dataURI)
	if err != nil {
		return nil
	}
	return halfBlocks(rep.r, status.ScaleIcon(img, size))
}

func halfBlocks(r *lipgloss.Renderer, img image.Image) []string {
	b := img.Bounds()
	var lines []string
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line string
		for x := b.Min.X; x < b.Max.X; x++ {
			bottom := "#000000"
			if y+1 < b.Max.Y {
				bottom = hexAt(img, x, y+1)
			}
			line += r.NewStyle().
				Background(lipgloss.Color(hexAt(img, x, y))).
				Foreground(lipgloss.Color(bottom)).
				Render(halfBlock)
		}
		lines = append(lines, line)
	}
	return lines
}

func hexAt(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
