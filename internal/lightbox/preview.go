package lightbox

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as
// background. lowerBlock is used when only the bottom pixel is visible.
const (
	halfBlock  = "▀"
	lowerBlock = "▄"
)

// Pixels below half opacity are left to the terminal background.
const minAlpha = 0x8000

// RenderFile decodes the image at path (first frame for GIFs) and renders it
// with RenderImage.
func RenderFile(path string, maxCols, maxRows int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image %s: %w", path, err)
	}
	return RenderImage(img, maxCols, maxRows), nil
}

// RenderImage scales img to fit maxCols x maxRows terminal cells, two pixel
// rows per cell, keeping the aspect ratio. Nearest-neighbour sampling.
func RenderImage(img image.Image, maxCols, maxRows int) string {
	b := img.Bounds()
	if b.Empty() || maxCols <= 0 || maxRows <= 0 {
		return ""
	}

	scale := math.Max(float64(b.Dx())/float64(maxCols), float64(b.Dy())/float64(2*maxRows))
	scale = math.Max(scale, 1)
	cols := max(int(float64(b.Dx())/scale), 1)
	rows := max(int(float64(b.Dy())/(2*scale)), 1)

	sample := func(x, y int) color.Color {
		sx := b.Min.X + min(int(float64(x)*scale), b.Dx()-1)
		sy := b.Min.Y + min(int(float64(y)*scale), b.Dy()-1)
		return img.At(sx, sy)
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sb.WriteString(renderCell(sample(c, 2*r), sample(c, 2*r+1)))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(top, bottom color.Color) string {
	topColor, topOK := hexColor(top)
	bottomColor, bottomOK := hexColor(bottom)
	switch {
	case topOK && bottomOK:
		return lipgloss.NewStyle().Foreground(topColor).Background(bottomColor).Render(halfBlock)
	case topOK:
		return lipgloss.NewStyle().Foreground(topColor).Render(halfBlock)
	case bottomOK:
		return lipgloss.NewStyle().Foreground(bottomColor).Render(lowerBlock)
	default:
		return " "
	}
}

// hexColor converts c to straight (non-premultiplied) RGB. It reports false
// for mostly transparent pixels.
func hexColor(c color.Color) (lipgloss.Color, bool) {
	r, g, b, a := c.RGBA()
	if a < minAlpha {
		return "", false
	}
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)), true
}
