package camera

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

const upperHalfBlock = "▀"

// RenderPreview draws img into cols x rows terminal cells, two pixels per
// cell using the upper half block. The aspect ratio is kept; mirror flips
// the picture horizontally.
func RenderPreview(img image.Image, cols, rows int, mirror bool) string {
	if cols <= 0 || rows <= 0 || img == nil {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}

	w, h := fit(b.Dx(), b.Dy(), cols, rows*2)
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			sx := x
			if mirror {
				sx = w - 1 - x
			}
			top := sample(img, sx, y, w, h)
			bottom := top
			if y+1 < h {
				bottom = sample(img, sx, y+1, w, h)
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(upperHalfBlock))
		}
		if y+2 < h {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// fit scales srcW x srcH into maxW x maxH keeping the aspect ratio.
func fit(srcW, srcH, maxW, maxH int) (int, int) {
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

// sample picks the nearest source pixel for (x, y) in a w x h target.
func sample(img image.Image, x, y, w, h int) color.Color {
	b := img.Bounds()
	sx := b.Min.X + x*b.Dx()/w
	sy := b.Min.Y + y*b.Dy()/h
	r, g, bl, _ := img.At(sx, sy).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: 0xff}
}
