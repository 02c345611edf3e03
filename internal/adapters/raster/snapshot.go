// Package raster renders a clock face to a raster image, for snapshots and
// for generating the packaged application icon.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"binclock/internal/domain"
)

// Base geometry in pixels before scaling.
const (
	cellSize = 24
	cellGap  = 8
	margin   = 16
)

var (
	background = color.RGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff}
	litColor   = color.RGBA{R: 0x39, G: 0xd3, B: 0x53, A: 0xff}
	unlitColor = color.RGBA{R: 0x3a, G: 0x41, B: 0x4d, A: 0xff}
)

// Render draws the face as a grid of filled (lit) and outlined (unlit)
// circles, scaled so the longest edge measures size pixels.
func Render(face domain.Face, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrBadSnapshotDim, size)
	}
	cols := len(face.Columns)
	rows := face.Rows()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("raster: face has no cells")
	}

	w := 2*margin + cols*cellSize + (cols-1)*cellGap
	h := 2*margin + rows*cellSize + (rows-1)*cellGap
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(base, background)

	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			cx := margin + col*(cellSize+cellGap) + cellSize/2
			cy := margin + row*(cellSize+cellGap) + cellSize/2
			if face.Cell(row, col).Lit {
				disc(base, cx, cy, cellSize/2, litColor)
			} else {
				ring(base, cx, cy, cellSize/2, 2, unlitColor)
			}
		}
	}

	// Scale the longest edge to the requested size, keeping aspect.
	scale := float64(size) / float64(max(w, h))
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// WritePNG renders the face and encodes it to path.
func WritePNG(path string, face domain.Face, size int) error {
	img, err := Render(face, size)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// disc fills a circle by scanline.
func disc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// ring draws a circle outline of the given thickness.
func ring(img *image.RGBA, cx, cy, r, thickness int, c color.RGBA) {
	inner := r - thickness
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d <= r*r && d >= inner*inner {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}
