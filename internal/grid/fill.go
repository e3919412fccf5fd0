package grid

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// FromImage builds a Sampler covering img and fills every cell with the
// rounded mean gray level of the pixels it covers.
//
// Cells on the right and bottom edges may cover fewer than cellSize pixels
// per axis; they average only the pixels that exist. Alpha is ignored.
//
// Returns an error wrapping ErrInvalidArgument if cellSize < 1.
func FromImage(img image.Image, cellSize int) (*Sampler, error) {
	bounds := img.Bounds()
	s, err := New(Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, cellSize)
	if err != nil {
		return nil, err
	}
	if s.empty() {
		return s, nil
	}

	// Grayscale output is zero-origin NRGBA with R == G == B.
	gray := imaging.Grayscale(img)
	width, height := s.image.Width, s.image.Height

	parallel.Line(s.gridSize.Height, func(start, end int) {
		for cy := start; cy < end; cy++ {
			y0 := cy * cellSize
			y1 := min(y0+cellSize, height)
			for cx := 0; cx < s.gridSize.Width; cx++ {
				x0 := cx * cellSize
				x1 := min(x0+cellSize, width)

				sum, n := 0, 0
				for y := y0; y < y1; y++ {
					row := gray.Pix[y*gray.Stride:]
					for x := x0; x < x1; x++ {
						sum += int(row[x*4])
						n++
					}
				}
				s.setCell(cx, cy, byte((sum+n/2)/n))
			}
		}
	})

	return s, nil
}
