package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a Sampler is constructed or written with
// arguments that the cell mapping cannot handle, such as a non-positive cell size.
var ErrInvalidArgument = errors.New("invalid argument")

// Dimensions is a width and height pair, used both for image sizes in pixels
// and for grid sizes in cells.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sampler maps full-resolution pixel coordinates onto a coarse grid of cells.
//
// Each cell covers a CellSize x CellSize block of pixels and holds one byte.
// Trailing partial blocks on the right and bottom edges still get a cell.
//
// A Sampler is not safe for concurrent writes.
type Sampler struct {
	image    Dimensions
	gridSize Dimensions
	cellSize int
	cells    [][]byte // cells[y][x]
}

// New creates a Sampler for an image of the given size with square cells of
// cellSize pixels. All cells start at zero.
//
// Returns an error wrapping ErrInvalidArgument if cellSize < 1 or if either
// image dimension is negative.
func New(image Dimensions, cellSize int) (*Sampler, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be at least 1, got %d: %w", cellSize, ErrInvalidArgument)
	}
	if image.Width < 0 || image.Height < 0 {
		return nil, fmt.Errorf("image dimensions %dx%d must not be negative: %w",
			image.Width, image.Height, ErrInvalidArgument)
	}

	gridSize := Dimensions{
		Width:  cellCount(image.Width, cellSize),
		Height: cellCount(image.Height, cellSize),
	}

	cells := make([][]byte, gridSize.Height)
	for y := range cells {
		cells[y] = make([]byte, gridSize.Width)
	}

	return &Sampler{
		image:    image,
		gridSize: gridSize,
		cellSize: cellSize,
		cells:    cells,
	}, nil
}

// NewDefault creates a Sampler with a cell size of 1, so every pixel has its
// own cell. It panics if either image dimension is negative.
func NewDefault(image Dimensions) *Sampler {
	s, err := New(image, 1)
	if err != nil {
		panic("grid: " + err.Error())
	}
	return s
}

// cellCount divides in floating point before rounding up so that a trailing
// partial block is always counted.
func cellCount(pixels, cellSize int) int {
	return int(math.Ceil(float64(pixels) / float64(cellSize)))
}

// ImageDimensions returns the pixel size the Sampler was created for.
func (s *Sampler) ImageDimensions() Dimensions {
	return s.image
}

// GridDimensions returns the number of cells along each axis.
func (s *Sampler) GridDimensions() Dimensions {
	return s.gridSize
}

// CellSize returns the edge length of a cell in pixels.
func (s *Sampler) CellSize() int {
	return s.cellSize
}

// CellPosition maps a pixel coordinate to the cell that holds it.
//
// Coordinates are not checked against the image bounds. Negative coordinates
// and coordinates past the edge clamp to the nearest edge cell, so the result
// is always a valid cell index on a non-empty grid.
func (s *Sampler) CellPosition(x, y int) (cx, cy int) {
	cx = clamp(floorDiv(x, s.cellSize), s.gridSize.Width-1)
	cy = clamp(floorDiv(y, s.cellSize), s.gridSize.Height-1)
	return cx, cy
}

// Pixel returns the value of the cell covering pixel (x, y). It accepts any
// coordinate; see CellPosition for the clamping rules. An empty grid yields 0.
func (s *Sampler) Pixel(x, y int) byte {
	if s.empty() {
		return 0
	}
	return s.cell(s.CellPosition(x, y))
}

// SetPixel stores v in the cell covering pixel (x, y), clamping the
// coordinate the same way Pixel does. It is a no-op on an empty grid.
func (s *Sampler) SetPixel(x, y int, v byte) {
	if s.empty() {
		return
	}
	cx, cy := s.CellPosition(x, y)
	s.setCell(cx, cy, v)
}

// SetCell stores v at cell (cx, cy). Unlike SetPixel, the index is not
// clamped and an out-of-range cell is reported as ErrInvalidArgument.
func (s *Sampler) SetCell(cx, cy int, v byte) error {
	if cx < 0 || cx >= s.gridSize.Width || cy < 0 || cy >= s.gridSize.Height {
		return fmt.Errorf("cell (%d,%d) outside grid %dx%d: %w",
			cx, cy, s.gridSize.Width, s.gridSize.Height, ErrInvalidArgument)
	}
	s.setCell(cx, cy, v)
	return nil
}

// cell reads without bounds checks; callers pass clamped indices.
func (s *Sampler) cell(cx, cy int) byte {
	return s.cells[cy][cx]
}

// setCell writes without bounds checks. Distinct cells may be written
// from different goroutines.
func (s *Sampler) setCell(cx, cy int, v byte) {
	s.cells[cy][cx] = v
}

func (s *Sampler) empty() bool {
	return s.gridSize.Width == 0 || s.gridSize.Height == 0
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func clamp(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
