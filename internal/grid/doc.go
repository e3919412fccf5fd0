// Package grid downsamples an image into a coarse grid of cells.
//
// A Sampler is created from an image's pixel dimensions and a cell size. The
// grid has ceil(width/cellSize) x ceil(height/cellSize) cells, each holding a
// single byte. Lookups take full-resolution pixel coordinates.
//
// # Clamping
//
// Pixel lookups never fail. A coordinate is floor-divided by the cell size and
// the resulting cell index is clamped into the grid on each axis independently:
//
//	s, _ := grid.New(grid.Dimensions{Width: 10, Height: 10}, 3) // 4x4 cells
//	s.Pixel(9, 9)     // cell (3,3)
//	s.Pixel(100, 100) // also cell (3,3)
//	s.Pixel(-5, 4)    // cell (0,1)
//
// # Filling From Images
//
// FromImage builds a Sampler from an image.Image, storing the mean gray level
// of each block. Decoding the image is left to the caller.
package grid
