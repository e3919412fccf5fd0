package server

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/stoz-mcp/internal/grid"
)

// samplerKey identifies one downsampled view of an image file.
type samplerKey struct {
	path     string
	cellSize int
}

// SamplerCache holds decoded images and the grids built from them so repeated
// tool calls on the same file skip decoding and averaging.
//
// Images are keyed by the exact path string; grids by path and cell size.
// Different paths to the same file produce separate entries. SamplerCache is
// safe for concurrent use.
//
// Cached entries stay in memory until Evict or Clear is called.
type SamplerCache struct {
	mu       sync.RWMutex
	images   map[string]image.Image
	samplers map[samplerKey]*grid.Sampler
}

// NewSamplerCache creates an empty cache.
func NewSamplerCache() *SamplerCache {
	return &SamplerCache{
		images:   make(map[string]image.Image),
		samplers: make(map[samplerKey]*grid.Sampler),
	}
}

// Image returns the decoded image at path, decoding it on a miss.
//
// Decoding goes through imaging.Open, which supports PNG, JPEG, GIF, TIFF and
// BMP and applies EXIF orientation. Failed decodes are not cached.
func (c *SamplerCache) Image(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	if existing, ok := c.images[path]; ok {
		img = existing
	} else {
		c.images[path] = img
	}
	c.mu.Unlock()

	return img, nil
}

// Load returns the cached Sampler for path and cellSize, filling a new grid
// from the decoded image on a miss. On any error, including an invalid cell
// size, no grid is cached.
func (c *SamplerCache) Load(path string, cellSize int) (*grid.Sampler, error) {
	key := samplerKey{path: path, cellSize: cellSize}

	c.mu.RLock()
	if s, ok := c.samplers[key]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	img, err := c.Image(path)
	if err != nil {
		return nil, err
	}

	s, err := grid.FromImage(img, cellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}

	c.mu.Lock()
	// Another caller may have filled the entry while we averaged.
	if existing, ok := c.samplers[key]; ok {
		s = existing
	} else {
		c.samplers[key] = s
	}
	c.mu.Unlock()

	return s, nil
}

// Evict removes the decoded image for path and every grid built from it.
func (c *SamplerCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	for k := range c.samplers {
		if k.path == path {
			delete(c.samplers, k)
		}
	}
	c.mu.Unlock()
}

// Clear removes all cached images and grids.
func (c *SamplerCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.samplers = make(map[samplerKey]*grid.Sampler)
	c.mu.Unlock()
}

// Len returns the number of cached grids.
func (c *SamplerCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.samplers)
}
