package pixel

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SetColor writes c into the buffer using 8-bit, non-premultiplied components.
//
// RGB mode takes red, green and blue; Luminance mode takes the red component,
// which for gray colors equals the gray level. Alpha is written last when
// enabled. No color-space conversion is performed.
func (c *Channels) SetColor(src color.Color) {
	var r, g, b uint8
	// MakeColor reports false for fully transparent colors; those stay black.
	if cf, ok := colorful.MakeColor(src); ok {
		r, g, b = cf.RGB255()
	}
	_, _, _, a := src.RGBA()

	values := make([]Value, 0, 4)
	switch c.mode {
	case Luminance:
		values = append(values, Some(r))
	case RGB:
		values = append(values, Some(r), Some(g), Some(b))
	}
	if c.alpha {
		values = append(values, Some(uint8(a>>8)))
	}

	c.SetChannels(values...)
}
