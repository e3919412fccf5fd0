package pixel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a ColorMode outside the defined set.
var ErrUnknownMode = errors.New("unknown color mode")

// ColorMode selects how many color channels a pixel carries, not counting alpha.
type ColorMode int

const (
	// Luminance is a single gray channel.
	Luminance ColorMode = iota
	// RGB is three channels in red, green, blue order.
	RGB
)

// String returns the short mode name used on the wire ("L" or "RGB").
func (m ColorMode) String() string {
	switch m {
	case Luminance:
		return "L"
	case RGB:
		return "RGB"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode accepts "L", "luminance", "RGB" or "rgb", case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "l", "luminance":
		return Luminance, nil
	case "rgb":
		return RGB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// channelCount returns the number of color channels for m.
func channelCount(m ColorMode) (int, error) {
	switch m {
	case Luminance:
		return 1, nil
	case RGB:
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
}

// Value is a single channel update that is either a byte or absent.
// The zero Value is absent.
type Value struct {
	b     byte
	valid bool
}

// Some returns a present Value holding b.
func Some(b byte) Value {
	return Value{b: b, valid: true}
}

// None returns an absent Value; SetChannels leaves its slot unchanged.
func None() Value {
	return Value{}
}

// Values wraps each byte in a present Value.
func Values(bs ...byte) []Value {
	vs := make([]Value, len(bs))
	for i, b := range bs {
		vs[i] = Some(b)
	}
	return vs
}

// Get returns the byte and whether it is present.
func (v Value) Get() (byte, bool) {
	return v.b, v.valid
}

// Channels holds the color channels of one pixel as packed bytes.
//
// The layout is the color channels for the mode followed by alpha when
// enabled:
//   - Luminance: [L] or [L, A]
//   - RGB: [R, G, B] or [R, G, B, A]
//
// The length is fixed at construction.
type Channels struct {
	mode  ColorMode
	alpha bool
	buf   []byte
}

// New allocates a zeroed channel buffer for mode, with one extra trailing
// byte when alpha is true. Unknown modes return ErrUnknownMode.
func New(mode ColorMode, alpha bool) (*Channels, error) {
	n, err := channelCount(mode)
	if err != nil {
		return nil, err
	}
	if alpha {
		n++
	}
	return &Channels{
		mode:  mode,
		alpha: alpha,
		buf:   make([]byte, n),
	}, nil
}

// MustNew is like New but panics on an unknown mode.
func MustNew(mode ColorMode, alpha bool) *Channels {
	c, err := New(mode, alpha)
	if err != nil {
		panic("pixel: " + err.Error())
	}
	return c
}

// SetChannels overwrites channels by position. values[i] applies to channel i;
// absent values leave their channel unchanged. Values past the end of the
// buffer are ignored, and channels past the end of values are untouched.
func (c *Channels) SetChannels(values ...Value) {
	for i := 0; i < len(values) && i < len(c.buf); i++ {
		if b, ok := values[i].Get(); ok {
			c.buf[i] = b
		}
	}
}

// Bytes returns a copy of the channel buffer.
func (c *Channels) Bytes() []byte {
	out := make([]byte, len(c.buf))
	copy(out, c.buf)
	return out
}

// At returns channel i, or false if i is out of range.
func (c *Channels) At(i int) (byte, bool) {
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

// Len returns the fixed number of channels.
func (c *Channels) Len() int {
	return len(c.buf)
}

// Mode returns the color mode.
func (c *Channels) Mode() ColorMode {
	return c.mode
}

// AlphaEnabled reports whether the buffer ends with an alpha channel.
func (c *Channels) AlphaEnabled() bool {
	return c.alpha
}
