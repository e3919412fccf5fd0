package pixel

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestNew_Length(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		alpha bool
		want  int
	}{
		{"luminance", Luminance, false, 1},
		{"luminance alpha", Luminance, true, 2},
		{"rgb", RGB, false, 3},
		{"rgb alpha", RGB, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.mode, tt.alpha)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c.Len() != tt.want {
				t.Errorf("Len: got %d, want %d", c.Len(), tt.want)
			}
			if !bytes.Equal(c.Bytes(), make([]byte, tt.want)) {
				t.Errorf("Bytes: got %v, want all zero", c.Bytes())
			}
			if c.Mode() != tt.mode {
				t.Errorf("Mode: got %v, want %v", c.Mode(), tt.mode)
			}
			if c.AlphaEnabled() != tt.alpha {
				t.Errorf("AlphaEnabled: got %v, want %v", c.AlphaEnabled(), tt.alpha)
			}
		})
	}
}

func TestNew_UnknownMode(t *testing.T) {
	for _, m := range []ColorMode{-1, 2, 99} {
		c, err := New(m, true)
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("New(%d): got %v, want ErrUnknownMode", m, err)
		}
		if c != nil {
			t.Errorf("New(%d): expected nil Channels", m)
		}
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown mode")
		}
	}()
	MustNew(ColorMode(7), false)
}

func TestSetChannels(t *testing.T) {
	tests := []struct {
		name   string
		mode   ColorMode
		alpha  bool
		start  []byte
		values []Value
		want   []byte
	}{
		{
			"skip absent slots",
			RGB, true,
			nil,
			[]Value{Some(10), None(), Some(30)},
			[]byte{10, 0, 30, 0},
		},
		{
			"absent keeps prior value",
			RGB, true,
			[]byte{1, 2, 3, 4},
			[]Value{Some(10), None(), Some(30)},
			[]byte{10, 2, 30, 4},
		},
		{
			"extra values ignored",
			Luminance, false,
			nil,
			Values(5, 6, 7),
			[]byte{5},
		},
		{
			"short input leaves tail",
			RGB, false,
			[]byte{9, 9, 9},
			Values(1),
			[]byte{1, 9, 9},
		},
		{
			"all absent is a no-op",
			Luminance, true,
			[]byte{4, 200},
			[]Value{None(), None(), None()},
			[]byte{4, 200},
		},
		{
			"empty input",
			RGB, true,
			[]byte{1, 2, 3, 4},
			nil,
			[]byte{1, 2, 3, 4},
		},
		{
			"zero Value is absent",
			RGB, false,
			[]byte{7, 8, 9},
			[]Value{{}, Some(0)},
			[]byte{7, 0, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.mode, tt.alpha)
			if tt.start != nil {
				c.SetChannels(Values(tt.start...)...)
			}

			c.SetChannels(tt.values...)

			if got := c.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if c.Len() != len(tt.want) {
				t.Errorf("length changed: got %d, want %d", c.Len(), len(tt.want))
			}
		})
	}
}

func TestBytes_ReturnsCopy(t *testing.T) {
	c := MustNew(RGB, false)
	b := c.Bytes()
	b[0] = 99

	if got, _ := c.At(0); got != 0 {
		t.Errorf("buffer mutated through Bytes(): got %d, want 0", got)
	}
}

func TestAt(t *testing.T) {
	c := MustNew(Luminance, true)
	c.SetChannels(Values(11, 22)...)

	if v, ok := c.At(1); !ok || v != 22 {
		t.Errorf("At(1): got (%d,%v), want (22,true)", v, ok)
	}
	if _, ok := c.At(2); ok {
		t.Error("At(2) should be out of range")
	}
	if _, ok := c.At(-1); ok {
		t.Error("At(-1) should be out of range")
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"L", Luminance, false},
		{"luminance", Luminance, false},
		{"RGB", RGB, false},
		{"rgb", RGB, false},
		{"RGBA", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("got %v, want ErrUnknownMode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorMode_String(t *testing.T) {
	if Luminance.String() != "L" {
		t.Errorf("Luminance: got %s, want L", Luminance.String())
	}
	if RGB.String() != "RGB" {
		t.Errorf("RGB: got %s, want RGB", RGB.String())
	}
	if got := ColorMode(5).String(); got != "ColorMode(5)" {
		t.Errorf("unknown: got %s, want ColorMode(5)", got)
	}
}

func TestSetColor(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		alpha bool
		color color.Color
		want  []byte
	}{
		{"rgb opaque", RGB, false, color.RGBA{10, 20, 30, 255}, []byte{10, 20, 30}},
		{"rgb with alpha", RGB, true, color.RGBA{10, 20, 30, 255}, []byte{10, 20, 30, 255}},
		{"unpremultiplied", RGB, true, color.NRGBA{200, 100, 50, 128}, []byte{200, 100, 50, 128}},
		{"gray to luminance", Luminance, false, color.Gray{Y: 77}, []byte{77}},
		{"luminance alpha", Luminance, true, color.Gray{Y: 40}, []byte{40, 255}},
		{"transparent", RGB, true, color.NRGBA{255, 255, 255, 0}, []byte{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.mode, tt.alpha)
			c.SetColor(tt.color)
			if got := c.Bytes(); !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
