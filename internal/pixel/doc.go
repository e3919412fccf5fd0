// Package pixel models the color channels of a single pixel as a fixed-size
// byte buffer.
//
// The buffer length depends on the ColorMode (1 channel for Luminance, 3 for
// RGB) plus one byte when alpha is enabled. Updates are positional and
// partial: each slot of a SetChannels call is either a byte or absent.
//
//	px := pixel.MustNew(pixel.RGB, true)     // [0 0 0 0]
//	px.SetChannels(pixel.Some(10), pixel.None(), pixel.Some(30))
//	px.Bytes()                               // [10 0 30 0]
package pixel
