// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color implements the colour arithmetic of the ruler
// styles.
package f32color

import "image/color"

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled returns the color used for a disabled ruler.
func Disabled(c color.NRGBA) color.NRGBA {
	return MulAlpha(c, 150)
}
