package style

import "github.com/lucasb-eyer/go-colorful"

// Gradient returns a slice of steps colors interpolating from one true
// color to another in the perceptually uniform Luv space. The endpoints
// are preserved exactly. A non-positive step count returns nil; a single
// step returns just the starting color. Indexed and default colors
// cannot be interpolated; such gradients snap to the nearer endpoint.
func Gradient(from, to Color, steps int) []Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []Color{from}
	}

	out := make([]Color, steps)
	if from.mode != colorRGB || to.mode != colorRGB {
		for i := range out {
			if float64(i)/float64(steps-1) < 0.5 {
				out[i] = from
			} else {
				out[i] = to
			}
		}
		return out
	}

	ca := toColorful(from)
	cb := toColorful(to)
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = fromColorful(ca.BlendLuv(cb, t).Clamped())
	}
	out[0] = from
	out[steps-1] = to
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}
