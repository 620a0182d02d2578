package gamemath

// Flight math for token swarms: a quadratic Bézier arc from source to target
// with a late shrink. Everything here is a pure function of its inputs so the
// flight system can re-evaluate it every tick against live anchor positions.

// ShrinkStart is the progress at which a token begins shrinking.
const ShrinkStart = 0.7

// MinFlightScale is the floor applied to the end-of-flight scale so a token
// never fully vanishes or inverts.
const MinFlightScale = 0.01

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// QuadBezier evaluates the quadratic Bézier through (sx,sy), control (cx,cy)
// and (ex,ey) at t.
func QuadBezier(sx, sy, cx, cy, ex, ey, t float64) (x, y float64) {
	u := 1 - t
	x = u*u*sx + 2*u*t*cx + t*t*ex
	y = u*u*sy + 2*u*t*cy + t*t*ey
	return x, y
}

// FlightControlPoint returns the control point for an arc between start and
// end: the midpoint lifted by arcHeight and shifted sideways by lateral.
// Screen coordinates grow downward, so the lift subtracts.
func FlightControlPoint(sx, sy, ex, ey, arcHeight, lateral float64) (cx, cy float64) {
	cx = (sx+ex)/2 + lateral
	cy = (sy+ey)/2 - arcHeight
	return cx, cy
}

// FlightScale returns the token scale at progress t. Tokens hold full size
// until ShrinkStart, then shrink linearly toward max(1-shrinkAtEnd,
// MinFlightScale) at t = 1.
func FlightScale(t, shrinkAtEnd float64) float64 {
	t = Clamp01(t)
	if t <= ShrinkStart {
		return 1.0
	}
	endScale := 1.0 - shrinkAtEnd
	if endScale < MinFlightScale {
		endScale = MinFlightScale
	}
	frac := (t - ShrinkStart) / (1.0 - ShrinkStart)
	return 1.0 + (endScale-1.0)*frac
}
