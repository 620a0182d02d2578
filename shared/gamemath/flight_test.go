package gamemath

import (
	"math"
	"testing"
)

func TestQuadBezierEndpoints(t *testing.T) {
	sx, sy := 10.0, 20.0
	cx, cy := 50.0, -40.0
	ex, ey := 90.0, 30.0

	x, y := QuadBezier(sx, sy, cx, cy, ex, ey, 0)
	if x != sx || y != sy {
		t.Errorf("t=0 should return the start point, got (%v, %v)", x, y)
	}

	x, y = QuadBezier(sx, sy, cx, cy, ex, ey, 1)
	if x != ex || y != ey {
		t.Errorf("t=1 should return the end point, got (%v, %v)", x, y)
	}
}

func TestQuadBezierMidpoint(t *testing.T) {
	// At t=0.5 the curve sits at 0.25*S + 0.5*C + 0.25*E.
	x, y := QuadBezier(0, 0, 40, -80, 100, 0, 0.5)
	if math.Abs(x-45) > 1e-9 {
		t.Errorf("midpoint x = %v, want 45", x)
	}
	if math.Abs(y-(-40)) > 1e-9 {
		t.Errorf("midpoint y = %v, want -40", y)
	}
}

func TestFlightControlPoint(t *testing.T) {
	cx, cy := FlightControlPoint(0, 100, 200, 100, 60, 15)
	if cx != 115 {
		t.Errorf("control x = %v, want 115", cx)
	}
	if cy != 40 {
		t.Errorf("control y = %v, want 40 (lift subtracts in screen coords)", cy)
	}
}

func TestFlightScaleHoldsFullSizeEarly(t *testing.T) {
	for _, tt := range []float64{0, 0.3, 0.5, 0.7} {
		if s := FlightScale(tt, 0.8); s != 1.0 {
			t.Errorf("scale at t=%v = %v, want 1.0", tt, s)
		}
	}
}

func TestFlightScaleEndValues(t *testing.T) {
	tests := []struct {
		shrink float64
		want   float64
	}{
		{0, 1.0},
		{0.25, 0.75},
		{0.5, 0.5},
		{0.99, MinFlightScale},
		{1.0, MinFlightScale},
	}
	for _, tt := range tests {
		got := FlightScale(1, tt.shrink)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FlightScale(1, %v) = %v, want %v", tt.shrink, got, tt.want)
		}
	}
}

func TestFlightScaleNeverBelowFloor(t *testing.T) {
	for tt := 0.0; tt <= 1.0; tt += 0.01 {
		if s := FlightScale(tt, 1.0); s < MinFlightScale {
			t.Fatalf("scale %v at t=%v below floor", s, tt)
		}
	}
}

func TestFlightScaleMonotoneShrink(t *testing.T) {
	prev := FlightScale(ShrinkStart, 0.6)
	for tt := ShrinkStart; tt <= 1.0; tt += 0.01 {
		s := FlightScale(tt, 0.6)
		if s > prev {
			t.Fatalf("scale grew from %v to %v at t=%v", prev, s, tt)
		}
		prev = s
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 {
		t.Error("negative values should clamp to 0")
	}
	if Clamp01(1.5) != 1 {
		t.Error("values above one should clamp to 1")
	}
	if Clamp01(0.25) != 0.25 {
		t.Error("in-range values should pass through")
	}
}
