package sr

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"parallel", V3(2, 2, 2), V3(4, 4, 4), V3(0, 0, 0)},
		{"anti-commutes", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, 5, 6)); got != 32 {
		t.Errorf("dot = %v, want 32", got)
	}
	if got := V3(1, 0, 0).Dot(V3(0, 1, 0)); got != 0 {
		t.Errorf("orthogonal dot = %v, want 0", got)
	}
}

func TestVec2Cross(t *testing.T) {
	// The sign of the 2D cross tells handedness; this is the basis of
	// the front-face test.
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("cross = %v, want 1", got)
	}
	if got := V2(0, 1).Cross(V2(1, 0)); got != -1 {
		t.Errorf("cross = %v, want -1", got)
	}
}

func TestLerp(t *testing.T) {
	a, b := V3(0, 0, 0), V3(10, -10, 4)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("lerp t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("lerp t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V3(5, -5, 2) {
		t.Errorf("lerp t=0.5 = %v", got)
	}
}

func TestPerspectiveDivide(t *testing.T) {
	v := V4(2, 4, 6, 2)
	if got := v.PerspectiveDivide(); got != V3(1, 2, 3) {
		t.Errorf("perspective divide = %v, want (1, 2, 3)", got)
	}
	// Zero W falls through unchanged rather than dividing.
	z := V4(1, 2, 3, 0)
	if got := z.PerspectiveDivide(); got != V3(1, 2, 3) {
		t.Errorf("zero-W divide = %v, want (1, 2, 3)", got)
	}
}
