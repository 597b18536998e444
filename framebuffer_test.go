package sr

import (
	"errors"
	"math"
	"testing"
)

func TestFramebufferDepth(t *testing.T) {
	dc := NewContext(8, 8)
	fb := dc.Framebuffer()

	if z := fb.DepthAt(3, 3); !math.IsInf(z, 1) {
		t.Errorf("initial depth = %v, want +Inf", z)
	}
	fb.SetDepth(3, 3, 0.25)
	if z := fb.DepthAt(3, 3); z != 0.25 {
		t.Errorf("depth after set = %v, want 0.25", z)
	}
	fb.ClearDepth()
	if z := fb.DepthAt(3, 3); !math.IsInf(z, 1) {
		t.Errorf("depth after clear = %v, want +Inf", z)
	}

	t.Run("out of range", func(t *testing.T) {
		if z := fb.DepthAt(-1, 0); !math.IsInf(z, 1) {
			t.Errorf("DepthAt(-1,0) = %v, want +Inf", z)
		}
		fb.SetDepth(100, 100, 1) // no-op, no panic
	})
}

func TestFramebufferOwnership(t *testing.T) {
	dc := NewContext(8, 8)
	other := NewContext(8, 8)

	fb, err := dc.NewFramebuffer(4, 4)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}

	if err := dc.EnableFramebuffer(fb); err != nil {
		t.Fatalf("EnableFramebuffer on owner: %v", err)
	}
	if dc.Framebuffer() != fb {
		t.Fatal("framebuffer not bound")
	}

	if err := other.EnableFramebuffer(fb); !errors.Is(err, ErrForeignFramebuffer) {
		t.Errorf("foreign EnableFramebuffer err = %v, want ErrForeignFramebuffer", err)
	}

	dc.DisableFramebuffer()
	if dc.Framebuffer() == fb {
		t.Error("DisableFramebuffer did not restore the default target")
	}
}

func TestNewFramebufferValidation(t *testing.T) {
	dc := NewContext(8, 8)
	if _, err := dc.NewFramebuffer(0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := dc.NewFramebuffer(4, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative height err = %v, want ErrInvalidDimensions", err)
	}
}

func TestOffscreenRendering(t *testing.T) {
	dc := NewContext(16, 16)
	fb, err := dc.NewFramebuffer(16, 16)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	if err := dc.EnableFramebuffer(fb); err != nil {
		t.Fatalf("EnableFramebuffer: %v", err)
	}
	dc.Clear(Black)

	dc.Begin(Triangles)
	dc.SetColor(RGB(0, 255, 0))
	dc.Vertex2(1, 1)
	dc.Vertex2(14, 1)
	dc.Vertex2(1, 14)
	dc.End()

	if got := fb.Surface().At(3, 3); got != RGB(0, 255, 0) {
		t.Errorf("off-screen pixel = %v, want green", got)
	}
	// The context's own framebuffer stays untouched.
	if got := dc.defaultFB.Surface().At(3, 3); got != Transparent {
		t.Errorf("default framebuffer pixel = %v, want untouched", got)
	}
}
