package sr

import (
	"errors"
	"fmt"
	"testing"
)

func TestMatrixStackBalance(t *testing.T) {
	dc := NewContext(8, 8)
	dc.MatrixMode(ModelView)
	before := dc.ModelView()

	for _, depth := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			for i := 0; i < depth; i++ {
				if err := dc.PushMatrix(); err != nil {
					t.Fatalf("push %d: %v", i, err)
				}
				dc.Translate(float64(i), 1, 0)
				dc.Scale(2, 2, 2)
			}
			for i := 0; i < depth; i++ {
				if err := dc.PopMatrix(); err != nil {
					t.Fatalf("pop %d: %v", i, err)
				}
			}
			if got := dc.ModelView(); !matricesEqual(got, before, 0) {
				t.Errorf("modelview after %d push/pop rounds = %+v, want unchanged", depth, got)
			}
		})
	}
}

func TestMatrixStackOverflow(t *testing.T) {
	dc := NewContext(8, 8)

	// Pushing up to exactly capacity succeeds.
	for i := 0; i < matrixStackDepth; i++ {
		if err := dc.PushMatrix(); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := dc.PushMatrix(); !errors.Is(err, ErrMatrixStackOverflow) {
		t.Errorf("push beyond capacity err = %v, want ErrMatrixStackOverflow", err)
	}

	for i := 0; i < matrixStackDepth; i++ {
		if err := dc.PopMatrix(); err != nil {
			t.Fatalf("pop %d: %v", i, err)
		}
	}
	if err := dc.PopMatrix(); !errors.Is(err, ErrMatrixStackUnderflow) {
		t.Errorf("unmatched pop err = %v, want ErrMatrixStackUnderflow", err)
	}
}

func TestProjectionModeTargetsProjection(t *testing.T) {
	dc := NewContext(8, 8)
	mv := dc.ModelView()

	dc.MatrixMode(Projection)
	dc.LoadIdentity()
	dc.Translate(1, 2, 3)

	if got := dc.ModelView(); !matricesEqual(got, mv, 0) {
		t.Error("projection-mode ops leaked into modelview")
	}
	want := Translate(V3(1, 2, 3))
	if got := dc.Projection(); !matricesEqual(got, want, 0) {
		t.Errorf("projection = %+v, want translate", got)
	}
}

func TestTextureMatrixModeIsNoOp(t *testing.T) {
	dc := NewContext(8, 8)
	dc.MatrixMode(ModelView)
	dc.MatrixMode(TextureMatrix)

	// Ops still target modelview: the unsupported mode left the
	// selection unchanged.
	dc.Translate(5, 0, 0)
	if got := dc.ModelView(); !matricesEqual(got, Translate(V3(5, 0, 0)), 0) {
		t.Errorf("modelview = %+v, want translate after texture-mode no-op", got)
	}
}

func TestPushRedirectsToTransform(t *testing.T) {
	dc := NewContext(8, 8)
	dc.MatrixMode(ModelView)
	mv := dc.ModelView()

	if err := dc.PushMatrix(); err != nil {
		t.Fatal(err)
	}
	dc.Translate(5, 0, 0)

	// Modelview itself must not move while the push is pending.
	if got := dc.ModelView(); !matricesEqual(got, mv, 0) {
		t.Errorf("modelview mutated during pending push: %+v", got)
	}
	if !dc.transformRequired {
		t.Error("transformRequired not set after ModelView push")
	}

	if err := dc.PopMatrix(); err != nil {
		t.Fatal(err)
	}
	if dc.transformRequired {
		t.Error("transformRequired still set after stack drained")
	}
	if got := dc.transform; !matricesEqual(got, Identity(), 0) {
		t.Errorf("transform = %+v, want identity after drain", got)
	}
}

func TestSetViewport(t *testing.T) {
	dc := NewContext(64, 64)

	vp := dc.Viewport()
	if vp != (Viewport{X: 0, Y: 0, W: 64, H: 64}) {
		t.Fatalf("initial viewport = %+v", vp)
	}

	// The anchored projection maps pixel coordinates so that the origin
	// is top-left and Y grows downward.
	p := dc.Projection()
	tl := p.MulPosition(V3(0, 0, 0))
	if !vecsEqual(tl, V3(-1, 1, 0), matrixEps) {
		t.Errorf("pixel (0,0) maps to NDC %v, want (-1, 1, 0)", tl)
	}
	br := p.MulPosition(V3(64, 64, 0))
	if !vecsEqual(br, V3(1, -1, 0), matrixEps) {
		t.Errorf("pixel (64,64) maps to NDC %v, want (1, -1, 0)", br)
	}

	t.Run("zero size rejected", func(t *testing.T) {
		dc.SetViewport(0, 0, 0, 64)
		if got := dc.Viewport(); got != vp {
			t.Errorf("zero-size viewport accepted: %+v", got)
		}
	})

	t.Run("resets modelview", func(t *testing.T) {
		dc.Translate(9, 9, 9)
		dc.SetViewport(0, 0, 32, 32)
		if got := dc.ModelView(); !matricesEqual(got, Identity(), 0) {
			t.Errorf("modelview after SetViewport = %+v, want identity", got)
		}
	})
}

func TestShaderBinding(t *testing.T) {
	dc := NewContext(8, 8)

	custom := ShaderFunc(func(f Fragment) Color { return RGB(1, 2, 3) })
	dc.SetShader(custom)

	dc.Begin(Triangles)
	dc.Vertex2(0, 0)
	dc.Vertex2(7, 0)
	dc.Vertex2(0, 7)
	dc.End()
	if got := dc.Image().At(1, 1); got != RGB(1, 2, 3) {
		t.Errorf("custom shader pixel = %v, want {1 2 3 255}", got)
	}

	// nil restores the built-in pass-through shader.
	dc.SetShader(nil)
	dc.Clear(Black)
	dc.Begin(Triangles)
	dc.SetColor(RGB(200, 100, 50))
	dc.Vertex2(0, 0)
	dc.Vertex2(7, 0)
	dc.Vertex2(0, 7)
	dc.End()
	if got := dc.Image().At(1, 1); got != RGB(200, 100, 50) {
		t.Errorf("default shader pixel = %v, want vertex color", got)
	}
}
