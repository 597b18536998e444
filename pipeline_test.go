package sr

import "testing"

// fillTriangle streams one solid triangle in screen-space coordinates.
func fillTriangle(dc *Context, col Color, x0, y0, x1, y1, x2, y2, z float64) {
	dc.Begin(Triangles)
	dc.SetColor(col)
	dc.Vertex3(x0, y0, z)
	dc.Vertex3(x1, y1, z)
	dc.Vertex3(x2, y2, z)
	dc.End()
}

func TestTriangleCoverage(t *testing.T) {
	dc := NewContext(64, 64)
	dc.Clear(Black)
	fillTriangle(dc, RGB(255, 0, 0), 10, 10, 50, 10, 10, 50, 0)

	img := dc.Image()
	tests := []struct {
		name string
		x, y int
		want Color
	}{
		{"interior", 15, 15, RGB(255, 0, 0)},
		{"top-left vertex", 10, 10, RGB(255, 0, 0)},
		{"outside", 60, 60, Black},
		{"beyond hypotenuse", 40, 40, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.At(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBackFaceCulled(t *testing.T) {
	dc := NewContext(64, 64)
	dc.Clear(Black)

	// Same triangle with the vertex order reversed. In the top-left,
	// Y-down coordinate convention this flips the winding, so no pixel
	// may be touched.
	fillTriangle(dc, RGB(255, 0, 0), 10, 10, 10, 50, 50, 10, 0)

	img := dc.Image()
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := img.At(x, y); got != Black {
				t.Fatalf("back-facing triangle touched pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestPointTranslatedByPushedTransform(t *testing.T) {
	dc := NewContext(64, 64)
	dc.Clear(Black)
	dc.SetColor(White)

	if err := dc.PushMatrix(); err != nil {
		t.Fatal(err)
	}
	dc.Translate(5, 0, 0)
	dc.Begin(Points)
	dc.Vertex2(20, 20)
	dc.End()
	if err := dc.PopMatrix(); err != nil {
		t.Fatal(err)
	}

	img := dc.Image()
	if got := img.At(24, 19); got != White {
		t.Errorf("translated point pixel (24,19) = %v, want white", got)
	}
	if got := img.At(19, 19); got != Black {
		t.Errorf("untranslated position (19,19) = %v, want black", got)
	}

	// After the pop the transform is gone.
	dc.Begin(Points)
	dc.Vertex2(20, 20)
	dc.End()
	if got := img.At(19, 19); got != White {
		t.Errorf("post-pop point pixel (19,19) = %v, want white", got)
	}
}

func TestDepthTest(t *testing.T) {
	red := RGB(255, 0, 0)
	green := RGB(0, 255, 0)

	// Under the default top-left ortho projection, larger world Z is
	// nearer to the viewer.
	draw := func(dc *Context, first, second Color, zFirst, zSecond float64) Color {
		dc.Clear(Black)
		fillTriangle(dc, first, 0, 0, 60, 0, 0, 60, zFirst)
		fillTriangle(dc, second, 0, 0, 60, 0, 0, 60, zSecond)
		return dc.Image().At(10, 10)
	}

	t.Run("nearer wins regardless of order", func(t *testing.T) {
		dc := NewContext(64, 64, WithDepthTest())
		if got := draw(dc, red, green, 0.2, 0.5); got != green {
			t.Errorf("near-drawn-last pixel = %v, want green", got)
		}
		if got := draw(dc, green, red, 0.5, 0.2); got != green {
			t.Errorf("near-drawn-first pixel = %v, want green", got)
		}
	})

	t.Run("equal depth lets the later draw through", func(t *testing.T) {
		dc := NewContext(64, 64, WithDepthTest())
		if got := draw(dc, red, green, 0.3, 0.3); got != green {
			t.Errorf("coplanar pixel = %v, want green", got)
		}
	})

	t.Run("disabled falls back to draw order", func(t *testing.T) {
		dc := NewContext(64, 64)
		if got := draw(dc, green, red, 0.5, 0.2); got != red {
			t.Errorf("painter's-order pixel = %v, want red", got)
		}
	})
}

func TestAlphaBlending(t *testing.T) {
	base := RGB(0, 0, 200)

	render := func(col Color) Color {
		dc := NewContext(16, 16)
		dc.Clear(base)
		fillTriangle(dc, col, 0, 0, 15, 0, 0, 15, 0)
		return dc.Image().At(2, 2)
	}

	t.Run("alpha 255 replaces", func(t *testing.T) {
		if got := render(RGB(255, 0, 0)); got != RGB(255, 0, 0) {
			t.Errorf("opaque pixel = %v", got)
		}
	})

	t.Run("alpha 0 discards", func(t *testing.T) {
		if got := render(Color{R: 255, A: 0}); got != base {
			t.Errorf("transparent pixel = %v, want destination %v", got, base)
		}
	})

	t.Run("partial alpha blends", func(t *testing.T) {
		got := render(Color{R: 255, A: 128})
		if got.R <= 100 || got.R >= 160 {
			t.Errorf("blended red = %d, want near half", got.R)
		}
		if got.B <= 60 || got.B >= 140 {
			t.Errorf("blended blue = %d, want near half of destination", got.B)
		}
	})
}

func TestTexturedQuad(t *testing.T) {
	red := RGB(255, 0, 0)
	blue := RGB(0, 0, 255)

	tex := NewSurface(2, 2)
	tex.Set(0, 0, red)
	tex.Set(1, 0, blue)
	tex.Set(0, 1, blue)
	tex.Set(1, 1, red)

	dc := NewContext(2, 2)
	dc.Clear(Black)
	dc.SetTexture(tex)
	dc.SetColor(White)

	dc.Begin(Quads)
	dc.TexCoord(0, 0)
	dc.Vertex2(0, 0)
	dc.TexCoord(1, 0)
	dc.Vertex2(2, 0)
	dc.TexCoord(1, 1)
	dc.Vertex2(2, 2)
	dc.TexCoord(0, 1)
	dc.Vertex2(0, 2)
	dc.End()

	img := dc.Image()
	tests := []struct {
		x, y int
		want Color
	}{
		{0, 0, red},
		{1, 0, blue},
		{0, 1, blue},
		{1, 1, red},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWireMode(t *testing.T) {
	dc := NewContext(64, 64)
	dc.Clear(Black)
	dc.EnableWireMode()
	fillTriangle(dc, White, 10, 10, 50, 10, 10, 50, 0)
	dc.DisableWireMode()

	img := dc.Image()
	if got := img.At(20, 9); got != White {
		t.Errorf("top edge pixel = %v, want white", got)
	}
	if got := img.At(20, 20); got != Black {
		t.Errorf("interior pixel = %v, want black in wire mode", got)
	}
}

func TestIncompletePrimitiveDiscarded(t *testing.T) {
	dc := NewContext(32, 32)
	dc.Clear(Black)

	dc.Begin(Triangles)
	dc.SetColor(White)
	dc.Vertex2(5, 5)
	dc.Vertex2(25, 5)
	dc.End()

	// Vertex calls outside a bracket are ignored too.
	dc.Vertex2(5, 25)

	img := dc.Image()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := img.At(x, y); got != Black {
				t.Fatalf("incomplete primitive touched pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestLinesMode(t *testing.T) {
	dc := NewContext(32, 32)
	dc.Clear(Black)

	dc.Begin(Lines)
	dc.SetColor(White)
	dc.Vertex2(5, 10)
	dc.Vertex2(25, 10)
	dc.End()

	img := dc.Image()
	if got := img.At(10, 9); got != White {
		t.Errorf("line pixel = %v, want white", got)
	}
	if got := img.At(10, 15); got != Black {
		t.Errorf("off-line pixel = %v, want black", got)
	}
}

func TestDrawVertexArray(t *testing.T) {
	mesh := &Mesh{
		Positions: []Vec3{
			{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 10, Y: 50},
		},
		Colors:  []Color{White, White, White},
		Indices: []int{0, 1, 2},
	}

	t.Run("matches immediate mode", func(t *testing.T) {
		direct := NewContext(64, 64)
		direct.Clear(Black)
		fillTriangle(direct, White, 10, 10, 50, 10, 10, 50, 0)

		bulk := NewContext(64, 64)
		bulk.Clear(Black)
		bulk.DrawVertexArray(mesh, Material{}, Identity())

		a, b := direct.Image(), bulk.Image()
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				if a.At(x, y) != b.At(x, y) {
					t.Fatalf("pixel (%d,%d): immediate %v, bulk %v", x, y, a.At(x, y), b.At(x, y))
				}
			}
		}
	})

	t.Run("diffuse modulates vertex colors", func(t *testing.T) {
		dc := NewContext(64, 64)
		dc.Clear(Black)
		dc.DrawVertexArray(mesh, Material{Diffuse: RGB(255, 0, 0)}, Identity())
		if got := dc.Image().At(15, 15); got != RGB(255, 0, 0) {
			t.Errorf("diffuse pixel = %v, want red", got)
		}
	})

	t.Run("model transform applies", func(t *testing.T) {
		dc := NewContext(64, 64)
		dc.Clear(Black)
		dc.DrawVertexArray(mesh, Material{}, Translate(V3(5, 0, 0)))
		if got := dc.Image().At(10, 15); got != Black {
			t.Errorf("pre-translate interior = %v, want black", got)
		}
		if got := dc.Image().At(20, 15); got != White {
			t.Errorf("translated interior = %v, want white", got)
		}
	})

	t.Run("nil mesh is a no-op", func(t *testing.T) {
		dc := NewContext(8, 8)
		dc.Clear(Black)
		dc.DrawVertexArray(nil, Material{}, Identity())
	})
}
