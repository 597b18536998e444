package sr

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Surface is a mutable 2D pixel buffer. It is both the color plane of a
// Framebuffer and the texture type sampled by the rasterizer.
//
// Pixels are stored as 4 bytes per pixel in the channel order named by
// Format; RGBA8 is the native order and the one every drawing operation
// assumes. Out-of-range coordinates are no-ops on writes and
// return Transparent on reads.
type Surface struct {
	width  int
	height int
	format gputypes.TextureFormat
	data   []uint8
}

// NewSurface creates a surface with the given dimensions in RGBA8.
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Surface{
		width:  width,
		height: height,
		format: gputypes.TextureFormatRGBA8Unorm,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Format returns the pixel format tag of the surface.
func (s *Surface) Format() gputypes.TextureFormat {
	return s.format
}

// Data returns the raw pixel data, 4 bytes per pixel.
func (s *Surface) Data() []uint8 {
	return s.data
}

// At returns the color of a single pixel.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Set sets the color of a single pixel.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// Fill floods the entire surface with a color.
func (s *Surface) Fill(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// Frag samples the surface at normalized coordinates with nearest-neighbor
// filtering. UV coordinates are clamped to [0, 1] before lookup, so the
// sampler never reads past the surface bounds.
func (s *Surface) Frag(u, v float64) Color {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	x := int(u * float64(s.width))
	y := int(v * float64(s.height))
	if x >= s.width {
		x = s.width - 1
	}
	if y >= s.height {
		y = s.height - 1
	}
	return s.At(x, y)
}

// Blit copies src onto the surface with its top-left corner at (x, y),
// source-over blending each pixel. Regions outside the destination are
// clipped.
func (s *Surface) Blit(src *Surface, x, y int) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= s.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= s.width {
				continue
			}
			c := src.At(sx, sy)
			switch c.A {
			case 0:
			case 255:
				s.Set(dx, dy, c)
			default:
				s.Set(dx, dy, c.Over(s.At(dx, dy)))
			}
		}
	}
}

// Convert returns a copy of the surface with its channels swizzled into
// the requested format. Only RGBA8 and BGRA8 are supported; any other
// format returns the surface unchanged.
func (s *Surface) Convert(format gputypes.TextureFormat) *Surface {
	out := &Surface{
		width:  s.width,
		height: s.height,
		format: s.format,
		data:   make([]uint8, len(s.data)),
	}
	copy(out.data, s.data)
	if format == s.format {
		return out
	}
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		// RGBA <-> BGRA is an R/B swap either way.
		for i := 0; i < len(out.data); i += 4 {
			out.data[i+0], out.data[i+2] = out.data[i+2], out.data[i+0]
		}
		out.format = format
	default:
		Logger().Warn("surface: unsupported conversion", "format", format)
	}
	return out
}

// Resize returns a scaled copy of the surface using bilinear filtering.
func (s *Surface) Resize(width, height int) *Surface {
	src := s.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// ToImage converts the surface to an image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.format == gputypes.TextureFormatRGBA8Unorm {
		copy(img.Pix, s.data)
		return img
	}
	converted := s.Convert(gputypes.TextureFormatRGBA8Unorm)
	copy(img.Pix, converted.data)
	return img
}

// FromImage creates an RGBA8 surface from an image.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.Set(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return s
}

// LoadSurface reads an image file (PNG, JPEG, or BMP, chosen by file
// extension) into a surface.
func LoadSurface(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sr: load surface: %w", err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		img, err = png.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("sr: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sr: save png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("sr: encode png: %w", err)
	}
	return nil
}
