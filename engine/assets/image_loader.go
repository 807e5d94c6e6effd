package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG, BMP or WebP file into tightly packed RGBA8
// (stride == 4*width). With flipY the rows are reversed to match OpenGL's
// bottom-left texture origin.
func LoadImage(path string, flipY bool) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	rgba := toRGBA(img)
	if flipY {
		FlipY(rgba)
	}
	return rgba, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// FlipY reverses the row order in place.
func FlipY(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Rect.Dx()*4)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+len(row)]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+len(row)]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// Checkerboard generates a size×size image of cells×cells squares,
// starting with a in the top-left corner.
func Checkerboard(size, cells int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	cell := max(size/cells, 1)
	ua, ub := image.NewUniform(a), image.NewUniform(b)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			src := ua
			if (x/cell+y/cell)%2 == 1 {
				src = ub
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), src, image.Point{}, draw.Src)
		}
	}
	return img
}
