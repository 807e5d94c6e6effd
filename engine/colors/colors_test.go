package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, White.NRGBA())
	assert.Equal(t, color.NRGBA{51, 51, 51, 255}, Charcoal.NRGBA())
	assert.Equal(t, color.NRGBA{0, 255, 0, 0}, Color{-1, 2, 0, 0}.NRGBA())
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	assert.Equal(t, float32(0.5), c[3])
	assert.Equal(t, float32(1), Red[3])
}
