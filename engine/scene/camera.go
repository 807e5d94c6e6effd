package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the axis the camera frame stays level against.
var WorldUp = mgl32.Vec3{0, 1, 0}

var (
	ErrDegenerateDirection = errors.New("scene: camera direction has zero length")
	ErrVerticalDirection   = errors.New("scene: camera direction is parallel to world up")
)

const (
	degenerateEpsilon = 1e-6
	levelEpsilon      = 1e-4
)

// Camera is a position plus a unit facing direction. Right and Up are always
// derived from the direction, so the frame can pitch and yaw but never roll.
type Camera struct {
	position  mgl32.Vec3
	direction mgl32.Vec3
}

// NewCamera returns a camera at (0,0,3) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		position:  mgl32.Vec3{0, 0, 3},
		direction: mgl32.Vec3{0, 0, -1},
	}
}

func (c *Camera) Position() mgl32.Vec3     { return c.position }
func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p }
func (c *Camera) Translate(d mgl32.Vec3)   { c.position = c.position.Add(d) }
func (c *Camera) Direction() mgl32.Vec3    { return c.direction }

// SetDirection stores v normalized. Zero-length and vertical vectors are
// rejected and leave the camera unchanged.
func (c *Camera) SetDirection(v mgl32.Vec3) error {
	if v.Len() < degenerateEpsilon {
		return ErrDegenerateDirection
	}
	n := v.Normalize()
	if n.Cross(WorldUp).Len() < degenerateEpsilon {
		return ErrVerticalDirection
	}
	c.direction = n
	return nil
}

// SetTarget points the camera at p.
func (c *Camera) SetTarget(p mgl32.Vec3) error {
	if err := c.SetDirection(p.Sub(c.position)); err != nil {
		return fmt.Errorf("look at %v from %v: %w", p, c.position, err)
	}
	return nil
}

// Right is normalize(direction × WorldUp); its Y component is always zero.
func (c *Camera) Right() mgl32.Vec3 { return c.direction.Cross(WorldUp).Normalize() }

// Up is Right × direction.
func (c *Camera) Up() mgl32.Vec3 { return c.Right().Cross(c.direction) }

// Level reports whether the frame has no roll.
func (c *Camera) Level() bool {
	return mgl32.Abs(c.Right().Y()) < levelEpsilon
}

// LookAt returns the right-handed view matrix.
func (c *Camera) LookAt() mgl32.Mat4 {
	c.checkLevel()
	return mgl32.LookAtV(c.position, c.position.Add(c.direction), c.Up())
}

func (c *Camera) checkLevel() {
	if !c.Level() {
		panic(fmt.Sprintf("scene: camera rolled, right=%v", c.Right()))
	}
}
