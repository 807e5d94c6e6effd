package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/lumen/engine/core"
)

type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveRight
	MoveLeft
)

var bindings = []struct {
	key  core.Key
	move Movement
}{
	{core.KeyW, MoveForward},
	{core.KeyUp, MoveForward},
	{core.KeyS, MoveBackward},
	{core.KeyDown, MoveBackward},
	{core.KeyD, MoveRight},
	{core.KeyRight, MoveRight},
	{core.KeyA, MoveLeft},
	{core.KeyLeft, MoveLeft},
}

func movementFor(k core.Key) (Movement, bool) {
	for _, b := range bindings {
		if b.key == k {
			return b.move, true
		}
	}
	return 0, false
}

// CameraController: WASD/arrows move, pointer deltas look around.
//
// In the default discrete mode each key-down (and key repeat) moves the camera
// by Speed. With Continuous set, held keys move it by Speed units per second
// in Update, which makes motion independent of the frame rate.
type CameraController struct {
	Speed        float32 // units per key step, or per second when Continuous
	AngularSpeed float32 // radians per pointer unit
	MaxPitch     float32 // radians, used when ClampPitch is set
	ClampPitch   bool
	Continuous   bool

	camera *Camera
	input  *core.Input
}

// NewCameraController wraps cam, or a NewCamera when cam is nil.
func NewCameraController(cam *Camera) *CameraController {
	if cam == nil {
		cam = NewCamera()
	}
	return &CameraController{
		Speed:        0.1,
		AngularSpeed: 0.0025,
		MaxPitch:     mgl32.DegToRad(89),
		ClampPitch:   true,
		camera:       cam,
		input:        core.NewInput(),
	}
}

func (cc *CameraController) Camera() *Camera { return cc.camera }

func (cc *CameraController) OnWindowEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.EventKey:
		if cc.Continuous {
			cc.input.Handle(ev)
			return
		}
		if !e.Down {
			return
		}
		if m, ok := movementFor(e.Key); ok {
			cc.Move(m, cc.Speed)
		}
	case core.EventMouseDelta:
		cc.Rotate(float32(e.DX), float32(e.DY))
	}
}

// Update applies held movement keys in continuous mode.
func (cc *CameraController) Update(dt float32) {
	if !cc.Continuous {
		return
	}
	step := cc.Speed * dt
	for _, b := range bindings {
		if cc.input.IsKeyDown(b.key) {
			cc.Move(b.move, step)
		}
	}
}

// Move translates along the facing direction or the level right vector.
// Moves are additive, so their order does not matter.
func (cc *CameraController) Move(m Movement, amount float32) {
	var axis mgl32.Vec3
	switch m {
	case MoveForward:
		axis = cc.camera.Direction()
	case MoveBackward:
		axis = cc.camera.Direction().Mul(-1)
	case MoveRight:
		axis = cc.camera.Right()
	case MoveLeft:
		axis = cc.camera.Right().Mul(-1)
	default:
		return
	}
	cc.camera.Translate(axis.Mul(amount))
}

// Rotate turns the camera by a pointer delta. Positive dx looks right,
// positive dy (pointer moving down the screen) looks down. Pitch is applied
// around the level right vector first, then yaw around WorldUp.
func (cc *CameraController) Rotate(dx, dy float32) {
	d := cc.camera.Direction()
	yaw := -dx * cc.AngularSpeed
	pitch := -dy * cc.AngularSpeed

	if cc.ClampPitch {
		elev := float32(math.Asin(float64(mgl32.Clamp(d.Y(), -1, 1))))
		pitch = mgl32.Clamp(elev+pitch, -cc.MaxPitch, cc.MaxPitch) - elev
	}

	yawQ := mgl32.QuatRotate(yaw, WorldUp)
	pitched := mgl32.QuatRotate(pitch, cc.camera.Right()).Rotate(d)
	if err := cc.camera.SetDirection(yawQ.Rotate(pitched)); err != nil {
		// Pitch landed exactly on the pole; keep the yaw only.
		_ = cc.camera.SetDirection(yawQ.Rotate(d))
	}
}
