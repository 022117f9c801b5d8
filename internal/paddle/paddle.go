package paddle

import "github.com/go-gl/mathgl/mgl32"

// Paddle is the player-controlled mesh. It only slides along X and is kept
// within [-Limit, Limit].
type Paddle struct {
	Position mgl32.Vec3
	Speed    float32 // units per second
	Limit    float32
}

// New returns a paddle at start moving at speed, clamped to ±limit on X.
func New(start mgl32.Vec3, speed, limit float32) *Paddle {
	p := &Paddle{Position: start, Speed: speed, Limit: limit}
	p.clamp()
	return p
}

// Update moves the paddle right when right is held and left when left is
// held, scaled by dt seconds. Holding both keys cancels out.
func (p *Paddle) Update(left, right bool, dt float32) {
	if right {
		p.Position[0] += p.Speed * dt
	}
	if left {
		p.Position[0] -= p.Speed * dt
	}
	p.clamp()
}

func (p *Paddle) clamp() {
	p.Position[0] = mgl32.Clamp(p.Position[0], -p.Limit, p.Limit)
}

// Model returns the paddle's model matrix.
func (p *Paddle) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
}
