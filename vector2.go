package spade

import "github.com/go-gl/mathgl/mgl64"

// Vec2 adapts github.com/go-gl/mathgl's fixed-size vector type to the
// 2D case, mirroring how _examples/akmonengine-feather/actor/aabb.go
// wraps mgl64.Vec3 for its AABB corners — the same "wrap a fixed-size
// numeric vector from mathgl" idiom, one dimension down. It is the
// concrete float64 backing store callers reach for when they want a
// ready-made Point[float64] without defining their own vertex type.
type Vec2 struct {
	v mgl64.Vec2
}

// NewVec2 builds a Vec2 from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{v: mgl64.Vec2{x, y}}
}

// Point returns the spade.Point view of this vector.
func (v Vec2) Point() Point[float64] {
	return Point[float64]{X: v.v.X(), Y: v.v.Y()}
}

// Add returns the sum of v and o, delegating to mgl64.Vec2.Add.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v: v.v.Add(o.v)}
}

// Sub returns v minus o, delegating to mgl64.Vec2.Sub.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v: v.v.Sub(o.v)}
}

// Scale returns v scaled by s, delegating to mgl64.Vec2.Mul.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v: v.v.Mul(s)}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.v.Dot(o.v)
}

// Cross returns the 2D cross product (signed parallelogram area) of v
// and o. mathgl only defines Cross for Vec3, so this is computed
// directly rather than delegated.
func (v Vec2) Cross(o Vec2) float64 {
	return v.v.X()*o.v.Y() - v.v.Y()*o.v.X()
}

// Min returns the component-wise minimum of v and o. mathgl has no
// component-wise min/max for Vec2, so this is added here.
func (v Vec2) Min(o Vec2) Vec2 {
	return NewVec2(Min(v.v.X(), o.v.X()), Min(v.v.Y(), o.v.Y()))
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return NewVec2(Max(v.v.X(), o.v.X()), Max(v.v.Y(), o.v.Y()))
}
