package tween

// Vec2 is a 2D vector. Each component is one easable channel.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector, e.g. a position, euler angles, or a scale.
type Vec3 struct {
	X, Y, Z float64
}

// Color is an RGBA color with components nominally in [0, 1]. Not
// premultiplied. Interpolation does not clamp, so overshooting curves can
// push components outside that range.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the opaque white color.
var ColorWhite = Color{1, 1, 1, 1}
