package engine

import "math"

// vec3 is a 3D vector used by the trajectory integrator.
// x points downrange, y is vertical (drop), z is horizontal (windage).
type vec3 struct {
	x, y, z float64
}

func vec(x, y, z float64) vec3 {
	return vec3{x: x, y: y, z: z}
}

func (v vec3) magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

func (v vec3) scale(a float64) vec3 {
	return vec(a*v.x, a*v.y, a*v.z)
}

func (v vec3) add(b vec3) vec3 {
	return vec(v.x+b.x, v.y+b.y, v.z+b.z)
}

func (v vec3) sub(b vec3) vec3 {
	return vec(v.x-b.x, v.y-b.y, v.z-b.z)
}
