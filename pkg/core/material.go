package core

// Material holds the Phong coefficients of a surface.
// KD, KS, KT and KR are in [0, 1]; Shininess is a positive exponent.
type Material struct {
	KD        float64 // diffuse
	KS        float64 // specular
	Shininess int
	KT        float64 // transmittance
	KR        float64 // reflectance
}

// NewMaterial creates an opaque, non reflective material
func NewMaterial(kd, ks float64, shininess int) Material {
	return Material{KD: kd, KS: ks, Shininess: shininess}
}

// WithTransparency returns a copy of the material with the given transmittance
func (m Material) WithTransparency(kt float64) Material {
	m.KT = kt
	return m
}

// WithReflectance returns a copy of the material with the given reflectance
func (m Material) WithReflectance(kr float64) Material {
	m.KR = kr
	return m
}
