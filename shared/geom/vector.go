package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita um valor ao intervalo [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PerpendicularBasis retorna dois vetores unitários (u, v) perpendiculares
// entre si e ao eixo dado. Quando o eixo é quase paralelo ao eixo de
// referência (furo quase vertical), trocamos a referência para evitar um
// produto vetorial degenerado próximo de zero.
func PerpendicularBasis(axis mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	n := axis
	if n.Len() < 1e-8 {
		n = mgl32.Vec3{0, -1, 0} // Eixo padrão de um furo: para baixo
	}
	n = n.Normalize()

	ref := mgl32.Vec3{0, 1, 0}
	if math32.Abs(n.Dot(ref)) > 0.99 {
		ref = mgl32.Vec3{1, 0, 0}
	}

	u := n.Cross(ref).Normalize()
	v := n.Cross(u).Normalize()
	return u, v
}

// RotationBetween retorna o quatérnio de arco mínimo que leva o vetor `from`
// ao vetor `to`. Vetores quase opostos são tratados com uma rotação de 180°
// em torno de um eixo perpendicular (o caso comum aqui: cilindro canônico +Y
// contra um furo apontando para baixo).
func RotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	f := from.Normalize()
	t := to.Normalize()

	dot := f.Dot(t)
	switch {
	case dot > 0.999999:
		return mgl32.QuatIdent()
	case dot < -0.999999:
		axis, _ := PerpendicularBasis(f)
		return mgl32.QuatRotate(math32.Pi, axis)
	}

	return mgl32.QuatBetweenVectors(f, t)
}

// PointLineDistance retorna a distância perpendicular de um ponto à reta
// definida por (a, b). Se a reta for degenerada (a == b), retorna a
// distância simples ao ponto a.
func PointLineDistance(p, a, b mgl32.Vec3) float32 {
	ab := b.Sub(a)
	mag := ab.Len()
	if mag < 1e-12 {
		return p.Sub(a).Len()
	}
	dir := ab.Mul(1.0 / mag)

	ap := p.Sub(a)
	proj := ap.Dot(dir)
	perp := ap.Sub(dir.Mul(proj))
	return perp.Len()
}
