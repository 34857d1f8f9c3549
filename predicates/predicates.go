// Package predicates implements the geometry kernel: orientation and
// in-circle tests with adaptive precision, the computational heart of
// the triangulation.
//
// Both predicates first evaluate a float64 determinant. When the
// magnitude of that determinant falls below the caller's threshold —
// meaning rounding error could plausibly have flipped its sign — the
// same determinant is recomputed with arbitrary-precision arithmetic,
// which is exact for IEEE-754 double inputs. The thresholds are the
// nominal-point-spacing-derived ones a mesh carries.
package predicates

import (
	"math/big"

	"github.com/iceisfun/tinmesh/types"
)

// Orientation returns the sign of twice the signed area of (a,b,c):
// positive if c lies strictly left of ray a->b, negative if strictly
// right, zero if the three points are exactly collinear.
//
// When |determinant| < threshold, the determinant is recomputed in
// extended precision to resolve the sign exactly.
func Orientation(a, b, c types.Point, threshold float64) int {
	det := orientDet(a, b, c)
	if det > threshold {
		return 1
	}
	if det < -threshold {
		return -1
	}
	return signToInt(orientationExact(a, b, c))
}

// Area returns half the signed orientation determinant of (a,b,c) — the
// signed area of the triangle.
func Area(a, b, c types.Point) float64 {
	return orientDet(a, b, c) / 2
}

func orientDet(a, b, c types.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func orientationExact(a, b, c types.Point) int {
	bx := bigSub(b.X, a.X)
	byy := bigSub(b.Y, a.Y)
	cx := bigSub(c.X, a.X)
	cy := bigSub(c.Y, a.Y)

	term1 := new(big.Float).SetPrec(256).Mul(bx, cy)
	term2 := new(big.Float).SetPrec(256).Mul(byy, cx)
	det := term1.Sub(term1, term2)
	return det.Sign()
}

// InCircle returns positive if d lies strictly inside the circumscribed
// circle of counter-clockwise triangle (a,b,c), negative if strictly
// outside, and zero if exactly cocircular. A determinant within
// threshold of zero is recomputed in extended precision, as for
// Orientation.
//
// Callers pass a CCW triangle; a CW triangle inverts the sign of the
// result, so callers must orient (a,b,c) themselves (predicates does
// not re-derive orientation here to avoid a second, redundant pass).
func InCircle(a, b, c, d types.Point, threshold float64) int {
	det := inCircleDet(a, b, c, d)
	if det > threshold {
		return 1
	}
	if det < -threshold {
		return -1
	}
	return signToInt(inCircleExact(a, b, c, d))
}

func inCircleDet(a, b, c, d types.Point) float64 {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	return ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)
}

func inCircleExact(a, b, c, d types.Point) int {
	ax := bigSub(a.X, d.X)
	ay := bigSub(a.Y, d.Y)
	bx := bigSub(b.X, d.X)
	by := bigSub(b.Y, d.Y)
	cx := bigSub(c.X, d.X)
	cy := bigSub(c.Y, d.Y)

	ad2 := bigAddProd(ax, ax, ay, ay)
	bd2 := bigAddProd(bx, bx, by, by)
	cd2 := bigAddProd(cx, cx, cy, cy)

	term1 := new(big.Float).SetPrec(256).Mul(ad2, bigDet2(bx, by, cx, cy))
	term2 := new(big.Float).SetPrec(256).Mul(bd2, bigDet2(ax, ay, cx, cy))
	term3 := new(big.Float).SetPrec(256).Mul(cd2, bigDet2(ax, ay, bx, by))

	det := term1.Sub(term1, term2)
	det.Add(det, term3)
	return det.Sign()
}

func signToInt(sign int) int {
	return sign
}

func bigSub(x, y float64) *big.Float {
	out := new(big.Float).SetPrec(256).SetFloat64(x)
	return out.Sub(out, new(big.Float).SetPrec(256).SetFloat64(y))
}

func bigAddProd(ax, ay, bx, by *big.Float) *big.Float {
	p1 := new(big.Float).SetPrec(256).Mul(ax, ay)
	p2 := new(big.Float).SetPrec(256).Mul(bx, by)
	return p1.Add(p1, p2)
}

func bigDet2(ax, ay, bx, by *big.Float) *big.Float {
	p1 := new(big.Float).SetPrec(256).Mul(ax, by)
	p2 := new(big.Float).SetPrec(256).Mul(ay, bx)
	return p1.Sub(p1, p2)
}
