package diagram

// Kind selects the template a diagram is drawn from. The zero value means
// no template was resolved.
type Kind string

const (
	KindNone          Kind = ""
	KindBearing       Kind = "bearing"
	KindCircle        Kind = "circle"
	KindTriangle      Kind = "triangle"
	KindQuadrilateral Kind = "quadrilateral"
	KindShape3D       Kind = "shape3d"
	KindCoordinate    Kind = "coordinate"
	KindLineAngle     Kind = "lineAngle"
	KindGeneric       Kind = "generic"

	// Science kinds are only produced by the subject augmenter.
	KindForce     Kind = "force"
	KindCircuit   Kind = "circuit"
	KindWave      Kind = "wave"
	KindAtomic    Kind = "atomic"
	KindBonding   Kind = "bonding"
	KindMolecular Kind = "molecular"
)

// Kinds lists the geometry kinds in classification order.
var Kinds = []Kind{
	KindBearing, KindCircle, KindTriangle, KindQuadrilateral,
	KindShape3D, KindCoordinate, KindLineAngle, KindGeneric,
}

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}
