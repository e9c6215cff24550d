package friction

import (
	"fmt"
	"math"
)

// Primitive is one drawable element of the force diagram. Coordinates are in
// meters with y pointing up and the ground surface at y = 0; rendering is left
// to the consumer (the UI client or the PDF report).
type Primitive struct {
	Shape  string `json:"shape"` // "rect", "line" or "arrow"
	Origin Point  `json:"origin"`
	Vector Point  `json:"vector"`
	Label  string `json:"label,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Diagram maps a finished calculation onto drawable primitives: ground and
// water table lines, the soil block, the shield outline and force arrows whose
// lengths are proportional to the computed magnitudes.
func Diagram(in Input, res Result) []Primitive {
	d := in.TBM.DiameterM
	l := in.TBM.ShieldLengthM
	depth := in.Site.TunnelDepthM

	left := -d
	right := math.Max(2*d, l+d)
	width := right - left

	prims := []Primitive{
		{Shape: "line", Origin: Point{left, 0}, Vector: Point{width, 0}, Label: "Ground Surface"},
		{Shape: "rect", Origin: Point{left, -depth}, Vector: Point{width, depth}, Label: "Soil"},
	}
	if in.Site.WaterTableDepthM < depth {
		prims = append(prims, Primitive{
			Shape:  "line",
			Origin: Point{left, -in.Site.WaterTableDepthM},
			Vector: Point{width, 0},
			Label:  "Water Table",
		})
	}
	prims = append(prims, Primitive{
		Shape:  "rect",
		Origin: Point{0, -depth},
		Vector: Point{l, d},
		Label:  "TBM Shield",
	})

	// Arrow lengths scale with magnitude, the largest drawn at one diameter.
	ref := math.Max(math.Max(res.VerticalStressPa, res.HorizontalStressPa),
		math.Max(res.FrictionForceN, math.Max(in.TBM.WeightN, res.PorePressurePa)))
	scale := func(v float64) float64 {
		if ref <= 0 {
			return 0
		}
		return d * v / ref
	}

	vLen := scale(res.VerticalStressPa)
	prims = append(prims, Primitive{
		Shape:  "arrow",
		Origin: Point{l / 2, -depth + d + vLen},
		Vector: Point{0, -vLen},
		Label:  fmt.Sprintf("Vertical Stress: %.2f kPa", res.VerticalStressPa/1000),
	})

	hLen := scale(res.HorizontalStressPa)
	prims = append(prims, Primitive{
		Shape:  "arrow",
		Origin: Point{l + hLen, -depth + d/2},
		Vector: Point{-hLen, 0},
		Label:  fmt.Sprintf("Horizontal Stress: %.2f kPa", res.HorizontalStressPa/1000),
	})

	if res.PorePressurePa > 0 {
		uLen := scale(res.PorePressurePa)
		prims = append(prims, Primitive{
			Shape:  "arrow",
			Origin: Point{l / 2, -depth - uLen},
			Vector: Point{0, uLen},
			Label:  fmt.Sprintf("Pore Pressure: %.2f kPa", res.PorePressurePa/1000),
		})
	}

	fLen := scale(res.FrictionForceN)
	prims = append(prims, Primitive{
		Shape:  "arrow",
		Origin: Point{l/2 + fLen/2, -depth - 0.15*d},
		Vector: Point{-fLen, 0},
		Label:  fmt.Sprintf("Shield Friction: %.2f kN", res.FrictionForceN/1000),
	})

	wLen := scale(in.TBM.WeightN)
	prims = append(prims, Primitive{
		Shape:  "arrow",
		Origin: Point{l / 2, -depth + d/2},
		Vector: Point{0, -wLen},
		Label:  fmt.Sprintf("TBM Weight: %.2f kN", in.TBM.WeightN/1000),
	})

	return prims
}
