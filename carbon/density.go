package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
	"gonum.org/v1/gonum/floats"
)

// densityRatio returns the asymptotic per-area compensation of a stand
// relative to the optimal density, and false when densOpti is undefined.
func densityRatio(v *param.Variety, m *param.Management) (float64, bool) {
	if !v.HasDensOpti() {
		return 1., false
	}
	return v.DensiteA + v.DensiteP*math.Exp(-(m.Densite/(v.DensOpti/-math.Log((1.-v.DensiteA)/v.DensiteP)))), true
}

// densityUp scales the yield and biomass pools by r, then recomposes
// aboveground and total biomass and lai.
func densityUp(d *day, r float64) {
	for _, x := range [][]float64{d.rdt, d.rdtPot, d.root, d.stem, d.leaf} {
		floats.Scale(r, x)
	}
	floats.AddTo(d.aero, d.stem, d.leaf)
	floats.Add(d.aero, d.rdt)
	floats.MulTo(d.lai, d.leaf, d.sla)
	floats.AddTo(d.total, d.aero, d.root)
}

// densityDown undoes densityUp.
func densityDown(d *day, r float64) {
	for _, x := range [][]float64{d.rdt, d.rdtPot, d.root, d.stem, d.leaf, d.lai} {
		floats.Scale(1./r, x)
	}
	floats.AddTo(d.aero, d.stem, d.leaf)
	floats.Add(d.aero, d.rdt)
	floats.AddTo(d.total, d.aero, d.root)
}
