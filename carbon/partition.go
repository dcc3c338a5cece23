package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// reallocation computes, during grain filling, the assimilate shortfall of
// the yield demand and the share of it drawn from leaf and stem reserves.
func reallocation(d *day, v *param.Variety) {
	for c := range d.realloc {
		if d.ph(c) != 5 {
			d.manque[c], d.realloc[c] = 0., 0.
			continue
		}
		d.manque[c] = math.Max(0., d.dRdtPot[c]-math.Max(0., d.dAero[c]))
		d.realloc[c] = math.Min(d.manque[c]*v.TxRealloc, math.Max(0., d.leaf[c]-leafReserve))
	}
}

// partition splits aboveground biomass into leaf and stem. The three regimes
// are applied in order; growth and uniform reallocation may both apply to a
// cell. Aboveground biomass is then recomposed from its parts.
func partition(d *day, v *param.Variety) {
	pc := v.PcReallocFeuille
	for c := range d.leaf {
		ph, da := d.ph(c), d.dAero[c]

		// loss
		if ph > 1 && da < 0. {
			d.leaf[c] = math.Max(biomFloor, d.leaf[c]-(d.realloc[c]-da)*pc)
			d.stem[c] = math.Max(biomFloor, d.stem[c]-(d.realloc[c]-da)*(1.-pc))
		}

		// vegetative growth
		if ph > 1 && da >= 0. && (ph <= 4 || float64(ph) <= v.PhaseDevVeg) {
			d.bM[c] = v.FeuilAeroBase - .1
			d.cM[c] = (v.FeuilAeroPente*1000./d.bM[c] + .78) / .75
			x := d.aero[c] - d.rdt[c]
			d.leaf[c] = (.1 + d.bM[c]*math.Pow(d.cM[c], x/1000.)) * x
			d.stem[c] = d.aero[c] - d.leaf[c] - d.rdt[c]
		}

		// uniform reallocation
		if ph > 1 && da > 0. {
			d.leaf[c] -= d.realloc[c] * pc
			d.stem[c] -= d.realloc[c] * (1. - pc)
		}

		d.dLeaf[c] = d.leaf[c] - d.leafPrev[c]
		if ph > 1 {
			d.aero[c] = d.stem[c] + d.leaf[c] + d.rdt[c]
		}
	}
}
