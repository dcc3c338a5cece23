package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// potentialYield sets rdtPot on flowering and the daily potential increment
// dRdtPot through grain filling.
func potentialYield(d *day, v *param.Variety) {
	for c := range d.rdtPot {
		if d.ph(c) != 5 {
			continue
		}
		if d.changed(c) {
			d.rdtPot[c] = v.KRdtPotA*(d.biomFlo[c]-d.biomIp[c]) + v.KRdtPotB + v.KRdtBiom*d.biomFlo[c]
			if d.rdtPot[c] > 2.*d.stem[c] && v.PhaseDevVeg < 6. {
				d.rdtPot[c] = 2. * d.stem[c]
			}
		}
		if d.trPot[c] > 0. {
			d.dRdtPot[c] = math.Max(d.rdtPot[c]*(d.ddj[c]/v.SDJMatu1)*(d.tr[c]/d.trPot[c]), respYieldFrac*d.respMaint[c])
		} else {
			d.dRdtPot[c] = 0.
		}
	}
}

// grainFilling grows yield toward demand, supplied by fresh aboveground gain
// and reallocated reserves.
func grainFilling(d *day) {
	for c := range d.rdt {
		if d.ph(c) == 5 {
			d.rdt[c] += math.Min(d.dRdtPot[c], math.Max(0., d.dAero[c])+d.realloc[c])
		}
	}
}
