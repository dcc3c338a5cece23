package carbon

import (
	"math"

	"github.com/maseology/mmaths"
	"github.com/maseology/sarra/param"
)

// kAssim returns the conversion factor of cell c, and false when the phase
// leaves it unchanged: phases outside 2-6, or a grain-filling cell whose
// bracketing thresholds coincide.
func kAssim(d *day, c int, v *param.Variety) (float64, bool) {
	progress := func() (float64, bool) {
		den := d.seuilSuiv[c] - d.seuilP[c]
		if den == 0. {
			return 0., false
		}
		return (d.sdj[c] - d.seuilP[c]) / den, true
	}
	switch d.ph(c) {
	case 2:
		return 1., true
	case 3, 4:
		return v.TxAssimBVP, true
	case 5:
		if u, ok := progress(); ok {
			return mmaths.LinearTransform(v.TxAssimBVP, v.TxAssimMatu1, u), true
		}
	case 6:
		if u, ok := progress(); ok {
			return mmaths.LinearTransform(v.TxAssimMatu1, v.TxAssimMatu2, u), true
		}
	}
	return 0., false
}

// assimilation computes the conversion efficiency, potential and
// transpiration-limited assimilation.
func assimilation(d *day, v *param.Variety, m *param.Management) {
	rate := func(c int) float64 {
		if m.HasNI() {
			return v.TxConversion
		}
		return d.conv[c]
	}
	for c := range d.assim {
		if k, ok := kAssim(d, c, v); ok {
			d.kassim[c] = k
		}
		d.conv[c] = d.kassim[c] * v.TxConversion
		d.assimPot[c] = d.par[c] * (1. - math.Exp(-v.Kdf*d.lai[c])) * rate(c) * assimScale
		if d.trPot[c] > 0. {
			d.assim[c] = d.assimPot[c] * d.tr[c] / d.trPot[c]
		} else {
			d.assim[c] = 0.
		}
	}
}
