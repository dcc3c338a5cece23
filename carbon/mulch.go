package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// mulch decays standing (Up) and fallen (Lit) residue. While a crop stands,
// herds are kept off and standing residue is laid down; between seasons the
// herd ingests leaves and tramples residue from standing to fallen.
func mulch(d *day, m *param.Management) {
	for c := range d.ubt {
		if d.ph(c) > 0 {
			d.ubt[c] = 0.
			d.litFeuille[c] += d.feuilleUp[c]
			d.litTige[c] += d.tigeUp[c]
			d.feuilleUp[c], d.tigeUp[c] = 0., 0.
		} else {
			d.ubt[c] = m.NbUBT
		}
		u := d.ubt[c]

		fu, tu, lf, lt := d.feuilleUp[c], d.tigeUp[c], d.litFeuille[c], d.litTige[c]
		d.feuilleUp[c] = math.Max(0., fu-fu*m.KNUp-fu*m.KI*u-fu*m.KT*u)
		d.tigeUp[c] = math.Max(0., tu-tu*m.KNUp-tu*m.KT*u)
		d.litFeuille[c] = math.Max(0., lf-lf*m.KNLit-lf*m.KI*u-lf*m.KT*u)
		d.litTige[c] = math.Max(0., lt-lt*m.KNLit-lt*m.KT*u)
		d.biomMc[c] = d.litFeuille[c] + d.litTige[c]

		// trampling
		d.litFeuille[c] += d.feuilleUp[c] * m.KT * u
		d.litTige[c] += d.tigeUp[c] * m.KT * u
	}
}

// harvest folds the unharvested leaf and stem into standing residue on the
// day a cell enters phase 7, laying a txaTerre share of it on the ground.
func harvest(d *day, v *param.Variety, m *param.Management) {
	for c := range d.feuilleUp {
		if d.ph(c) != 7 || !d.changed(c) {
			continue
		}
		d.feuilleUp[c] += d.leaf[c] * (1. - v.TxRecolte)
		d.tigeUp[c] += d.stem[c] * (1. - v.TxRecolte)
		d.litFeuille[c] += d.feuilleUp[c] * m.TxaTerre
		d.litTige[c] += d.tigeUp[c] * m.TxaTerre
		d.feuilleUp[c] *= 1. - m.TxaTerre
		d.tigeUp[c] *= 1. - m.TxaTerre
		d.biomMc[c] = d.litFeuille[c] + d.litTige[c]
	}
}
