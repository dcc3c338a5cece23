package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// leafArea ages specific leaf area toward slaMin, refreshes it with the
// day's new leaf growth, and derives lai for phases 2-6.
func leafArea(d *day, v *param.Variety) {
	for c := range d.sla {
		ph, lf, dl := d.ph(c), d.leaf[c], d.dLeaf[c]
		if lf > 0. {
			if ph == 2 && d.changed(c) {
				d.sla[c] = v.SlaMax
			} else {
				aged := d.sla[c] - v.SlaPente*(d.sla[c]-v.SlaMin)
				if dl > 0. {
					d.sla[c] = aged*(lf-dl)/lf + (v.SlaMax+d.sla[c])/2.*(dl/lf)
				} else {
					d.sla[c] = aged
				}
			}
			d.sla[c] = math.Min(v.SlaMax, math.Max(v.SlaMin, d.sla[c]))
		}

		if ph >= 2 && ph <= 6 {
			d.lai[c] = lf * d.sla[c]
		} else {
			d.lai[c] = 0.
		}
	}
}
