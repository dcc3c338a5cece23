package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// respiration computes maintenance respiration, a Q10 response on total and
// leaf biomass. Senesced cells past phase 4 with no leaf do not respire.
func respiration(d *day, v *param.Variety) {
	for c := range d.respMaint {
		if d.ph(c) > 4 && d.leaf[c] == 0. {
			d.respMaint[c] = 0.
			continue
		}
		d.respMaint[c] = v.KRespMaint * (d.total[c] + d.leaf[c]) * math.Pow(q10, (d.tpMoy[c]-v.TempMaint)/tempStep)
	}
}
