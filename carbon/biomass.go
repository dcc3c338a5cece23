package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
	"gonum.org/v1/gonum/floats"
)

// seedReserve returns the total biomass a stand starts from on emergence,
// raised for stands sparser than the optimal density.
func seedReserve(v *param.Variety, m *param.Management) float64 {
	r := 1.
	if v.HasDensOpti() {
		r = math.Max(1., v.DensOpti/m.Densite)
	}
	return m.Densite * r * v.TxResGrain * v.PoidsSecGrain / 1000.
}

// totalBiomass integrates assim-respMaint, restarting from the seed reserve
// on the 1→2 transition, and keeps the panicle-initiation and flowering
// snapshots used by potential yield.
func totalBiomass(d *day, v *param.Variety, m *param.Management) {
	b0 := seedReserve(v, m)
	for c := range d.total {
		d.dTotal[c] = d.assim[c] - d.respMaint[c]
		ph, chg := d.ph(c), d.changed(c)
		if ph == 2 && chg {
			d.total[c] = b0
		} else {
			d.total[c] += d.dTotal[c]
		}
		switch {
		case ph == 4 && chg:
			d.biomIp[c] = d.total[c]
		case ph == 5 && chg:
			d.biomFlo[c] = d.total[c]
		}
	}
}

// abovegroundBiomass applies the saturating allometry in phases 2-4 and
// otherwise follows total biomass.
func abovegroundBiomass(d *day, v *param.Variety) {
	for c := range d.aero {
		if ph := d.ph(c); ph >= 2 && ph <= 4 {
			d.aero[c] = math.Min(aeroFracMax, v.AeroTotPente*d.total[c]+v.AeroTotBase) * d.total[c]
		} else {
			d.aero[c] += d.dTotal[c]
		}
		d.dAero[c] = d.aero[c] - d.aeroPrev[c]
	}
}

// rootBiomass is the residual of total and aboveground biomass. Total is
// floored at aboveground biomass so that roots never go negative.
func rootBiomass(d *day) {
	for c, a := range d.aero {
		d.total[c] = math.Max(d.total[c], a)
	}
	floats.SubTo(d.root, d.total, d.aero)
}

func vegetativeBiomass(d *day) {
	floats.AddTo(d.veg, d.stem, d.leaf)
}
