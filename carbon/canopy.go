package carbon

import (
	"math"

	"github.com/maseology/sarra/param"
)

// canopy updates the transmitted radiation fraction from yesterday's leaf
// area, and the crop coefficient of emerged cells.
func canopy(d *day, v *param.Variety) {
	for c := range d.ltr {
		d.ltr[c] = math.Exp(-v.Kdf * d.lai[c])
		if d.ph(c) >= 1 {
			d.kcp[c] = math.Max(kcpMin, v.KcMax*(1.-d.ltr[c]))
		}
	}
}
