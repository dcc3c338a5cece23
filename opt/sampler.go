// Package opt maps points of the unit hypercube onto crop variety
// parameters, for sampling and calibration.
package opt

import (
	"github.com/maseology/mmaths"
	"github.com/maseology/sarra/param"
)

// NVariety is the number of sampled variety parameters.
const NVariety = 5

// VarietyNames lists the parameters set by Variety5, in order.
var VarietyNames = []string{"txConversion", "txRealloc", "kRespMaint", "slaPente", "kdf"}

// Variety5 returns base with its five most sensitive parameters taken from u.
func Variety5(u []float64, base param.Variety) param.Variety {
	v := base
	v.TxConversion = mmaths.LinearTransform(3., 10., u[0])    // radiation-use efficiency [g/MJ]
	v.TxRealloc = mmaths.LinearTransform(.2, .9, u[1])        // share of the assimilate deficit reallocated
	v.KRespMaint = mmaths.LogLinearTransform(.005, .05, u[2]) // maintenance respiration at tempMaint
	v.SlaPente = mmaths.LinearTransform(.01, .2, u[3])
	v.Kdf = mmaths.LinearTransform(.3, .8, u[4]) // extinction coefficient
	return v
}

// Values returns the parameters set by Variety5, ordered as VarietyNames.
func Values(v param.Variety) []float64 {
	return []float64{v.TxConversion, v.TxRealloc, v.KRespMaint, v.SlaPente, v.Kdf}
}
