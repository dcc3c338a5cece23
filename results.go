package sarra

import (
	"fmt"
	"math"

	"github.com/maseology/objfunc"
	"github.com/maseology/sarra/store"
)

// Results scores simulated against observed final yields.
type Results struct {
	N               int // observed cells
	RMSE, Bias, NSE float64
	MeanRdt         float64 // mean simulated final yield over all cells [kg/ha]
}

func (r Results) String() string {
	return fmt.Sprintf("n: %d  RMSE: %.1f  Bias: %.3f  NSE: %.3f  mean yield: %.1f kg/ha", r.N, r.RMSE, r.Bias, r.NSE, r.MeanRdt)
}

// Score compares sim to obs over the cells where obs is defined.
func Score(obs, sim []float64) Results {
	r := Results{RMSE: math.NaN(), Bias: math.NaN(), NSE: math.NaN(), MeanRdt: math.NaN()}
	if len(sim) > 0 {
		r.MeanRdt = 0.
		for _, s := range sim {
			r.MeanRdt += s
		}
		r.MeanRdt /= float64(len(sim))
	}
	o, s := make([]float64, 0, len(obs)), make([]float64, 0, len(obs))
	for c, v := range obs {
		if math.IsNaN(v) || c >= len(sim) {
			continue
		}
		o = append(o, v)
		s = append(s, sim[c])
	}
	if r.N = len(o); r.N == 0 {
		return r
	}
	r.RMSE = objfunc.RMSE(o, s)
	r.Bias = objfunc.Bias(o, s)
	if r.N > 1 {
		r.NSE = objfunc.NSE(o, s)
	}
	return r
}

// finalYield returns a copy of the last day's yield.
func finalYield(s *store.Store) []float64 {
	return append([]float64(nil), s.Day(store.Rdt, s.Nday-1)...)
}

// Score scores the final yields of s against the model's observations.
func (m *Model) Score(s *store.Store) Results {
	return Score(m.Obs, finalYield(s))
}
