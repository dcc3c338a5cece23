package sarra

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmio"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
	"github.com/maseology/sarra/opt"
	"github.com/maseology/sarra/param"
	"go.uber.org/zap"
)

// Optimize calibrates the sampled variety parameters to the observed yields
// by shuffled complex evolution, minimizing the yield RMSE. It returns the
// calibrated variety and its score. Trials may run concurrently.
func (m *Model) Optimize(ncmplx int, seed int64) (param.Variety, Results, error) {
	if !m.HasObservations() {
		return m.Var, Results{}, fmt.Errorf("Optimize: model has no observed yields")
	}
	tt := mmio.NewTimer()
	defer tt.Print("optimization complete")

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)

	var neval atomic.Int64
	gen := func(u []float64) float64 {
		n := neval.Add(1)
		v := opt.Variety5(u, m.Var)
		s, err := m.Evaluate(&v, m.Nwrkrs)
		if err != nil {
			m.logger().Debug("calibration trial failed", zap.Int64("trial", n), zap.Error(err))
			return math.MaxFloat64
		}
		return m.Score(s).RMSE
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(ncmplx, opt.NVariety, rng, gen, true)

	v := opt.Variety5(uFinal, m.Var)
	s, err := m.Evaluate(&v, m.Nwrkrs)
	if err != nil {
		return v, Results{}, err
	}
	r := m.Score(s)
	fmt.Printf("\nfinal parameters:\n")
	for i, x := range opt.Values(v) {
		fmt.Printf("\t%s:=\t%v\n", opt.VarietyNames[i], x)
	}
	m.logger().Info("calibration complete", zap.Int64("trials", neval.Load()), zap.Float64("rmse", r.RMSE), zap.Float64("nse", r.NSE))
	return v, r, nil
}
