package sarra

import (
	"fmt"
	"math/rand"

	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
	"github.com/maseology/sarra/opt"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerateSamples evaluates n variety samples drawn from a Latin hypercube
// around the model's variety. The sample space and the scores of every
// sample are written to outdirprfx+"samplespace.csv" and
// outdirprfx+"scores.csv". Samples run concurrently, one worker each.
func (m *Model) GenerateSamples(n int, seed int64, outdirprfx string) ([]Results, error) {
	tt := mmio.NewTimer()
	defer tt.Print(fmt.Sprintf("%d samples complete", n))

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, n, opt.NVariety, false)

	u := make([][]float64, n)
	lns := make([]string, n)
	for k := 0; k < n; k++ {
		u[k] = make([]float64, opt.NVariety)
		lns[k] = fmt.Sprint(k)
		for j := 0; j < opt.NVariety; j++ {
			u[k][j] = sp.U[j][k]
			lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
		}
	}
	mmio.WriteLines(outdirprfx+"samplespace.csv", lns)

	res := make([]Results, n)
	var g errgroup.Group
	g.SetLimit(max(m.Nwrkrs, 1))
	for k := 0; k < n; k++ {
		g.Go(func() error {
			v := opt.Variety5(u[k], m.Var)
			s, err := m.Evaluate(&v, 1)
			if err != nil {
				return fmt.Errorf("sample %d: %w", k, err)
			}
			res[k] = m.Score(s)
			m.logger().Debug("sample evaluated", zap.Int("sample", k), zap.Float64("rmse", res[k].RMSE), zap.Float64("meanRdt", res[k].MeanRdt))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	csvw := mmio.NewCSVwriter(outdirprfx + "scores.csv")
	defer csvw.Close()
	head := "sample,n,rmse,bias,nse,meanRdt"
	for _, nm := range opt.VarietyNames {
		head += "," + nm
	}
	if err := csvw.WriteHead(head); err != nil {
		return nil, err
	}
	for k, r := range res {
		ln := []interface{}{k, r.N, r.RMSE, r.Bias, r.NSE, r.MeanRdt}
		for _, x := range opt.Values(opt.Variety5(u[k], m.Var)) {
			ln = append(ln, x)
		}
		csvw.WriteLine(ln...)
	}
	return res, nil
}
