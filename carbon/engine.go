package carbon

import (
	"fmt"
	"math"
	"runtime"

	"github.com/maseology/sarra/param"
	"github.com/maseology/sarra/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine steps the carbon balance of a store, one day at a time.
type Engine struct {
	s      *store.Store
	v      *param.Variety
	m      *param.Management
	rap    float64 // stand-density ratio
	dens   bool    // density correction active
	nwrkrs int
	lg     *zap.Logger
}

// New validates the parameters and allocates the engine's fields in s. A
// nwrkrs < 1 uses every CPU; a nil logger discards.
func New(s *store.Store, v *param.Variety, m *param.Management, nwrkrs int, lg *zap.Logger) (*Engine, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("carbon.New: variety: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("carbon.New: management: %w", err)
	}
	if err := Allocate(s, v); err != nil {
		return nil, err
	}
	if nwrkrs < 1 {
		nwrkrs = runtime.GOMAXPROCS(0)
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	e := &Engine{s: s, v: v, m: m, nwrkrs: nwrkrs, lg: lg}
	e.rap, e.dens = densityRatio(v, m)
	lg.Debug("carbon engine ready",
		zap.Int("days", s.Nday),
		zap.Int("cells", s.Ncell()),
		zap.Int("workers", nwrkrs),
		zap.Bool("densityCorrection", e.dens),
		zap.Float64("rapDensite", e.rap),
		zap.Bool("intensification", m.HasNI()),
	)
	return e, nil
}

// Store returns the store the engine steps.
func (e *Engine) Store() *store.Store { return e.s }

// Step computes day j from day j-1 and day j's inputs. Re-stepping a day
// reproduces the same result.
func (e *Engine) Step(j int) error {
	if j < 1 || j >= e.s.Nday {
		return fmt.Errorf("carbon.Step: day %d out of range [1,%d)", j, e.s.Nday)
	}
	e.s.Carry(j)

	nc := e.s.Ncell()
	sz := (nc + e.nwrkrs - 1) / e.nwrkrs
	var g errgroup.Group
	g.SetLimit(e.nwrkrs)
	for lo := 0; lo < nc; lo += sz {
		hi := min(lo+sz, nc)
		d := newDay(e.s, j, lo, hi)
		g.Go(func() error {
			e.pipeline(d)
			return check(d)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if ce := e.lg.Check(zap.DebugLevel, "carbon day"); ce != nil {
		ons := make([]int, 8)
		for c, cp := range e.s.Day(store.ChangePhase, j) {
			if ph := int(e.s.Day(store.NumPhase, j)[c]); cp == 1 && ph >= 0 && ph < 8 {
				ons[ph]++
			}
		}
		ce.Write(zap.Int("day", j), zap.Ints("phaseOnsets", ons))
	}
	return nil
}

// Run steps days [from,to). Day 0 is never stepped: it holds the initial
// state, and its forcing only seeds day 1.
func (e *Engine) Run(from, to int) error {
	if from < 1 {
		from = 1
	}
	if to > e.s.Nday {
		to = e.s.Nday
	}
	for j := from; j < to; j++ {
		if err := e.Step(j); err != nil {
			e.lg.Error("carbon run failed", zap.Int("day", j), zap.Error(err))
			return err
		}
	}
	return nil
}

// pipeline is the fixed daily order of the carbon balance.
func (e *Engine) pipeline(d *day) {
	canopy(d, e.v)
	assimilation(d, e.v, e.m)
	respiration(d, e.v)
	totalBiomass(d, e.v, e.m)
	potentialYield(d, e.v)
	abovegroundBiomass(d, e.v)
	reallocation(d, e.v)
	partition(d, e.v)
	rootBiomass(d)
	for c := range d.rap {
		d.rap[c] = e.rap
	}
	if e.dens {
		densityUp(d, e.rap)
	}
	vegetativeBiomass(d)
	leafArea(d, e.v)
	grainFilling(d)
	if e.dens {
		densityDown(d, e.rap)
	}
	mulch(d, e.m)
	harvest(d, e.v, e.m)
}

// check returns the first non-finite pool or root residual violation.
func check(d *day) error {
	for c := range d.total {
		for _, x := range []float64{d.total[c], d.aero[c], d.root[c], d.stem[c], d.leaf[c], d.rdt[c], d.lai[c], d.sla[c]} {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: day %d cell %d", ErrNonFinite, d.j, d.lo+c)
			}
		}
		if r := d.root[c] - (d.total[c] - d.aero[c]); math.Abs(r) > residualTol*math.Max(1., math.Abs(d.total[c])) {
			return fmt.Errorf("%w: day %d cell %d: root %v, total %v, aboveground %v", ErrResidual, d.j, d.lo+c, d.root[c], d.total[c], d.aero[c])
		}
	}
	return nil
}
