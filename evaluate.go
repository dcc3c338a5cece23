package sarra

import (
	"github.com/maseology/sarra/carbon"
	"github.com/maseology/sarra/param"
	"github.com/maseology/sarra/store"
	"go.uber.org/zap"
)

// Evaluate simulates the season with variety v, stepping the cells of each
// day over nwrkrs workers (< 1 uses every CPU).
func (m *Model) Evaluate(v *param.Variety, nwrkrs int) (*store.Store, error) {
	s, e, err := m.engine(v, nwrkrs)
	if err != nil {
		return nil, err
	}
	if err := e.Run(1, s.Nday); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Model) engine(v *param.Variety, nwrkrs int) (*store.Store, *carbon.Engine, error) {
	s, err := m.Frc.NewStore()
	if err != nil {
		return nil, nil, err
	}
	e, err := carbon.New(s, v, &m.Itk, nwrkrs, m.logger())
	if err != nil {
		return nil, nil, err
	}
	return s, e, nil
}

// Run simulates the season with the model's own variety and writes the
// outputs to the model's prefix.
func (m *Model) Run(progress bool) (*store.Store, Results, error) {
	lg := m.logger()
	lg.Info("simulation start", zap.Int("days", len(m.Frc.T)), zap.Int("cells", m.Frc.Ncell()))

	var s *store.Store
	var err error
	if progress {
		s, err = m.EvaluateSerial(&m.Var)
	} else {
		s, err = m.Evaluate(&m.Var, m.Nwrkrs)
	}
	if err != nil {
		return nil, Results{}, err
	}

	r := m.Score(s)
	if m.Prfx != "" {
		if err := m.write(s); err != nil {
			return s, r, err
		}
	}
	lg.Info("simulation complete",
		zap.Int("observed", r.N),
		zap.Float64("rmse", r.RMSE),
		zap.Float64("bias", r.Bias),
		zap.Float64("nse", r.NSE),
		zap.Float64("meanRdt", r.MeanRdt),
	)
	return s, r, nil
}
