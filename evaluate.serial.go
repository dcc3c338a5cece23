package sarra

import (
	"github.com/gosuri/uiprogress"
	"github.com/maseology/sarra/param"
	"github.com/maseology/sarra/store"
)

// EvaluateSerial simulates the season on one worker, showing a progress bar.
func (m *Model) EvaluateSerial(v *param.Variety) (*store.Store, error) {
	s, e, err := m.engine(v, 1)
	if err != nil {
		return nil, err
	}

	uiprogress.Start()
	timestep := make(chan string)
	bar := uiprogress.AddBar(s.Nday - 1).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return <-timestep
	})
	defer func() {
		close(timestep)
		uiprogress.Stop()
	}()

	for j := 1; j < s.Nday; j++ {
		timestep <- m.Frc.T[j].Format("2006-01-02")
		if err := e.Step(j); err != nil {
			return nil, err
		}
		bar.Incr()
	}
	return s, nil
}
