// Package sarra drives the gridded crop carbon balance: a Model couples crop
// parameters to a season of collaborator forcings, runs the carbon engine
// over it and writes, scores, samples or calibrates the result.
package sarra

import (
	"math"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/sarra/forcing"
	"github.com/maseology/sarra/param"
	"go.uber.org/zap"
)

// Model is everything needed to simulate one season.
type Model struct {
	Var    param.Variety
	Itk    param.Management
	Frc    *forcing.Forcing
	GD     *grid.Definition // optional; rasters are written when set
	Obs    []float64        // observed final yield per cell [kg/ha], NaN where unobserved
	Mons   []int            // monitored cell ids
	Prfx   string           // output prefix
	Nwrkrs int
	Lg     *zap.Logger
}

func (m *Model) logger() *zap.Logger {
	if m.Lg == nil {
		return zap.NewNop()
	}
	return m.Lg
}

// HasObservations reports whether any cell carries an observed yield.
func (m *Model) HasObservations() bool {
	for _, o := range m.Obs {
		if !math.IsNaN(o) {
			return true
		}
	}
	return false
}
