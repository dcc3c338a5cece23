// Package forcing holds the daily per-cell inputs the carbon engine consumes
// from its collaborators: phenology, hydrology and weather.
package forcing

import (
	"time"

	"github.com/maseology/sarra/store"
)

// Forcing is indexed [dateID][cellID], cells in row-major order.
type Forcing struct {
	T          []time.Time // [date ID]
	Nrow, Ncol int

	// phenology
	NumPhase, ChangePhase    [][]float64
	Sdj, Ddj                 [][]float64 // thermal time: cumulated, daily [°C.j]
	SeuilSuivante, SeuilPrec [][]float64 // thresholds bracketing the current phase

	Tr, TrPot [][]float64 // actual and potential transpiration [mm]
	TpMoy, Rg [][]float64 // mean temperature [°C], global radiation [MJ/m²/d]
}

// New returns a forcing of nts days over an nrow×ncol grid, zero filled.
func New(t0 time.Time, nts, nrow, ncol int) *Forcing {
	frc := &Forcing{
		T:    make([]time.Time, nts),
		Nrow: nrow,
		Ncol: ncol,
	}
	for j := range frc.T {
		frc.T[j] = t0.AddDate(0, 0, j)
	}
	for _, p := range frc.fields() {
		*p.v = make([][]float64, nts)
		for j := range *p.v {
			(*p.v)[j] = make([]float64, nrow*ncol)
		}
	}
	return frc
}

// Ncell returns the number of grid cells.
func (frc *Forcing) Ncell() int { return frc.Nrow * frc.Ncol }

type named struct {
	name string
	v    *[][]float64
}

// fields lists the forcing series in CSV column order.
func (frc *Forcing) fields() []named {
	return []named{
		{store.NumPhase, &frc.NumPhase},
		{store.ChangePhase, &frc.ChangePhase},
		{store.Sdj, &frc.Sdj},
		{store.Ddj, &frc.Ddj},
		{store.SeuilTempPhaseSuivante, &frc.SeuilSuivante},
		{store.SeuilTempPhasePrec, &frc.SeuilPrec},
		{store.Tr, &frc.Tr},
		{store.TrPot, &frc.TrPot},
		{store.TpMoy, &frc.TpMoy},
		{store.Rg, &frc.Rg},
	}
}
