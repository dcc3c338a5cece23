// Package carbon steps the daily crop carbon balance over a grid: radiation
// interception, assimilation, maintenance respiration, biomass partitioning,
// yield formation, leaf area, density correction and residue decay.
//
// Every equation is elementwise. A day is evaluated in parallel over chunks
// of cells; days are evaluated strictly in sequence.
package carbon

import "errors"

var (
	// ErrNonFinite is returned when a biomass pool becomes NaN or infinite.
	ErrNonFinite = errors.New("non-finite carbon pool")
	// ErrResidual is returned when root biomass no longer equals total less aboveground biomass.
	ErrResidual = errors.New("root biomass residual violated")
)

const (
	kcpMin        = .3   // canopy crop-coefficient floor
	aeroFracMax   = .9   // aboveground share of total biomass, phases 2-4
	biomFloor     = 1e-8 // leaf and stem floor under loss
	leafReserve   = 30.  // leaf biomass never reallocated [kg/ha]
	respYieldFrac = .15  // dRdtPot floor, as a fraction of respMaint
	residualTol   = 1e-6 // relative tolerance of the root residual check
	assimScale    = 10.  // MJ/m² to kg/ha conversion of intercepted par
	q10           = 2.   // maintenance respiration temperature response
	tempStep      = 10.  // [°C]
)
