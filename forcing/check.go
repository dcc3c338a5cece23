package forcing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrCoincidentThresholds is returned when a cell in phase 5 or 6 has equal
// bracketing thermal-time thresholds, leaving its progress ratio undefined.
var ErrCoincidentThresholds = errors.New("coincident phase thresholds")

// Validate checks dimensions and value ranges. Every problem is reported.
func (frc *Forcing) Validate() error {
	nts, nc := len(frc.T), frc.Ncell()
	if nts == 0 || nc == 0 {
		return fmt.Errorf("forcing.Validate: empty forcing (%d days, %d cells)", nts, nc)
	}
	for _, p := range frc.fields() {
		if len(*p.v) != nts {
			return fmt.Errorf("forcing.Validate: %s has %d days, want %d", p.name, len(*p.v), nts)
		}
		for j, v := range *p.v {
			if len(v) != nc {
				return fmt.Errorf("forcing.Validate: %s day %d has %d cells, want %d", p.name, j, len(v), nc)
			}
		}
	}

	var errs []error
	ncoinc := 0
	for j := range frc.T {
		for c := 0; c < nc; c++ {
			ph := frc.NumPhase[j][c]
			if ph != math.Trunc(ph) || ph < 0 || ph > 7 {
				errs = append(errs, fmt.Errorf("day %d cell %d: numPhase %v not an integer within [0,7]", j, c, ph))
			}
			if cp := frc.ChangePhase[j][c]; cp != 0 && cp != 1 {
				errs = append(errs, fmt.Errorf("day %d cell %d: changePhase %v not 0 or 1", j, c, cp))
			} else if cp == 1 && j == 0 {
				errs = append(errs, fmt.Errorf("day 0 cell %d: phase change on the initial day is never stepped", c))
			}
			if frc.TrPot[j][c] < 0 || frc.Tr[j][c] < 0 {
				errs = append(errs, fmt.Errorf("day %d cell %d: negative transpiration", j, c))
			}
			if (ph == 5 || ph == 6) && frc.SeuilSuivante[j][c] == frc.SeuilPrec[j][c] {
				if ncoinc == 0 {
					errs = append(errs, fmt.Errorf("%w: first at day %d cell %d (threshold %v)", ErrCoincidentThresholds, j, c, frc.SeuilPrec[j][c]))
				}
				ncoinc++
			}
		}
	}
	if ncoinc > 1 {
		errs = append(errs, fmt.Errorf("%w: %d day-cells in total", ErrCoincidentThresholds, ncoinc))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("forcing.Validate: %w", err)
	}
	return nil
}

func (frc *Forcing) CheckAndPrint() {
	fmt.Println("Forcing summary:")
	nt := len(frc.T)
	fmt.Printf(" %v to %v, daily (%d timesteps)\n", frc.T[0].Format("2006-01-02"), frc.T[nt-1].Format("2006-01-02"), nt)
	fmt.Printf(" %d×%d grid, %d cells\n", frc.Nrow, frc.Ncol, frc.Ncell())

	for _, p := range frc.fields() {
		mn, mx, s := math.Inf(1), math.Inf(-1), 0.
		for _, v := range *p.v {
			mn = math.Min(mn, floats.Min(v))
			mx = math.Max(mx, floats.Max(v))
			s += floats.Sum(v)
		}
		fmt.Printf(" %-24s min %10.4g  max %10.4g  mean %10.4g\n", p.name, mn, mx, s/float64(nt*frc.Ncell()))
	}

	// phase onsets across the grid
	ons := make([]int, 8)
	for j := range frc.T {
		for c, cp := range frc.ChangePhase[j] {
			if ph := int(frc.NumPhase[j][c]); cp == 1 && ph >= 0 && ph < 8 {
				ons[ph]++
			}
		}
	}
	fmt.Printf(" phase onsets (1..7): %v\n", ons[1:])
}
