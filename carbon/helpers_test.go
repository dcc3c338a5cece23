package carbon

import (
	"testing"

	"github.com/maseology/sarra/param"
	"github.com/maseology/sarra/store"
	"github.com/stretchr/testify/require"
)

func newInputStore(t *testing.T, nday, ncell int) *store.Store {
	t.Helper()
	s, err := store.New(nday, 1, ncell)
	require.NoError(t, err)
	for _, k := range store.Inputs {
		s.Add(k, store.Input, 0.)
	}
	return s
}

// oneCell returns the view of day 1 of a single-cell store.
func oneCell(t *testing.T, v *param.Variety) (*store.Store, *day) {
	t.Helper()
	s := newInputStore(t, 2, 1)
	require.NoError(t, Allocate(s, v))
	return s, newDay(s, 1, 0, 1)
}

// phase onset days, relative to a cell's offset
var onsets = []int{2, 5, 20, 28, 35, 48, 55} // phases 1..7

// season writes a full crop cycle into the inputs of s, cell c starting c
// days after cell 0. Phases past last are never reached.
func season(s *store.Store, last int) {
	const ddj = 20.
	nc := s.Ncell()
	for c := 0; c < nc; c++ {
		sdj := 0.
		for j := 0; j < s.Nday; j++ {
			ph, start, next := 0, 0, s.Nday+c
			for k, o := range onsets {
				if k+1 > last {
					break
				}
				if j >= o+c {
					ph, start = k+1, o+c
					if k+1 < len(onsets) {
						next = onsets[k+1] + c
					}
				}
			}
			if ph >= 1 {
				sdj += ddj
			}
			s.Day(store.NumPhase, j)[c] = float64(ph)
			if ph > 0 && j == start {
				s.Day(store.ChangePhase, j)[c] = 1.
			}
			s.Day(store.Sdj, j)[c] = sdj
			s.Day(store.Ddj, j)[c] = ddj
			s.Day(store.SeuilTempPhasePrec, j)[c] = sdj - ddj*float64(j-start)
			s.Day(store.SeuilTempPhaseSuivante, j)[c] = sdj + ddj*float64(next-j)
			s.Day(store.Tr, j)[c] = 3.
			s.Day(store.TrPot, j)[c] = 4.
			s.Day(store.TpMoy, j)[c] = 28.
			s.Day(store.Rg, j)[c] = 20.
			s.Day(store.Par, j)[c] = 10.
		}
	}
}
