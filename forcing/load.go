package forcing

import (
	"fmt"

	"github.com/maseology/sarra/store"
)

// parFraction is the photosynthetically active share of global radiation.
const parFraction = .5

// NewStore returns a store sized to the forcing, with every input field
// allocated and filled.
func (frc *Forcing) NewStore() (*store.Store, error) {
	s, err := store.New(len(frc.T), frc.Nrow, frc.Ncol)
	if err != nil {
		return nil, err
	}
	if err := frc.Load(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load allocates the input fields of s and copies the forcing into them,
// deriving par from rg.
func (frc *Forcing) Load(s *store.Store) error {
	if s.Nday != len(frc.T) || s.Ncell() != frc.Ncell() {
		return fmt.Errorf("forcing.Load: store is %d days × %d cells, forcing is %d × %d", s.Nday, s.Ncell(), len(frc.T), frc.Ncell())
	}
	for _, p := range frc.fields() {
		s.Add(p.name, store.Input, 0.)
		for j, v := range *p.v {
			copy(s.Day(p.name, j), v)
		}
	}
	s.Add(store.Par, store.Input, 0.)
	for j, v := range frc.Rg {
		d := s.Day(store.Par, j)
		for c, rg := range v {
			d[c] = parFraction * rg
		}
	}
	return nil
}
