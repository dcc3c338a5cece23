package carbon

import (
	"fmt"

	"github.com/maseology/sarra/param"
	"github.com/maseology/sarra/store"
)

// Allocate adds every engine-owned field that s lacks, zero filled, and the
// full-cycle thermal time sommeDegresJourMaximale. Fields already present,
// e.g. from a restarted store, are kept.
func Allocate(s *store.Store, v *param.Variety) error {
	for _, k := range store.Inputs {
		if !s.Has(k) {
			return fmt.Errorf("carbon.Allocate: input %q: %w", k, store.ErrUnknownField)
		}
	}
	for _, k := range store.States {
		if s.Has(k) {
			continue
		}
		switch k {
		case store.SommeDegresJourMaximale:
			s.Add(k, store.State, v.SommeDegresJourMaximale())
		case store.RapDensite:
			s.Add(k, store.State, 1.)
		default:
			s.Add(k, store.State, 0.)
		}
	}
	return nil
}
