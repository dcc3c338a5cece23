// Package store holds the simulation grid: named (day × row × column) fields.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ctessum/sparse"
)

// ErrUnknownField is returned when a field name has not been allocated.
var ErrUnknownField = errors.New("unknown field")

// Store owns every grid field of a simulation. Day is the slowest-varying
// dimension, so a single day of a field is a contiguous slice of length Ncell.
type Store struct {
	Nday, Nrow, Ncol int
	fields           map[string]*sparse.DenseArray
	roles            map[string]Role
}

// New returns an empty store for the given grid extent.
func New(nday, nrow, ncol int) (*Store, error) {
	if nday < 1 || nrow < 1 || ncol < 1 {
		return nil, fmt.Errorf("store.New: invalid extent %d×%d×%d", nday, nrow, ncol)
	}
	return &Store{
		Nday:   nday,
		Nrow:   nrow,
		Ncol:   ncol,
		fields: make(map[string]*sparse.DenseArray),
		roles:  make(map[string]Role),
	}, nil
}

// Ncell returns the number of cells in one day slice.
func (s *Store) Ncell() int { return s.Nrow * s.Ncol }

// Add allocates a field filled with v. Re-adding an existing field resets it.
func (s *Store) Add(name string, r Role, v float64) {
	a := sparse.ZerosDense(s.Nday, s.Nrow, s.Ncol)
	if v != 0. {
		for i := range a.Elements {
			a.Elements[i] = v
		}
	}
	s.fields[name] = a
	s.roles[name] = r
}

// Has reports whether the field has been allocated.
func (s *Store) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Role returns the role of an allocated field.
func (s *Store) Role(name string) (Role, error) {
	r, ok := s.roles[name]
	if !ok {
		return 0, fmt.Errorf("store.Role %q: %w", name, ErrUnknownField)
	}
	return r, nil
}

// Names returns the allocated field names, sorted.
func (s *Store) Names() []string {
	o := make([]string, 0, len(s.fields))
	for k := range s.fields {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

// Field returns the underlying array of a field.
func (s *Store) Field(name string) (*sparse.DenseArray, error) {
	a, ok := s.fields[name]
	if !ok {
		return nil, fmt.Errorf("store.Field %q: %w", name, ErrUnknownField)
	}
	return a, nil
}

// Day returns the slice of field name at day j. The slice aliases the store.
// Asking for an unallocated field is a programming error and panics.
func (s *Store) Day(name string, j int) []float64 {
	a, ok := s.fields[name]
	if !ok {
		panic(fmt.Sprintf("store.Day: %q: %v", name, ErrUnknownField))
	}
	n := s.Ncell()
	return a.Elements[j*n : (j+1)*n]
}

// Get returns a single value.
func (s *Store) Get(name string, j, r, c int) float64 {
	return s.Day(name, j)[r*s.Ncol+c]
}

// Fill writes v into day j and, as the carry-forward default, every later day.
func (s *Store) Fill(name string, j int, v []float64) error {
	if _, ok := s.fields[name]; !ok {
		return fmt.Errorf("store.Fill %q: %w", name, ErrUnknownField)
	}
	if len(v) != s.Ncell() {
		return fmt.Errorf("store.Fill %q: got %d values, want %d", name, len(v), s.Ncell())
	}
	if j < 0 || j >= s.Nday {
		return fmt.Errorf("store.Fill %q: day %d out of range [0,%d)", name, j, s.Nday)
	}
	for k := j; k < s.Nday; k++ {
		copy(s.Day(name, k), v)
	}
	return nil
}

// Carry copies day j-1 into day j for every state field, so that a field
// untouched by day j's pipeline reads as its most recent value.
func (s *Store) Carry(j int) {
	if j < 1 || j >= s.Nday {
		return
	}
	for name, r := range s.roles {
		if r != State {
			continue
		}
		copy(s.Day(name, j), s.Day(name, j-1))
	}
}
