package store

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// snapshot is the gob form of a Store; sparse.DenseArray carries unexported
// bookkeeping that gob cannot round-trip.
type snapshot struct {
	Nday, Nrow, Ncol int
	Fields           map[string][]float64
	Roles            map[string]Role
}

// SaveGob writes the store to fp.
func (s *Store) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("store.SaveGob: %w", err)
	}
	defer f.Close()
	ss := snapshot{
		Nday:   s.Nday,
		Nrow:   s.Nrow,
		Ncol:   s.Ncol,
		Fields: make(map[string][]float64, len(s.fields)),
		Roles:  s.roles,
	}
	for k, a := range s.fields {
		ss.Fields[k] = a.Elements
	}
	if err := gob.NewEncoder(f).Encode(ss); err != nil {
		return fmt.Errorf("store.SaveGob: %w", err)
	}
	return nil
}

// LoadGob reads a store saved with SaveGob.
func LoadGob(fp string) (*Store, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("store.LoadGob: %w", err)
	}
	defer f.Close()
	var ss snapshot
	if err := gob.NewDecoder(f).Decode(&ss); err != nil {
		return nil, fmt.Errorf("store.LoadGob: %w", err)
	}
	s, err := New(ss.Nday, ss.Nrow, ss.Ncol)
	if err != nil {
		return nil, err
	}
	for k, v := range ss.Fields {
		a := sparse.ZerosDense(s.Nday, s.Nrow, s.Ncol)
		if len(v) != len(a.Elements) {
			return nil, fmt.Errorf("store.LoadGob: field %q has %d values, want %d", k, len(v), len(a.Elements))
		}
		copy(a.Elements, v)
		s.fields[k] = a
		s.roles[k] = ss.Roles[k]
	}
	return s, nil
}

// CheckAndPrint prints a one-line summary of every field at day j.
func (s *Store) CheckAndPrint(j int) {
	fmt.Printf("Store summary (day %d of %d, %d×%d cells):\n", j, s.Nday, s.Nrow, s.Ncol)
	for _, k := range s.Names() {
		v := s.Day(k, j)
		nnan := 0
		for _, x := range v {
			if math.IsNaN(x) {
				nnan++
			}
		}
		if nnan > 0 {
			fmt.Printf(" %-26s %-6s %d NaN cells\n", k, s.roles[k], nnan)
			continue
		}
		fmt.Printf(" %-26s %-6s min %12.5g  max %12.5g  mean %12.5g\n", k, s.roles[k], floats.Min(v), floats.Max(v), floats.Sum(v)/float64(len(v)))
	}
}
