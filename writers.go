package sarra

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/maseology/sarra/store"
	"go.uber.org/zap"
)

// write saves the outputs of s under the model's prefix: a float32 .bin of
// every output field (day-major), final-day rasters when a grid is defined
// and a csv per monitored cell.
func (m *Model) write(s *store.Store) error {
	tt := mmio.NewTimer()
	if err := saveToBins(s, m.Prfx); err != nil {
		return err
	}
	if m.GD != nil {
		if err := saveToBils(m.GD, s, m.Prfx); err != nil {
			return err
		}
	}
	if len(m.Mons) > 0 {
		if err := m.writeMons(s); err != nil {
			return err
		}
	}
	m.logger().Debug("outputs written", zap.String("prfx", m.Prfx))
	tt.Lap("outputs written")
	return nil
}

func saveToBins(s *store.Store, outdirprfx string) error {
	for _, k := range store.Outputs {
		a, err := s.Field(k)
		if err != nil {
			return err
		}
		if err := writeFloats(outdirprfx+k+".bin", a.Elements); err != nil {
			return err
		}
	}
	return nil
}

// saveToBils writes the final day of every output field as a raster.
func saveToBils(gd *grid.Definition, s *store.Store, outdirprfx string) error {
	if gd.Ncells() != s.Ncell() {
		return fmt.Errorf("saveToBils: grid definition has %d cells, store has %d", gd.Ncells(), s.Ncell())
	}
	for _, k := range store.Outputs {
		a := gd.NullArray(-9999.)
		copy(a, s.Day(k, s.Nday-1))
		fp := outdirprfx + k + ".bil"
		if err := writeFloats(fp, a); err != nil {
			return err
		}
		gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	}
	return nil
}

// writeMons writes the daily outputs of each monitored cell.
func (m *Model) writeMons(s *store.Store) error {
	head := "date"
	for _, k := range store.Outputs {
		head += "," + k
	}
	for _, c := range m.Mons {
		if err := func() error {
			csvw := mmio.NewCSVwriter(fmt.Sprintf("%smon.%d.csv", m.Prfx, c))
			defer csvw.Close()
			if err := csvw.WriteHead(head); err != nil {
				return err
			}
			for j := 0; j < s.Nday; j++ {
				ln := make([]interface{}, 0, len(store.Outputs)+1)
				ln = append(ln, m.Frc.T[j].Format("2006-01-02"))
				for _, k := range store.Outputs {
					ln = append(ln, s.Day(k, j)[c])
				}
				csvw.WriteLine(ln...)
			}
			return nil
		}(); err != nil {
			return fmt.Errorf("writeMons: cell %d: %v", c, err)
		}
	}
	return nil
}

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}
