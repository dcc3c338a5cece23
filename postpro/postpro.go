// Package postpro reads back the float32 output dumps of a season and maps
// per-cell season statistics.
package postpro

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"gonum.org/v1/gonum/floats"
)

// ReadBin reads a day-major float32 dump of ncell cells, returned [day][cell].
func ReadBin(fp string, ncell int) ([][]float64, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("postpro.ReadBin: %v", err)
	}
	if ncell <= 0 || len(b)%(4*ncell) != 0 {
		return nil, fmt.Errorf("postpro.ReadBin: %s holds %d bytes, not a whole number of days of %d cells", fp, len(b), ncell)
	}
	f32 := make([]float32, len(b)/4)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, f32); err != nil {
		return nil, fmt.Errorf("postpro.ReadBin: %v", err)
	}
	nday := len(f32) / ncell
	o := make([][]float64, nday)
	for j := range o {
		o[j] = make([]float64, ncell)
		for c := range o[j] {
			o[j][c] = float64(f32[j*ncell+c])
		}
	}
	return o, nil
}

// Peak returns the season maximum of every cell and the day it is first reached.
func Peak(a [][]float64) (v []float64, day []int) {
	if len(a) == 0 {
		return nil, nil
	}
	ncell := len(a[0])
	v, day = make([]float64, ncell), make([]int, ncell)
	col := make([]float64, len(a))
	for c := 0; c < ncell; c++ {
		for j := range a {
			col[j] = a[j][c]
		}
		day[c] = floats.MaxIdx(col)
		v[c] = col[day[c]]
	}
	return
}

// ToBil writes v as a float32 raster with its header.
func ToBil(gd *grid.Definition, fp string, v []float64) error {
	if gd.Ncells() != len(v) {
		return fmt.Errorf("postpro.ToBil: grid definition has %d cells, values %d", gd.Ncells(), len(v))
	}
	f32 := make([]float32, len(v))
	for i, x := range v {
		f32[i] = float32(x)
	}
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("postpro.ToBil: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("postpro.ToBil: %v", err)
	}
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	return nil
}

// PeakMaps reads a season dump over gd and writes rasters of each cell's
// peak value and peak day beside it.
func PeakMaps(gd *grid.Definition, binfp string) error {
	a, err := ReadBin(binfp, gd.Ncells())
	if err != nil {
		return err
	}
	v, day := Peak(a)
	fday := make([]float64, len(day))
	for c, d := range day {
		fday[c] = float64(d)
	}
	prfx := mmio.RemoveExtension(binfp)
	if err := ToBil(gd, prfx+".peak.bil", v); err != nil {
		return err
	}
	return ToBil(gd, prfx+".peakday.bil", fday)
}
