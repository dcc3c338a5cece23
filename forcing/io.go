package forcing

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
)

func (frc *Forcing) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf("forcing.SaveGob: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(frc); err != nil {
		return fmt.Errorf("forcing.SaveGob: %w", err)
	}
	return nil
}

func LoadGob(fp string) (*Forcing, error) {
	var frc Forcing
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.LoadGob: %w", err)
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&frc); err != nil {
		return nil, fmt.Errorf("forcing.LoadGob: %w", err)
	}
	return &frc, nil
}

// ToBil writes season-total transpiration and global radiation, and mean
// temperature, as rasters.
func (frc *Forcing) ToBil(gd *grid.Definition, chkdirprfx string) error {
	println(" > printing forcing rasters..")
	if gd.Ncells() != frc.Ncell() {
		return fmt.Errorf("forcing.ToBil: grid definition has %d cells, forcing has %d", gd.Ncells(), frc.Ncell())
	}

	str, srg, stp := gd.NullArray(-9999.), gd.NullArray(-9999.), gd.NullArray(-9999.)
	for c := 0; c < frc.Ncell(); c++ {
		str[c], srg[c], stp[c] = 0., 0., 0.
		for j := range frc.T {
			str[c] += frc.Tr[j][c]
			srg[c] += frc.Rg[j][c]
			stp[c] += frc.TpMoy[j][c]
		}
		stp[c] /= float64(len(frc.T))
	}

	for fp, v := range map[string][]float64{
		chkdirprfx + "forcing.tr.bil":    str, // total transpiration (mm)
		chkdirprfx + "forcing.rg.bil":    srg, // total global radiation (MJ/m²)
		chkdirprfx + "forcing.tpmoy.bil": stp, // mean temperature (°C)
	} {
		if err := writeBil32(gd, fp, v); err != nil {
			return err
		}
	}
	return nil
}

func writeBil32(gd *grid.Definition, fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return err
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return err
	}
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	return nil
}
