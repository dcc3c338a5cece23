package sarra

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// readObservations reads observed final yields from a csv of cell,rdt
// records. Cells without a record are NaN.
func readObservations(fp string, ncell int) ([]float64, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("readObservations: %v", err)
	}
	defer f.Close()

	obs := make([]float64, ncell)
	for i := range obs {
		obs[i] = math.NaN()
	}
	for rec := range mmio.LoadCSV(io.Reader(f)) {
		if len(rec) < 2 || rec[0] == "cell" {
			continue
		}
		c, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("readObservations: cell %q: %v", rec[0], err)
		}
		if c < 0 || c >= ncell {
			return nil, fmt.Errorf("readObservations: cell %d outside [0,%d)", c, ncell)
		}
		if obs[c], err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("readObservations: cell %d: %v", c, err)
		}
	}
	return obs, nil
}
