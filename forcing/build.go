package forcing

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/maseology/mmio"
)

// ReadCSV builds a forcing from a long-format csv with the header
//
//	date,cell,numPhase,changePhase,sdj,ddj,seuilTempPhaseSuivante,seuilTempPhasePrec,tr,trPot,tpMoy,rg
//
// where cell is the row-major cell index. Every cell must be given for every
// day between the first and last date.
func ReadCSV(fp string, nrow, ncol int) (*Forcing, error) {
	tt := time.Now()
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.ReadCSV: %v", err)
	}
	defer f.Close()

	recs := [][]string{}
	for rec := range mmio.LoadCSV(io.Reader(f)) {
		if len(rec) > 0 && rec[0] == "date" {
			continue // header
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("forcing.ReadCSV: %s holds no records", fp)
	}

	type row struct {
		dt  time.Time
		cid int
		v   []float64
	}
	ncol0 := len((&Forcing{}).fields()) + 2
	rows := make([]row, 0, len(recs))
	var dtb, dte time.Time
	for i, rec := range recs {
		if len(rec) != ncol0 {
			return nil, fmt.Errorf("forcing.ReadCSV: line %d has %d columns, want %d", i+2, len(rec), ncol0)
		}
		dt, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return nil, fmt.Errorf("forcing.ReadCSV: line %d: %v", i+2, err)
		}
		cid, err := strconv.Atoi(rec[1])
		if err != nil || cid < 0 || cid >= nrow*ncol {
			return nil, fmt.Errorf("forcing.ReadCSV: line %d: invalid cell %q", i+2, rec[1])
		}
		v := make([]float64, ncol0-2)
		for k := range v {
			if v[k], err = strconv.ParseFloat(rec[k+2], 64); err != nil {
				return nil, fmt.Errorf("forcing.ReadCSV: line %d: %v", i+2, err)
			}
		}
		if i == 0 || dt.Before(dtb) {
			dtb = dt
		}
		if i == 0 || dt.After(dte) {
			dte = dt
		}
		rows = append(rows, row{dt, cid, v})
	}

	nts := int(dte.Sub(dtb).Hours()/24.) + 1
	frc := New(dtb, nts, nrow, ncol)
	flds := frc.fields()
	seen := make([]bool, nts*frc.Ncell())
	for _, r := range rows {
		j := int(r.dt.Sub(dtb).Hours() / 24.)
		seen[j*frc.Ncell()+r.cid] = true
		for k, p := range flds {
			(*p.v)[j][r.cid] = r.v[k]
		}
	}
	cmiss := 0
	for _, b := range seen {
		if !b {
			cmiss++
		}
	}
	if cmiss > 0 {
		return nil, fmt.Errorf("forcing.ReadCSV: %d missing day-cell records between %s and %s", cmiss, dtb.Format("2006-01-02"), dte.Format("2006-01-02"))
	}

	fmt.Printf(" Forcing loaded: %v to %v in %d steps, %d cells - %v\n", frc.T[0].Format("2006-01-02"), frc.T[nts-1].Format("2006-01-02"), nts, frc.Ncell(), time.Since(tt))
	return frc, nil
}
