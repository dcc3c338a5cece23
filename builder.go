package sarra

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/maseology/sarra/forcing"
	"github.com/maseology/sarra/param"
	"go.uber.org/zap"
)

// Config holds the file paths of a model, as given by its control file.
type Config struct {
	Prfx   string // output prefix
	VarFP  string // variety parameters (yaml)
	ItkFP  string // crop management (yaml)
	FrcFP  string // forcing, .gob or long-format .csv
	GdefFP string // grid definition, optional
	ObsFP  string // observed final yields (cell,rdt), optional
	MonFP  string // monitored cell ids, optional
	Nrow   int    // grid shape of a csv forcing when no grid definition is given
	Ncol   int
	Nwrkrs int
}

// ReadConfig reads a control file of keys prfx, varfp, itkfp, frcfp and,
// optionally, gdeffp, obsfp, monfp, nrow, ncol and nwrkrs.
func ReadConfig(controlFP string) (Config, error) {
	ins := mmio.NewInstruct(controlFP)
	get := func(k string) string {
		if v, ok := ins.Param[k]; ok && len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}
	cfg := Config{
		Prfx:   get("prfx"),
		VarFP:  get("varfp"),
		ItkFP:  get("itkfp"),
		FrcFP:  get("frcfp"),
		GdefFP: get("gdeffp"),
		ObsFP:  get("obsfp"),
		MonFP:  get("monfp"),
		Nrow:   1,
	}
	for k, p := range map[string]*int{"nrow": &cfg.Nrow, "ncol": &cfg.Ncol, "nwrkrs": &cfg.Nwrkrs} {
		if s := get(k); s != "" {
			i, err := strconv.Atoi(s)
			if err != nil {
				return cfg, fmt.Errorf("ReadConfig: %s: %v", k, err)
			}
			*p = i
		}
	}
	if cfg.FrcFP == "" {
		return cfg, fmt.Errorf("ReadConfig: %s gives no forcing (frcfp)", controlFP)
	}
	return cfg, nil
}

// Build reads a control file and builds its model.
func Build(controlFP string, lg *zap.Logger) (*Model, error) {
	cfg, err := ReadConfig(controlFP)
	if err != nil {
		return nil, err
	}
	return cfg.Build(lg)
}

// Build loads the model's parameters, forcing, grid and observations. A
// csv forcing is converted once and cached as a gob beside the output prefix.
func (cfg Config) Build(lg *zap.Logger) (*Model, error) {
	if lg == nil {
		lg = zap.NewNop()
	}
	tt := time.Now()
	m := &Model{Prfx: cfg.Prfx, Nwrkrs: cfg.Nwrkrs, Lg: lg}

	// parameters; absent files leave the defaults
	m.Var, m.Itk = param.DefaultVariety(), param.DefaultManagement()
	if cfg.VarFP != "" {
		v, err := param.LoadVariety(cfg.VarFP)
		if err != nil {
			return nil, err
		}
		m.Var = *v
	}
	if cfg.ItkFP != "" {
		itk, err := param.LoadManagement(cfg.ItkFP)
		if err != nil {
			return nil, err
		}
		m.Itk = *itk
	}

	nrow, ncol := cfg.Nrow, cfg.Ncol
	if cfg.GdefFP != "" {
		gd, err := grid.ReadGDEF(cfg.GdefFP, true)
		if err != nil {
			return nil, fmt.Errorf("Build: %v", err)
		}
		m.GD, nrow, ncol = gd, gd.Nrow, gd.Ncol
	}

	// forcing
	frc, err := func(fp string) (*forcing.Forcing, error) {
		if strings.ToLower(filepath.Ext(fp)) == ".gob" {
			return forcing.LoadGob(fp)
		}
		gobfp := cfg.Prfx + "forcing.gob"
		if _, ok := mmio.FileExists(gobfp); ok && cfg.Prfx != "" {
			lg.Info("loading cached forcing", zap.String("fp", gobfp))
			return forcing.LoadGob(gobfp)
		}
		frc, err := forcing.ReadCSV(fp, nrow, ncol)
		if err != nil {
			return nil, err
		}
		if cfg.Prfx != "" {
			if err := frc.SaveGob(gobfp); err != nil {
				return nil, err
			}
		}
		return frc, nil
	}(cfg.FrcFP)
	if err != nil {
		return nil, err
	}
	if err := frc.Validate(); err != nil {
		return nil, err
	}
	if m.GD != nil && m.GD.Ncells() != frc.Ncell() {
		return nil, fmt.Errorf("Build: grid definition has %d cells, forcing has %d", m.GD.Ncells(), frc.Ncell())
	}
	m.Frc = frc

	if cfg.ObsFP != "" {
		if m.Obs, err = readObservations(cfg.ObsFP, frc.Ncell()); err != nil {
			return nil, err
		}
	}
	if cfg.MonFP != "" {
		if m.Mons, err = mmio.ReadInts(cfg.MonFP); err != nil {
			return nil, fmt.Errorf("Build: monitors: %v", err)
		}
		for _, c := range m.Mons {
			if c < 0 || c >= frc.Ncell() {
				return nil, fmt.Errorf("Build: monitor cell %d outside [0,%d)", c, frc.Ncell())
			}
		}
	}

	nobs := 0
	for _, o := range m.Obs {
		if !math.IsNaN(o) {
			nobs++
		}
	}
	lg.Info("model built",
		zap.Int("days", len(frc.T)),
		zap.Int("cells", frc.Ncell()),
		zap.Int("observed", nobs),
		zap.Int("monitors", len(m.Mons)),
		zap.Bool("grid", m.GD != nil),
		zap.Duration("elapsed", time.Since(tt)),
	)
	return m, nil
}
