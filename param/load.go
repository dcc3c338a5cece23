package param

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every parameter validation failure.
var ErrInvalid = errors.New("invalid parameter")

// LoadVariety reads a variety YAML file. Keys absent from the file keep the
// values of DefaultVariety; densOpti may be given as .nan.
func LoadVariety(fp string) (*Variety, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("param.LoadVariety: %w", err)
	}
	v := DefaultVariety()
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("param.LoadVariety %s: %w", fp, err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("param.LoadVariety %s: %w", fp, err)
	}
	return &v, nil
}

// LoadManagement reads a management YAML file.
func LoadManagement(fp string) (*Management, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("param.LoadManagement: %w", err)
	}
	m := DefaultManagement()
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("param.LoadManagement %s: %w", fp, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("param.LoadManagement %s: %w", fp, err)
	}
	return &m, nil
}

// Save writes v as YAML.
func (v *Variety) Save(fp string) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0644)
}

func invalid(name string, x float64, why string) error {
	return fmt.Errorf("%w: %s = %v: %s", ErrInvalid, name, x, why)
}

// Validate checks the variety parameters, returning every problem found.
func (v *Variety) Validate() error {
	var errs []error
	pos := func(name string, x float64) {
		if !(x > 0.) {
			errs = append(errs, invalid(name, x, "must be positive"))
		}
	}
	frac := func(name string, x float64) {
		if !(x >= 0. && x <= 1.) {
			errs = append(errs, invalid(name, x, "must be within [0,1]"))
		}
	}
	pos("SDJMatu1", v.SDJMatu1)
	pos("slaMin", v.SlaMin)
	pos("slaMax", v.SlaMax)
	if v.SlaMin > v.SlaMax {
		errs = append(errs, invalid("slaMin", v.SlaMin, fmt.Sprintf("exceeds slaMax (%v)", v.SlaMax)))
	}
	if v.Kdf < 0. {
		errs = append(errs, invalid("kdf", v.Kdf, "must not be negative"))
	}
	if v.FeuilAeroBase == .1 {
		errs = append(errs, invalid("feuilAeroBase", v.FeuilAeroBase, "leaf allometry base bM = feuilAeroBase-0.1 is zero"))
	}
	frac("pcReallocFeuille", v.PcReallocFeuille)
	frac("slaPente", v.SlaPente)
	frac("txRecolte", v.TxRecolte)
	if v.HasDensOpti() {
		pos("densOpti", v.DensOpti)
		pos("densiteP", v.DensiteP)
		r := (1. - v.DensiteA) / v.DensiteP
		if !(r > 0.) || r == 1. {
			errs = append(errs, invalid("densiteA", v.DensiteA, "(1-densiteA)/densiteP must be positive and differ from 1"))
		}
	}
	for name, x := range map[string]float64{"txConversion": v.TxConversion, "kRespMaint": v.KRespMaint, "txRealloc": v.TxRealloc} {
		if math.IsNaN(x) || x < 0. {
			errs = append(errs, invalid(name, x, "must be a non-negative number"))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the management parameters.
func (m *Management) Validate() error {
	var errs []error
	if !(m.Densite > 0.) {
		errs = append(errs, invalid("densite", m.Densite, "must be positive"))
	}
	for name, x := range map[string]float64{"NbUBT": m.NbUBT, "KNUp": m.KNUp, "KNLit": m.KNLit, "KI": m.KI, "KT": m.KT} {
		if math.IsNaN(x) || x < 0. {
			errs = append(errs, invalid(name, x, "must be a non-negative number"))
		}
	}
	if !(m.TxaTerre >= 0. && m.TxaTerre <= 1.) {
		errs = append(errs, invalid("txaTerre", m.TxaTerre, "must be within [0,1]"))
	}
	return errors.Join(errs...)
}
