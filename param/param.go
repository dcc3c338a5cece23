// Package param holds the read-only variety and crop-management parameters.
package param

import "math"

// Variety holds cultivar parameters.
type Variety struct {
	// thermal-time thresholds [°C.j]
	SDJLevee float64 `yaml:"SDJLevee"`
	SDJBVP   float64 `yaml:"SDJBVP"`
	SDJRPR   float64 `yaml:"SDJRPR"`
	SDJMatu1 float64 `yaml:"SDJMatu1"`
	SDJMatu2 float64 `yaml:"SDJMatu2"`

	// canopy
	Kdf   float64 `yaml:"kdf"`   // light extinction coefficient
	KcMax float64 `yaml:"kcMax"` // maximum crop coefficient

	// conversion
	TxConversion float64 `yaml:"txConversion"`
	TxAssimBVP   float64 `yaml:"txAssimBVP"`
	TxAssimMatu1 float64 `yaml:"txAssimMatu1"`
	TxAssimMatu2 float64 `yaml:"txAssimMatu2"`

	// maintenance respiration
	KRespMaint float64 `yaml:"kRespMaint"`
	TempMaint  float64 `yaml:"tempMaint"` // [°C]

	// seedling reserve and density
	DensOpti      float64 `yaml:"densOpti"` // NaN when undefined
	TxResGrain    float64 `yaml:"txResGrain"`
	PoidsSecGrain float64 `yaml:"poidsSecGrain"`
	DensiteA      float64 `yaml:"densiteA"`
	DensiteP      float64 `yaml:"densiteP"`

	// allometry and partitioning
	AeroTotPente     float64 `yaml:"aeroTotPente"`
	AeroTotBase      float64 `yaml:"aeroTotBase"`
	FeuilAeroBase    float64 `yaml:"feuilAeroBase"`
	FeuilAeroPente   float64 `yaml:"feuilAeroPente"`
	PcReallocFeuille float64 `yaml:"pcReallocFeuille"`
	TxRealloc        float64 `yaml:"txRealloc"`
	PhaseDevVeg      float64 `yaml:"phaseDevVeg"`

	// yield
	KRdtPotA float64 `yaml:"KRdtPotA"`
	KRdtPotB float64 `yaml:"KRdtPotB"`
	KRdtBiom float64 `yaml:"KRdtBiom"`

	// specific leaf area [ha/kg]
	SlaMax   float64 `yaml:"slaMax"`
	SlaMin   float64 `yaml:"slaMin"`
	SlaPente float64 `yaml:"slaPente"`

	TxRecolte float64 `yaml:"txRecolte"` // harvested fraction of leaf and stem biomass
}

// Management holds crop management (itinéraire technique) parameters.
type Management struct {
	Densite float64 `yaml:"densite"` // planting density [plants/ha]
	NI      float64 `yaml:"NI"`      // intensification index, NaN when undefined

	// residue decay
	NbUBT    float64 `yaml:"NbUBT"`    // herd density
	KNUp     float64 `yaml:"KNUp"`     // climatic decay of standing residue [1/d]
	KNLit    float64 `yaml:"KNLit"`    // climatic decay of litter [1/d]
	KI       float64 `yaml:"KI"`       // ingestion per UBT [1/d]
	KT       float64 `yaml:"KT"`       // trampling per UBT [1/d]
	TxaTerre float64 `yaml:"txaTerre"` // fraction of standing residue laid down at harvest
}

// HasDensOpti reports whether the optimal density is defined.
func (v *Variety) HasDensOpti() bool { return !math.IsNaN(v.DensOpti) }

// SommeDegresJourMaximale returns the thermal time of a full cycle.
func (v *Variety) SommeDegresJourMaximale() float64 {
	return v.SDJLevee + v.SDJBVP + v.SDJRPR + v.SDJMatu1 + v.SDJMatu2
}

// HasNI reports whether the intensification index is defined.
func (m *Management) HasNI() bool { return !math.IsNaN(m.NI) }

// DefaultVariety returns a millet-like parameter set, with densOpti undefined.
func DefaultVariety() Variety {
	return Variety{
		SDJLevee:         50.,
		SDJBVP:           500.,
		SDJRPR:           450.,
		SDJMatu1:         400.,
		SDJMatu2:         200.,
		Kdf:              .45,
		KcMax:            1.15,
		TxConversion:     6.5,
		TxAssimBVP:       1.,
		TxAssimMatu1:     .75,
		TxAssimMatu2:     .2,
		KRespMaint:       .015,
		TempMaint:        25.,
		DensOpti:         math.NaN(),
		TxResGrain:       .0005,
		PoidsSecGrain:    25.,
		DensiteA:         1.,
		DensiteP:         1.,
		AeroTotPente:     .0002,
		AeroTotBase:      .8,
		FeuilAeroBase:    .6,
		FeuilAeroPente:   -.0001,
		PcReallocFeuille: .25,
		TxRealloc:        .6,
		PhaseDevVeg:      4.,
		KRdtPotA:         .5,
		KRdtPotB:         100.,
		KRdtBiom:         .1,
		SlaMax:           .006,
		SlaMin:           .002,
		SlaPente:         .05,
		TxRecolte:        .5,
	}
}

// DefaultManagement returns a rainfed, unfertilized, grazed parameter set.
func DefaultManagement() Management {
	return Management{
		Densite:  10000.,
		NI:       math.NaN(),
		NbUBT:    10.,
		KNUp:     .001,
		KNLit:    .011,
		KI:       .005,
		KT:       .003,
		TxaTerre: .1,
	}
}
