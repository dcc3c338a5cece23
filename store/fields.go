package store

// Role distinguishes fields supplied by collaborators from fields owned by the engine.
type Role int

const (
	// Input fields are written once per day by the phenology, hydrology and weather collaborators.
	Input Role = iota
	// State fields are carried forward day to day and overwritten by the engine.
	State
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case State:
		return "state"
	}
	return "unknown"
}

// collaborator inputs
const (
	NumPhase               = "numPhase"
	ChangePhase            = "changePhase"
	Sdj                    = "sdj"
	Ddj                    = "ddj"
	SeuilTempPhaseSuivante = "seuilTempPhaseSuivante"
	SeuilTempPhasePrec     = "seuilTempPhasePrec"
	Tr                     = "tr"
	TrPot                  = "trPot"
	TpMoy                  = "tpMoy"
	Rg                     = "rg"
	Par                    = "par"
)

// engine state
const (
	Ltr                     = "ltr"
	Kcp                     = "kcp"
	KAssim                  = "KAssim"
	Conv                    = "conv"
	AssimPot                = "assimPot"
	Assim                   = "assim"
	RespMaint               = "respMaint"
	BiomasseTotale          = "biomasseTotale"
	DeltaBiomasseTotale     = "deltaBiomasseTotale"
	BiomasseAerienne        = "biomasseAerienne"
	DeltaBiomasseAerienne   = "deltaBiomasseAerienne"
	BiomasseRacinaire       = "biomasseRacinaire"
	BiomasseTige            = "biomasseTige"
	BiomasseFeuille         = "biomasseFeuille"
	DeltaBiomasseFeuilles   = "deltaBiomasseFeuilles"
	BiomasseVegetative      = "biomasseVegetative"
	BiomTotStadeIp          = "biomTotStadeIp"
	BiomTotStadeFloraison   = "biomTotStadeFloraison"
	BM                      = "bM"
	CM                      = "cM"
	ManqueAssim             = "manqueAssim"
	Reallocation            = "reallocation"
	RdtPot                  = "rdtPot"
	DRdtPot                 = "dRdtPot"
	Rdt                     = "rdt"
	Sla                     = "sla"
	Lai                     = "lai"
	RapDensite              = "rapDensite"
	UBTCulture              = "UBTCulture"
	FeuilleUp               = "FeuilleUp"
	TigeUp                  = "TigeUp"
	LitFeuille              = "LitFeuille"
	LitTige                 = "LitTige"
	BiomMc                  = "biomMc"
	SommeDegresJourMaximale = "sommeDegresJourMaximale"
)

// Inputs lists every collaborator-supplied field.
var Inputs = []string{
	NumPhase, ChangePhase, Sdj, Ddj, SeuilTempPhaseSuivante, SeuilTempPhasePrec,
	Tr, TrPot, TpMoy, Rg, Par,
}

// States lists every engine-owned field.
var States = []string{
	Ltr, Kcp, KAssim, Conv, AssimPot, Assim, RespMaint,
	BiomasseTotale, DeltaBiomasseTotale, BiomasseAerienne, DeltaBiomasseAerienne,
	BiomasseRacinaire, BiomasseTige, BiomasseFeuille, DeltaBiomasseFeuilles, BiomasseVegetative,
	BiomTotStadeIp, BiomTotStadeFloraison, BM, CM, ManqueAssim, Reallocation,
	RdtPot, DRdtPot, Rdt, Sla, Lai, RapDensite,
	UBTCulture, FeuilleUp, TigeUp, LitFeuille, LitTige, BiomMc,
	SommeDegresJourMaximale,
}

// Outputs lists the fields consumed downstream (reporting, hydrology).
var Outputs = []string{
	BiomasseTotale, BiomasseAerienne, BiomasseRacinaire, BiomasseTige, BiomasseFeuille,
	BiomasseVegetative, Lai, Ltr, Sla, Rdt, RdtPot, Assim, AssimPot, Conv, KAssim, RespMaint,
	Reallocation, BiomMc, LitFeuille, LitTige, FeuilleUp, TigeUp,
}
