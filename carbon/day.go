package carbon

import "github.com/maseology/sarra/store"

// day holds views of day j (and, where needed, day j-1) over the cell range
// [lo,hi). Every slice aliases the store.
type day struct {
	j, lo, hi int

	// inputs
	phase, change     []float64
	sdj, ddj          []float64
	seuilSuiv, seuilP []float64
	tr, trPot         []float64
	tpMoy, par        []float64

	// state, day j
	ltr, kcp                       []float64
	kassim, conv, assimPot, assim  []float64
	respMaint                      []float64
	total, dTotal, aero, dAero     []float64
	root, stem, leaf, dLeaf, veg   []float64
	biomIp, biomFlo                []float64
	bM, cM, manque, realloc        []float64
	rdtPot, dRdtPot, rdt, sla, lai []float64
	rap                            []float64
	ubt                            []float64
	feuilleUp, tigeUp              []float64
	litFeuille, litTige, biomMc    []float64

	// state, day j-1
	aeroPrev, leafPrev []float64
}

func newDay(s *store.Store, j, lo, hi int) *day {
	f := func(name string) []float64 { return s.Day(name, j)[lo:hi] }
	p := func(name string) []float64 { return s.Day(name, j-1)[lo:hi] }
	return &day{
		j: j, lo: lo, hi: hi,

		phase:     f(store.NumPhase),
		change:    f(store.ChangePhase),
		sdj:       f(store.Sdj),
		ddj:       f(store.Ddj),
		seuilSuiv: f(store.SeuilTempPhaseSuivante),
		seuilP:    f(store.SeuilTempPhasePrec),
		tr:        f(store.Tr),
		trPot:     f(store.TrPot),
		tpMoy:     f(store.TpMoy),
		par:       f(store.Par),

		ltr:        f(store.Ltr),
		kcp:        f(store.Kcp),
		kassim:     f(store.KAssim),
		conv:       f(store.Conv),
		assimPot:   f(store.AssimPot),
		assim:      f(store.Assim),
		respMaint:  f(store.RespMaint),
		total:      f(store.BiomasseTotale),
		dTotal:     f(store.DeltaBiomasseTotale),
		aero:       f(store.BiomasseAerienne),
		dAero:      f(store.DeltaBiomasseAerienne),
		root:       f(store.BiomasseRacinaire),
		stem:       f(store.BiomasseTige),
		leaf:       f(store.BiomasseFeuille),
		dLeaf:      f(store.DeltaBiomasseFeuilles),
		veg:        f(store.BiomasseVegetative),
		biomIp:     f(store.BiomTotStadeIp),
		biomFlo:    f(store.BiomTotStadeFloraison),
		bM:         f(store.BM),
		cM:         f(store.CM),
		manque:     f(store.ManqueAssim),
		realloc:    f(store.Reallocation),
		rdtPot:     f(store.RdtPot),
		dRdtPot:    f(store.DRdtPot),
		rdt:        f(store.Rdt),
		sla:        f(store.Sla),
		lai:        f(store.Lai),
		rap:        f(store.RapDensite),
		ubt:        f(store.UBTCulture),
		feuilleUp:  f(store.FeuilleUp),
		tigeUp:     f(store.TigeUp),
		litFeuille: f(store.LitFeuille),
		litTige:    f(store.LitTige),
		biomMc:     f(store.BiomMc),

		aeroPrev: p(store.BiomasseAerienne),
		leafPrev: p(store.BiomasseFeuille),
	}
}

// ph returns the phase of cell c.
func (d *day) ph(c int) int { return int(d.phase[c]) }

// changed reports whether cell c entered its phase today.
func (d *day) changed(c int) bool { return d.change[c] == 1 }
