package carbon

import (
	"math"
	"testing"

	"github.com/maseology/sarra/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanopy(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)

	d.lai[0], d.phase[0], d.kcp[0] = 0., 0., .7
	canopy(d, &v)
	assert.Equal(t, 1., d.ltr[0])
	assert.Equal(t, .7, d.kcp[0], "unchanged before sowing")

	d.phase[0] = 1.
	canopy(d, &v)
	assert.Equal(t, kcpMin, d.kcp[0], "floored for a bare canopy")

	d.lai[0], d.phase[0] = 3., 3.
	canopy(d, &v)
	assert.InDelta(t, math.Exp(-v.Kdf*3.), d.ltr[0], 1e-12)
	assert.InDelta(t, v.KcMax*(1.-d.ltr[0]), d.kcp[0], 1e-12)
}

func TestKAssimByPhase(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.seuilP[0], d.seuilSuiv[0], d.sdj[0] = 1000., 1400., 1100.

	for _, tc := range []struct {
		ph   float64
		want float64
		ok   bool
	}{
		{0., 0., false},
		{1., 0., false},
		{2., 1., true},
		{3., v.TxAssimBVP, true},
		{4., v.TxAssimBVP, true},
		{5., v.TxAssimBVP + .25*(v.TxAssimMatu1-v.TxAssimBVP), true},
		{6., v.TxAssimMatu1 + .25*(v.TxAssimMatu2-v.TxAssimMatu1), true},
		{7., 0., false},
	} {
		d.phase[0] = tc.ph
		k, ok := kAssim(d, 0, &v)
		assert.Equal(t, tc.ok, ok, "phase %v", tc.ph)
		if ok {
			assert.InDelta(t, tc.want, k, 1e-12, "phase %v", tc.ph)
		}
	}
}

func TestCoincidentThresholdsKeepKAssim(t *testing.T) {
	v := param.DefaultVariety()
	m := param.DefaultManagement()
	_, d := oneCell(t, &v)
	d.phase[0], d.kassim[0] = 5., .8
	d.seuilP[0], d.seuilSuiv[0], d.sdj[0] = 1200., 1200., 1210.
	assimilation(d, &v, &m)
	assert.Equal(t, .8, d.kassim[0])
	assert.InDelta(t, .8*v.TxConversion, d.conv[0], 1e-12)
}

func TestAssimilation(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	_, d := oneCell(t, &v)
	d.phase[0], d.par[0], d.lai[0] = 3., 10., 2.
	d.tr[0], d.trPot[0] = 3., 4.
	assimilation(d, &v, &m)
	pot := 10. * (1. - math.Exp(-v.Kdf*2.)) * v.TxAssimBVP * v.TxConversion * 10.
	assert.InDelta(t, pot, d.assimPot[0], 1e-9)
	assert.InDelta(t, pot*.75, d.assim[0], 1e-9)

	// an intensification index switches to the fixed conversion rate
	v.TxAssimBVP = .5
	m.NI = 1.
	assimilation(d, &v, &m)
	assert.InDelta(t, 10.*(1.-math.Exp(-v.Kdf*2.))*v.TxConversion*10., d.assimPot[0], 1e-9)
	assert.InDelta(t, .5*v.TxConversion, d.conv[0], 1e-12)
}

func TestZeroPotentialTranspiration(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	_, d := oneCell(t, &v)
	d.phase[0], d.par[0], d.lai[0] = 5., 12., 3.
	d.seuilP[0], d.seuilSuiv[0], d.sdj[0] = 1000., 1400., 1100.
	d.tr[0], d.trPot[0] = 2., 0.
	d.rdtPot[0], d.respMaint[0], d.ddj[0] = 2000., 40., 25.

	assimilation(d, &v, &m)
	assert.Greater(t, d.assimPot[0], 0.)
	assert.Zero(t, d.assim[0])

	potentialYield(d, &v)
	assert.Zero(t, d.dRdtPot[0])
}

func TestPotentialYield(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.change[0] = 5., 1.
	d.biomIp[0], d.biomFlo[0], d.stem[0] = 2000., 4000., 3000.
	d.tr[0], d.trPot[0], d.ddj[0], d.respMaint[0] = 4., 4., 20., 10.

	potentialYield(d, &v)
	want := v.KRdtPotA*2000. + v.KRdtPotB + v.KRdtBiom*4000.
	require.Less(t, want, 6000.)
	assert.InDelta(t, want, d.rdtPot[0], 1e-9)
	assert.InDelta(t, want*20./v.SDJMatu1, d.dRdtPot[0], 1e-9)

	// clamped to twice the stem for short vegetative cycles
	d.stem[0] = 500.
	potentialYield(d, &v)
	assert.Equal(t, 1000., d.rdtPot[0])

	v.PhaseDevVeg = 6.
	potentialYield(d, &v)
	assert.InDelta(t, want, d.rdtPot[0], 1e-9)

	// no reset after the onset day; respiration floor under stress
	d.change[0], d.tr[0] = 0., 0.
	d.rdtPot[0] = 800.
	potentialYield(d, &v)
	assert.Equal(t, 800., d.rdtPot[0])
	assert.InDelta(t, respYieldFrac*10., d.dRdtPot[0], 1e-12)
}

func TestRespiration(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.total[0], d.leaf[0], d.tpMoy[0] = 3., 1000., 200., v.TempMaint+10.
	respiration(d, &v)
	assert.InDelta(t, v.KRespMaint*1200.*2., d.respMaint[0], 1e-9)

	d.phase[0], d.leaf[0] = 6., 0.
	respiration(d, &v)
	assert.Zero(t, d.respMaint[0])
}

func TestSeedReserve(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	v.DensOpti, v.TxResGrain, v.PoidsSecGrain = 10., .02, 25.
	m.Densite = 5.
	assert.InDelta(t, .005, seedReserve(&v, &m), 1e-15)

	_, d := oneCell(t, &v)
	d.phase[0], d.change[0] = 2., 1.
	d.total[0], d.assim[0], d.respMaint[0] = 7., 3., 1.
	totalBiomass(d, &v, &m)
	assert.InDelta(t, .005, d.total[0], 1e-15)
	assert.Equal(t, 2., d.dTotal[0])

	// undefined optimal density: no density floor
	v.DensOpti = math.NaN()
	assert.InDelta(t, .0025, seedReserve(&v, &m), 1e-15)
}

func TestStageSnapshots(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	_, d := oneCell(t, &v)
	d.total[0], d.assim[0] = 100., 10.
	d.phase[0], d.change[0] = 4., 1.
	totalBiomass(d, &v, &m)
	assert.Equal(t, 110., d.biomIp[0])
	assert.Zero(t, d.biomFlo[0])

	d.phase[0] = 5.
	totalBiomass(d, &v, &m)
	assert.Equal(t, 110., d.biomIp[0])
	assert.Equal(t, 120., d.biomFlo[0])

	d.change[0] = 0.
	totalBiomass(d, &v, &m)
	assert.Equal(t, 120., d.biomFlo[0])
}

func TestAbovegroundBiomass(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.total[0], d.aeroPrev[0] = 3., 1000., 700.
	abovegroundBiomass(d, &v)
	assert.InDelta(t, .9*1000., d.aero[0], 1e-9, "capped at 90%")
	assert.InDelta(t, 200., d.dAero[0], 1e-9)

	d.phase[0], d.aero[0], d.dTotal[0] = 5., 950., -20.
	abovegroundBiomass(d, &v)
	assert.InDelta(t, 930., d.aero[0], 1e-9)
	assert.InDelta(t, 230., d.dAero[0], 1e-9)
}

func TestLossRegime(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.leaf[0], d.stem[0], d.realloc[0], d.dAero[0] = 5., 40., 100., 5., -2.
	d.leafPrev[0] = 40.
	partition(d, &v)
	pc := v.PcReallocFeuille
	assert.InDelta(t, math.Max(biomFloor, 40.-(5.-(-2.))*pc), d.leaf[0], 1e-12)
	assert.InDelta(t, 100.-7.*(1.-pc), d.stem[0], 1e-12)
	assert.InDelta(t, -7.*pc, d.dLeaf[0], 1e-12)
	assert.InDelta(t, d.leaf[0]+d.stem[0]+d.rdt[0], d.aero[0], 1e-12)

	// floors
	d.leaf[0], d.stem[0] = 1., 1.
	partition(d, &v)
	assert.Equal(t, biomFloor, d.leaf[0])
	assert.Equal(t, biomFloor, d.stem[0])
}

func TestGrowthRegime(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.aero[0], d.rdt[0], d.dAero[0] = 3., 2000., 0., 50.
	partition(d, &v)

	bM := v.FeuilAeroBase - .1
	cM := (v.FeuilAeroPente*1000./bM + .78) / .75
	leaf := (.1 + bM*math.Pow(cM, 2.)) * 2000.
	assert.InDelta(t, bM, d.bM[0], 1e-12)
	assert.InDelta(t, cM, d.cM[0], 1e-12)
	assert.InDelta(t, leaf, d.leaf[0], 1e-9)
	assert.InDelta(t, 2000.-leaf, d.stem[0], 1e-9)
	assert.InDelta(t, 2000., d.aero[0], 1e-9)

	// beyond the vegetative window only uniform reallocation applies
	d.phase[0], d.realloc[0] = 5., 10.
	d.leaf[0], d.stem[0], d.rdt[0] = 500., 1000., 100.
	partition(d, &v)
	assert.InDelta(t, 500.-10.*v.PcReallocFeuille, d.leaf[0], 1e-9)
	assert.InDelta(t, 1000.-10.*(1.-v.PcReallocFeuille), d.stem[0], 1e-9)
	assert.InDelta(t, 1590., d.aero[0], 1e-9)
}

func TestReallocation(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.dRdtPot[0], d.dAero[0], d.leaf[0] = 5., 50., 10., 500.
	reallocation(d, &v)
	assert.Equal(t, 40., d.manque[0])
	assert.InDelta(t, 40.*v.TxRealloc, d.realloc[0], 1e-12)

	d.leaf[0] = 40.
	reallocation(d, &v)
	assert.Equal(t, 10., d.realloc[0], "leaf reserve protected")

	d.leaf[0] = 20.
	reallocation(d, &v)
	assert.Zero(t, d.realloc[0])

	d.phase[0], d.leaf[0] = 4., 500.
	reallocation(d, &v)
	assert.Zero(t, d.manque[0])
	assert.Zero(t, d.realloc[0])
}

func TestGrainFilling(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.phase[0], d.rdt[0], d.dRdtPot[0], d.dAero[0], d.realloc[0] = 5., 100., 30., -5., 12.
	grainFilling(d)
	assert.Equal(t, 112., d.rdt[0])

	d.dAero[0] = 25.
	grainFilling(d)
	assert.Equal(t, 142., d.rdt[0], "capped by demand")

	d.phase[0] = 6.
	grainFilling(d)
	assert.Equal(t, 142., d.rdt[0])
}

func TestLeafArea(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)

	// emergence resets sla
	d.phase[0], d.change[0], d.leaf[0], d.dLeaf[0], d.sla[0] = 2., 1., 10., 10., 0.
	leafArea(d, &v)
	assert.Equal(t, v.SlaMax, d.sla[0])
	assert.InDelta(t, 10.*v.SlaMax, d.lai[0], 1e-12)

	// blend of aged and new tissue
	d.change[0], d.leaf[0], d.dLeaf[0], d.sla[0] = 0., 100., 20., .005
	leafArea(d, &v)
	aged := .005 - v.SlaPente*(.005-v.SlaMin)
	assert.InDelta(t, aged*.8+(v.SlaMax+.005)/2.*.2, d.sla[0], 1e-12)

	// ageing only
	d.dLeaf[0], d.sla[0] = -3., .005
	leafArea(d, &v)
	assert.InDelta(t, aged, d.sla[0], 1e-12)

	// clamped
	d.sla[0] = .0001
	leafArea(d, &v)
	assert.Equal(t, v.SlaMin, d.sla[0])

	// no leaf area outside phases 2-6
	d.phase[0] = 7.
	leafArea(d, &v)
	assert.Zero(t, d.lai[0])
}

func TestDensityRatio(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	r, ok := densityRatio(&v, &m)
	assert.False(t, ok)
	assert.Equal(t, 1., r)

	v.DensOpti, v.DensiteA, v.DensiteP = 20000., .4, .9
	r, ok = densityRatio(&v, &m)
	require.True(t, ok)
	k := 20000. / -math.Log(.6/.9)
	assert.InDelta(t, .4+.9*math.Exp(-10000./k), r, 1e-12)

	// at optimal density the ratio is 1
	m.Densite = v.DensOpti
	r, _ = densityRatio(&v, &m)
	assert.InDelta(t, 1., r, 1e-12)
}

func TestDensityRoundTrip(t *testing.T) {
	v := param.DefaultVariety()
	_, d := oneCell(t, &v)
	d.rdt[0], d.rdtPot[0], d.root[0], d.stem[0], d.leaf[0], d.sla[0] = 10., 50., 300., 400., 200., .004
	d.aero[0] = 610.
	d.total[0] = 910.

	densityUp(d, 1.25)
	assert.InDelta(t, 250., d.leaf[0], 1e-9)
	assert.InDelta(t, 1.25*610., d.aero[0], 1e-9)
	assert.InDelta(t, 1.25*910., d.total[0], 1e-9)
	assert.InDelta(t, 1., d.lai[0], 1e-12)

	densityDown(d, 1.25)
	assert.InDelta(t, 200., d.leaf[0], 1e-9)
	assert.InDelta(t, 50., d.rdtPot[0], 1e-9)
	assert.InDelta(t, 610., d.aero[0], 1e-9)
	assert.InDelta(t, 910., d.total[0], 1e-9)
	assert.InDelta(t, .8, d.lai[0], 1e-12)
}

func TestMulch(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	_, d := oneCell(t, &v)

	// cropping: herds off, standing residue laid down
	d.phase[0], d.feuilleUp[0], d.tigeUp[0], d.litFeuille[0], d.litTige[0] = 3., 10., 20., 5., 5.
	mulch(d, &m)
	assert.Zero(t, d.ubt[0])
	assert.Zero(t, d.feuilleUp[0])
	assert.Zero(t, d.tigeUp[0])
	assert.InDelta(t, 15.*(1.-m.KNLit), d.litFeuille[0], 1e-12)
	assert.InDelta(t, 25.*(1.-m.KNLit), d.litTige[0], 1e-12)
	assert.InDelta(t, 40.*(1.-m.KNLit), d.biomMc[0], 1e-12)

	// fallow: ingestion on leaves only, trampling moves standing to litter
	d.phase[0], d.feuilleUp[0], d.tigeUp[0], d.litFeuille[0], d.litTige[0] = 0., 100., 100., 0., 0.
	mulch(d, &m)
	u := m.NbUBT
	fu := 100. * (1. - m.KNUp - m.KI*u - m.KT*u)
	tu := 100. * (1. - m.KNUp - m.KT*u)
	assert.Equal(t, u, d.ubt[0])
	assert.InDelta(t, fu, d.feuilleUp[0], 1e-9)
	assert.InDelta(t, tu, d.tigeUp[0], 1e-9)
	assert.InDelta(t, fu*m.KT*u, d.litFeuille[0], 1e-9)
	assert.InDelta(t, tu*m.KT*u, d.litTige[0], 1e-9)
	assert.Zero(t, d.biomMc[0], "litter is summed before trampling")

	// heavy grazing saturates at zero
	m.NbUBT = 1000.
	mulch(d, &m)
	assert.Zero(t, d.feuilleUp[0])
}

func TestHarvest(t *testing.T) {
	v, m := param.DefaultVariety(), param.DefaultManagement()
	_, d := oneCell(t, &v)
	d.phase[0], d.change[0], d.leaf[0], d.stem[0] = 7., 1., 200., 400.
	harvest(d, &v, &m)

	fu := 200. * (1. - v.TxRecolte)
	tu := 400. * (1. - v.TxRecolte)
	assert.InDelta(t, fu*(1.-m.TxaTerre), d.feuilleUp[0], 1e-9)
	assert.InDelta(t, tu*(1.-m.TxaTerre), d.tigeUp[0], 1e-9)
	assert.InDelta(t, fu*m.TxaTerre, d.litFeuille[0], 1e-9)
	assert.InDelta(t, (fu+tu)*m.TxaTerre, d.biomMc[0], 1e-9)

	// once only
	d.change[0] = 0.
	harvest(d, &v, &m)
	assert.InDelta(t, fu*(1.-m.TxaTerre), d.feuilleUp[0], 1e-9)
}
