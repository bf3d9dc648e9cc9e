package effects_test

import (
	"testing"

	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"
	"artifact-planner/core/earnings"
	"artifact-planner/core/effects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Entry{
		{Key: "NECKLACE", Family: "NECKLACE", Kind: catalog.KindArtifact, Slots: 2, Effects: catalog.Effects{EggValue: 1}},
		{Key: "GUSSET", Family: "GUSSET", Kind: catalog.KindArtifact, Slots: 1, Effects: catalog.Effects{HabSpace: 0.2}},
		{Key: "SHELL", Family: "SHELL_STONE", Kind: catalog.KindStone, Effects: catalog.Effects{EggValue: 0.1}},
		{Key: "PROPHECY", Family: "PROPHECY_STONE", Kind: catalog.KindStone, Effects: catalog.Effects{EarningBonus: 0.5}},
		{Key: "LIFE", Family: "LIFE_STONE", Kind: catalog.KindStone, Effects: catalog.Effects{RunningChickenBonus: 0.25}},
	})
	require.NoError(t, err)
	return cat
}

func buildSet(t *testing.T, cat *catalog.Catalog) artifact.Set {
	t.Helper()
	necklace, err := cat.Artifact("NECKLACE", []artifact.Key{"SHELL", "PROPHECY"})
	require.NoError(t, err)
	gusset, err := cat.Artifact("GUSSET", []artifact.Key{"LIFE"})
	require.NoError(t, err)
	return artifact.NewSet(necklace, gusset)
}

func TestNewSet(t *testing.T) {
	cat := testCatalog(t)
	set := effects.NewSet(buildSet(t, cat), cat)

	assert.InDelta(t, 2*1.1, set.EggValueMultiplier(), 1e-9)
	assert.InDelta(t, 1.2, set.HabSpaceMultiplier(), 1e-9)
	assert.InDelta(t, 1.5, set.EarningBonusMultiplier(), 1e-9)
	assert.InDelta(t, 1.25, set.RunningChickenBonusMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.EggLayingRateMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.BoostEffectMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.AwayEarningsMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.VirtualEarningsMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.InternalHatcheryRateMultiplier(), 1e-9)
}

func TestNewSet_Empty(t *testing.T) {
	set := effects.NewSet(artifact.NewSet(), testCatalog(t))
	assert.InDelta(t, 1, set.EggValueMultiplier(), 1e-9)
	assert.InDelta(t, 1, set.EarningBonusMultiplier(), 1e-9)
}

func TestFarm(t *testing.T) {
	cat := testCatalog(t)
	set := effects.NewSet(buildSet(t, cat), cat)
	farm := effects.NewFarm(effects.Snapshot{EarningBonus: 100, MaxRunningChickenBonus: 40})

	equipped := farm.Equip(set)
	assert.InDelta(t, 150, equipped.EarningBonus(), 1e-9)
	assert.InDelta(t, 50, equipped.MaxRunningChickenBonusWithMaxedResearches(), 1e-9)

	bare := equipped.Unequipped()
	assert.InDelta(t, 100, bare.EarningBonus(), 1e-9)
	assert.InDelta(t, 40, bare.MaxRunningChickenBonusWithMaxedResearches(), 1e-9)
}

func TestVirtualEarningsMultiplier_WithCatalogSet(t *testing.T) {
	cat := testCatalog(t)
	set := effects.NewSet(buildSet(t, cat), cat)
	farm := effects.NewFarm(effects.Snapshot{EarningBonus: 100, MaxRunningChickenBonus: 40})

	got := earnings.VirtualEarningsMultiplier(farm, set, earnings.StrategyNone, earnings.DefaultModifiers())
	// earning bonus 1.5 * egg value 2.2 * running chicken bonus 1.25
	assert.InDelta(t, 1.5*2.2*1.25, got, 1e-9)

	got = earnings.VirtualEarningsMultiplier(farm, set, earnings.ProPermitSinglePreload, earnings.DefaultModifiers())
	assert.InDelta(t, 1.5*2.2*1.25*1.2, got, 1e-9)
}
