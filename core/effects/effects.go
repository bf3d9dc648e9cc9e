// Package effects turns catalog data into the production model the
// earnings calculator scores.
package effects

import (
	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"
	"artifact-planner/core/earnings"
)

// Set holds the combined multipliers of an artifact set. Each multiplier is
// the product of (1 + effect) over every host and stone in the set.
type Set struct {
	eggValue             float64
	eggLayingRate        float64
	habSpace             float64
	internalHatcheryRate float64
	boostEffect          float64
	awayEarnings         float64
	virtualEarnings      float64
	earningBonus         float64
	runningChickenBonus  float64
}

var _ earnings.EffectSet = (*Set)(nil)

// NewSet combines the effects of every item in set. Items missing from the
// catalog contribute nothing.
func NewSet(set artifact.Set, cat *catalog.Catalog) *Set {
	s := &Set{
		eggValue:             1,
		eggLayingRate:        1,
		habSpace:             1,
		internalHatcheryRate: 1,
		boostEffect:          1,
		awayEarnings:         1,
		virtualEarnings:      1,
		earningBonus:         1,
		runningChickenBonus:  1,
	}
	for _, a := range set.Artifacts {
		s.apply(cat.Effects(a.Key()))
		for _, stone := range a.Stones {
			s.apply(cat.Effects(stone.Key))
		}
	}
	return s
}

func (s *Set) apply(e catalog.Effects) {
	s.eggValue *= 1 + e.EggValue
	s.eggLayingRate *= 1 + e.EggLayingRate
	s.habSpace *= 1 + e.HabSpace
	s.internalHatcheryRate *= 1 + e.InternalHatcheryRate
	s.boostEffect *= 1 + e.BoostEffect
	s.awayEarnings *= 1 + e.AwayEarnings
	s.virtualEarnings *= 1 + e.VirtualEarnings
	s.earningBonus *= 1 + e.EarningBonus
	s.runningChickenBonus *= 1 + e.RunningChickenBonus
}

func (s *Set) EggValueMultiplier() float64             { return s.eggValue }
func (s *Set) EggLayingRateMultiplier() float64        { return s.eggLayingRate }
func (s *Set) HabSpaceMultiplier() float64             { return s.habSpace }
func (s *Set) InternalHatcheryRateMultiplier() float64 { return s.internalHatcheryRate }
func (s *Set) BoostEffectMultiplier() float64          { return s.boostEffect }
func (s *Set) AwayEarningsMultiplier() float64         { return s.awayEarnings }
func (s *Set) VirtualEarningsMultiplier() float64      { return s.virtualEarnings }

// EarningBonusMultiplier scales the farm's earning bonus.
func (s *Set) EarningBonusMultiplier() float64 { return s.earningBonus }

// RunningChickenBonusMultiplier scales the farm's running chicken bonus cap.
func (s *Set) RunningChickenBonusMultiplier() float64 { return s.runningChickenBonus }

// Snapshot is a farm's bonuses with nothing equipped and common researches
// maxed.
type Snapshot struct {
	EarningBonus           float64 `json:"earning_bonus" yaml:"earning_bonus"`
	MaxRunningChickenBonus float64 `json:"max_running_chicken_bonus" yaml:"max_running_chicken_bonus"`
}

// farmBonuses is implemented by sets that also scale farm-level bonuses.
type farmBonuses interface {
	EarningBonusMultiplier() float64
	RunningChickenBonusMultiplier() float64
}

// Farm implements earnings.Farm on top of a Snapshot.
type Farm struct {
	base Snapshot
	set  farmBonuses
}

var _ earnings.Farm = Farm{}

// NewFarm returns the bare farm described by s.
func NewFarm(s Snapshot) Farm {
	return Farm{base: s}
}

// Unequipped implements earnings.Farm.
func (f Farm) Unequipped() earnings.Farm {
	return Farm{base: f.base}
}

// Equip implements earnings.Farm. Sets that do not expose farm-level
// bonuses leave them unchanged.
func (f Farm) Equip(set earnings.EffectSet) earnings.Farm {
	fb, _ := set.(farmBonuses)
	return Farm{base: f.base, set: fb}
}

// EarningBonus implements earnings.Farm.
func (f Farm) EarningBonus() float64 {
	if f.set == nil {
		return f.base.EarningBonus
	}
	return f.base.EarningBonus * f.set.EarningBonusMultiplier()
}

// MaxRunningChickenBonusWithMaxedResearches implements earnings.Farm.
func (f Farm) MaxRunningChickenBonusWithMaxedResearches() float64 {
	if f.set == nil {
		return f.base.MaxRunningChickenBonus
	}
	return f.base.MaxRunningChickenBonus * f.set.RunningChickenBonusMultiplier()
}
