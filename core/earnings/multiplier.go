// Package earnings scores an artifact set by how much it multiplies a farm's
// earnings compared to wearing nothing.
//
// The farm model and the per-set multipliers are computed elsewhere (see
// package effects); this package only composes them.
package earnings

import "math"

// EffectSet exposes the precomputed multipliers of an artifact set.
type EffectSet interface {
	EggValueMultiplier() float64
	EggLayingRateMultiplier() float64
	HabSpaceMultiplier() float64
	InternalHatcheryRateMultiplier() float64
	BoostEffectMultiplier() float64
	AwayEarningsMultiplier() float64
	VirtualEarningsMultiplier() float64
}

// Farm is a production state with some artifact set equipped.
type Farm interface {
	// Unequipped returns the same farm wearing no artifacts.
	Unequipped() Farm
	// Equip returns the same farm wearing set.
	Equip(set EffectSet) Farm
	// EarningBonus returns the total earning bonus.
	EarningBonus() float64
	// MaxRunningChickenBonusWithMaxedResearches returns the running chicken
	// bonus cap assuming every common research is maxed.
	MaxRunningChickenBonusWithMaxedResearches() float64
}

// Modifiers are environmental adjustments applied by some strategies.
type Modifiers struct {
	// AwayEarnings multiplies away earnings. Nil means no adjustment; an
	// explicit zero is applied as is.
	AwayEarnings *float64 `json:"away_earnings,omitempty" yaml:"away_earnings,omitempty"`
}

// NewModifiers returns modifiers with the given away earnings multiplier.
func NewModifiers(awayEarnings float64) Modifiers {
	return Modifiers{AwayEarnings: &awayEarnings}
}

// DefaultModifiers returns modifiers that adjust nothing.
func DefaultModifiers() Modifiers {
	return NewModifiers(1)
}

func (m Modifiers) awayEarnings() float64 {
	if m.AwayEarnings == nil {
		return 1
	}
	return *m.AwayEarnings
}

// VirtualEarningsMultiplier returns the earnings of farm wearing set divided
// by the earnings of farm wearing nothing, with common researches maxed.
func VirtualEarningsMultiplier(farm Farm, set EffectSet, strategy Strategy, mods Modifiers) float64 {
	bare := farm.Unequipped()
	equipped := farm.Equip(set)

	earningBonusMultiplier := 1.0
	if bareBonus := bare.EarningBonus(); bareBonus > 0 {
		earningBonusMultiplier = equipped.EarningBonus() / bareBonus
	}
	equippedRCB := equipped.MaxRunningChickenBonusWithMaxedResearches()
	runningChickenBonusMultiplier := equippedRCB / bare.MaxRunningChickenBonusWithMaxedResearches()

	total := earningBonusMultiplier *
		set.EggValueMultiplier() *
		set.EggLayingRateMultiplier() *
		runningChickenBonusMultiplier *
		set.VirtualEarningsMultiplier()

	switch strategy {
	case StandardPermitSinglePreload, ProPermitSinglePreload:
		total *= set.HabSpaceMultiplier() * math.Pow(set.BoostEffectMultiplier(), 2)
	case ProPermitMulti:
		total *= set.InternalHatcheryRateMultiplier() * math.Pow(set.BoostEffectMultiplier(), 3)
	case ProPermitLunarPreloadAIO:
		total *= set.HabSpaceMultiplier() *
			math.Pow(set.BoostEffectMultiplier(), 2) *
			set.AwayEarningsMultiplier() *
			mods.awayEarnings() /
			equippedRCB
	}

	return total
}
