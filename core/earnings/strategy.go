package earnings

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown prestige strategy")

// Strategy selects which boost mechanics are scored on top of the base
// multiplier.
type Strategy string

const (
	// StrategyNone scores the base multiplier only.
	StrategyNone Strategy = "none"
	// StandardPermitSinglePreload boosts once per prestige with a standard permit.
	StandardPermitSinglePreload Strategy = "standard-permit-single-preload"
	// ProPermitSinglePreload boosts once per prestige with a pro permit.
	ProPermitSinglePreload Strategy = "pro-permit-single-preload"
	// ProPermitMulti chains several boosts per prestige with a pro permit.
	ProPermitMulti Strategy = "pro-permit-multi"
	// ProPermitLunarPreloadAIO preloads a lunar set and runs away earnings
	// in the same set.
	ProPermitLunarPreloadAIO Strategy = "pro-permit-lunar-preload-aio"
)

// Strategies lists every known strategy.
func Strategies() []Strategy {
	return []Strategy{
		StrategyNone,
		StandardPermitSinglePreload,
		ProPermitSinglePreload,
		ProPermitMulti,
		ProPermitLunarPreloadAIO,
	}
}

// ParseStrategy resolves a strategy name. The empty string is StrategyNone.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyNone, nil
	}
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
