package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"artifact-planner/core/artifact"
	"artifact-planner/core/contender"
	"artifact-planner/core/multiset"
)

// Reconstruct builds a concrete set satisfying target, reusing the artifacts
// in guide (the equipped set) and inv (spare assembled artifacts) where it can.
// The returned statuses are parallel to the returned set. Any error wraps
// ErrInvariantViolation and no partial result is returned.
func Reconstruct(target contender.Contender, guide artifact.Set, inv artifact.Inventory) (*Result, error) {
	// The equipped set is already what the optimizer asks for.
	if target.Equals(contender.FromSet(guide)) {
		statuses := make([]AssemblyStatus, guide.Len())
		for i := range statuses {
			statuses[i] = StatusEquipped
		}
		return &Result{Set: guide.Clone(), Statuses: statuses}, nil
	}

	var spares []artifact.Artifact
	if inv != nil {
		spares = inv.Stoned()
	}

	hosts := sortHosts(target.Artifacts)
	pool := multiset.NewBag(target.Stones, artifact.Item.Identity)

	constructed := make([]artifact.Artifact, 0, len(hosts))
	for _, host := range hosts {
		if host.Slots == 0 {
			constructed = append(constructed, artifact.New(host))
			continue
		}

		available := pool.Counter()
		chosen, ok := findMatch(host, available, guide.Artifacts)
		if !ok {
			chosen, ok = findMatch(host, available, spares)
		}
		if ok {
			chosen = chosen.Clone()
		} else {
			chosen = artifact.New(host)
		}

		for _, stone := range chosen.Stones {
			if _, ok := pool.Take(stone.Key); !ok {
				return nil, violation("slot stones",
					fmt.Sprintf("trying to slot %s which doesn't exist in the recommendation", stone.Key),
					append(constructed, chosen))
			}
		}
		constructed = append(constructed, chosen)
	}

	if err := slotLeftovers(constructed, pool); err != nil {
		return nil, err
	}

	set := artifact.Set{Artifacts: alignToGuide(constructed, guide.Artifacts)}

	if got := contender.FromSet(set); !got.Equals(target) {
		return nil, violation("self-check",
			fmt.Sprintf("constructed set differs from recommendation: got %s, expected %s", got, target),
			set.Artifacts)
	}

	return &Result{
		Set:      set,
		Statuses: classify(set.Artifacts, guide, inv),
	}, nil
}

// sortHosts orders hosts by slots, then base crafting price, then quality.
// Cheap hosts go first so that valuable assembled artifacts stay available
// for the hosts that come later.
func sortHosts(items []artifact.Item) []artifact.Item {
	hosts := append([]artifact.Item(nil), items...)
	sort.SliceStable(hosts, func(i, j int) bool {
		a, b := hosts[i], hosts[j]
		if a.Slots != b.Slots {
			return a.Slots < b.Slots
		}
		if a.BaseCraftingPrice != b.BaseCraftingPrice {
			return a.BaseCraftingPrice < b.BaseCraftingPrice
		}
		return a.Quality < b.Quality
	})
	return hosts
}

// slotLeftovers puts the remaining stones, cheapest first, into the first
// constructed artifacts with free sockets. A later re-optimization then tends
// to replace the cheaper stone.
func slotLeftovers(constructed []artifact.Artifact, pool *multiset.Bag[artifact.Key, artifact.Item]) error {
	if pool.Len() == 0 {
		return nil
	}
	pool.SortStable(func(a, b artifact.Item) bool {
		return a.BaseCraftingPrice < b.BaseCraftingPrice
	})
	for i := range constructed {
		for pool.Len() > 0 && constructed[i].FreeSlots() > 0 {
			stone, _ := pool.TakeFirst()
			constructed[i].Stones = append(constructed[i].Stones, stone)
		}
		if pool.Len() == 0 {
			return nil
		}
	}

	keys := pool.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return violation("place leftover stones",
		"nowhere to slot some stones in the recommendation: "+strings.Join(names, ", "),
		constructed)
}
