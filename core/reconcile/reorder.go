package reconcile

import "artifact-planner/core/artifact"

// slot is one position of the realignment array. Padding slots are empty.
type slot struct {
	artifact artifact.Artifact
	filled   bool
}

func (s slot) holds(family string) bool {
	return s.filled && s.artifact.Family() == family
}

// alignToGuide moves constructed artifacts into the slots where the guide
// wears their family. It is a stable realignment, not a sort: artifacts that
// have no counterpart in the guide keep their arrival order.
//
// For every guide position i whose slot does not hold the guide family, the
// first other slot holding that family is swapped in, skipping the slots
// before i that already hold their own guide family.
func alignToGuide(constructed, guide []artifact.Artifact) []artifact.Artifact {
	n := len(constructed)
	if len(guide) > n {
		n = len(guide)
	}
	slots := make([]slot, n)
	for i, a := range constructed {
		slots[i] = slot{artifact: a, filled: true}
	}

	aligned := func(j int) bool {
		return j < len(guide) && slots[j].holds(guide[j].Family())
	}

	for i, g := range guide {
		family := g.Family()
		if slots[i].holds(family) {
			continue
		}
		for j := range slots {
			if j == i || (j < i && aligned(j)) {
				continue
			}
			if slots[j].holds(family) {
				slots[i], slots[j] = slots[j], slots[i]
				break
			}
		}
	}

	out := make([]artifact.Artifact, 0, len(constructed))
	for _, s := range slots {
		if s.filled {
			out = append(out, s.artifact)
		}
	}
	return out
}
