package reconcile

import "artifact-planner/core/artifact"

// BuildPlan turns a Result into per-slot entries and the actions needed to go
// from guide to the reconstructed set. It does not modify result.
//
// Entry statuses are copied from result. Actions are counted per physical
// copy: a worn or spare artifact reused for several identical slots is kept
// or equipped once, and the other slots are assembled from their stones.
func BuildPlan(result *Result, guide artifact.Set, inv artifact.Inventory) *Plan {
	plan := &Plan{
		Entries: make([]PlanEntry, 0, result.Set.Len()),
		Actions: []Action{},
	}

	worn := copies(guide.Artifacts)
	var spare map[string]int
	if inv != nil {
		spare = copies(inv.Stoned())
	} else {
		spare = map[string]int{}
	}

	kept := make(map[string]int)
	for i, a := range result.Set.Artifacts {
		status := result.Statuses[i]
		plan.Entries = append(plan.Entries, PlanEntry{Slot: i, Artifact: a, Status: status})

		key := a.CompleteKey()
		switch {
		case status == StatusEquipped && worn[key] > 0:
			worn[key]--
			kept[key]++
			plan.Summary.Equipped++
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionKeep,
				Slot:     i,
				Artifact: a.Key(),
				Reason:   "already equipped",
			})
		case len(a.Stones) == 0:
			plan.Summary.Assembled++
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionEquip,
				Slot:     i,
				Artifact: a.Key(),
				Reason:   "no stones to slot",
			})
		case status != StatusAwaitingAssembly && spare[key] > 0:
			spare[key]--
			plan.Summary.Assembled++
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionEquip,
				Slot:     i,
				Artifact: a.Key(),
				Reason:   "assembled in inventory",
			})
		default:
			plan.Summary.AwaitingAssembly++
			plan.Summary.StonesToSlot += len(a.Stones)
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionAssemble,
				Slot:     i,
				Artifact: a.Key(),
				Stones:   a.StoneKeys(),
				Reason:   "stones owned but not slotted",
			})
		}
	}
	plan.Summary.TotalArtifacts = len(plan.Entries)

	// Worn artifacts not matched by a kept one are taken off.
	for i, g := range guide.Artifacts {
		key := g.CompleteKey()
		if kept[key] > 0 {
			kept[key]--
			continue
		}
		plan.Summary.Unequipped++
		plan.Actions = append(plan.Actions, Action{
			Type:     ActionUnequip,
			Slot:     i,
			Artifact: g.Key(),
			Reason:   "not part of the recommended set",
		})
	}

	return plan
}

// copies counts the artifacts per complete key.
func copies(artifacts []artifact.Artifact) map[string]int {
	n := make(map[string]int, len(artifacts))
	for _, a := range artifacts {
		n[a.CompleteKey()]++
	}
	return n
}
