package reconcile

import "artifact-planner/core/artifact"

// classify labels each constructed artifact. Membership is tested on complete
// keys so stone order is irrelevant.
func classify(constructed []artifact.Artifact, guide artifact.Set, inv artifact.Inventory) []AssemblyStatus {
	guideKeys := guide.CompleteKeys()
	inventoryKeys := artifact.InventoryKeys(inv)

	statuses := make([]AssemblyStatus, len(constructed))
	for i, a := range constructed {
		key := a.CompleteKey()
		_, equipped := guideKeys[key]
		_, assembled := inventoryKeys[key]
		switch {
		case equipped:
			statuses[i] = StatusEquipped
		case len(a.Stones) == 0:
			// Unstoned artifacts are trivially assembled.
			statuses[i] = StatusAssembled
		case assembled:
			statuses[i] = StatusAssembled
		default:
			statuses[i] = StatusAwaitingAssembly
		}
	}
	return statuses
}
