package reconcile

import (
	"artifact-planner/core/artifact"
	"artifact-planner/core/multiset"
)

// findMatch returns the choice with the most stones whose host is host and
// whose stones are all still in pool. Among equally stoned choices the first
// one wins. A choice without stones never matches.
func findMatch(host artifact.Item, pool multiset.Counter[artifact.Key], choices []artifact.Artifact) (artifact.Artifact, bool) {
	var (
		match      artifact.Artifact
		matchCount int
		found      bool
	)
	for _, choice := range choices {
		if choice.Key() != host.Key || len(choice.Stones) <= matchCount {
			continue
		}
		if pool.ContainsAll(choice.StoneKeys()) {
			match = choice
			matchCount = len(choice.Stones)
			found = true
		}
	}
	return match, found
}
