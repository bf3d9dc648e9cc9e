// Package contender holds the optimizer's view of a loadout: which host
// artifacts and which stones to wear, without saying which stone goes where.
package contender

import (
	"fmt"
	"sort"
	"strings"

	"artifact-planner/core/artifact"
	"artifact-planner/core/multiset"
)

// Contender is an unordered multiset of hosts and an unordered multiset of
// stones.
type Contender struct {
	Artifacts []artifact.Item `json:"artifacts"`
	Stones    []artifact.Item `json:"stones"`
}

// New returns a contender owning copies of artifacts and stones.
func New(artifacts, stones []artifact.Item) Contender {
	return Contender{
		Artifacts: append([]artifact.Item(nil), artifacts...),
		Stones:    append([]artifact.Item(nil), stones...),
	}
}

// FromSet flattens an equipped set into its hosts and stones.
func FromSet(set artifact.Set) Contender {
	var c Contender
	for _, a := range set.Artifacts {
		c.Artifacts = append(c.Artifacts, a.Host)
		c.Stones = append(c.Stones, a.Stones...)
	}
	return c
}

// ArtifactCounter returns the multiset of host keys.
func (c Contender) ArtifactCounter() multiset.Counter[artifact.Key] {
	return counter(c.Artifacts)
}

// StoneCounter returns the multiset of stone keys.
func (c Contender) StoneCounter() multiset.Counter[artifact.Key] {
	return counter(c.Stones)
}

// Equals reports whether both contenders recommend the same hosts and the
// same stones, ignoring order.
func (c Contender) Equals(other Contender) bool {
	return c.ArtifactCounter().Equal(other.ArtifactCounter()) &&
		c.StoneCounter().Equal(other.StoneCounter())
}

func (c Contender) String() string {
	return fmt.Sprintf("artifacts: [%s], stones: [%s]", sortedKeys(c.Artifacts), sortedKeys(c.Stones))
}

func counter(items []artifact.Item) multiset.Counter[artifact.Key] {
	keys := make([]artifact.Key, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	return multiset.New(keys...)
}

func sortedKeys(items []artifact.Item) string {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = string(item.Key)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
