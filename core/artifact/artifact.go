package artifact

import (
	"fmt"
	"sort"
	"strings"
)

// MaxEquipped is the number of artifact slots a player can equip.
const MaxEquipped = 4

// Key identifies an item down to family, tier and rarity.
type Key string

// Item is an artifact or stone as described by the catalog.
type Item struct {
	// Key is the identity of the item.
	Key Key `json:"key"`
	// Family groups every tier and rarity of the same artifact.
	Family string `json:"family"`
	// Name is the display name.
	Name string `json:"name,omitempty"`
	// Slots is the stone capacity; zero for stones and unslotted artifacts.
	Slots int `json:"slots"`
	// BaseCraftingPrice is the crafting cost before discounts.
	BaseCraftingPrice float64 `json:"base_crafting_price"`
	// Quality is the catalog quality score.
	Quality float64 `json:"quality"`
}

// Identity returns the item key. It is meant to be used as a method value
// wherever a key function is expected.
func (i Item) Identity() Key {
	return i.Key
}

func (i Item) String() string {
	return string(i.Key)
}

// Artifact is a host item together with its socketed stones.
type Artifact struct {
	Host   Item   `json:"host"`
	Stones []Item `json:"stones"`
}

// New returns an artifact owning a copy of stones.
func New(host Item, stones ...Item) Artifact {
	owned := make([]Item, len(stones))
	copy(owned, stones)
	return Artifact{Host: host, Stones: owned}
}

// Key returns the host item key.
func (a Artifact) Key() Key {
	return a.Host.Key
}

// Family returns the host family.
func (a Artifact) Family() string {
	return a.Host.Family
}

// Slots returns the host stone capacity.
func (a Artifact) Slots() int {
	return a.Host.Slots
}

// FreeSlots returns how many more stones fit into the artifact.
func (a Artifact) FreeSlots() int {
	if free := a.Host.Slots - len(a.Stones); free > 0 {
		return free
	}
	return 0
}

// StoneKeys returns the keys of the socketed stones in socket order.
func (a Artifact) StoneKeys() []Key {
	keys := make([]Key, len(a.Stones))
	for i, s := range a.Stones {
		keys[i] = s.Key
	}
	return keys
}

// CompleteKey identifies the artifact by host and stone multiset. It is
// unambiguous because catalog.New rejects keys holding its delimiters.
func (a Artifact) CompleteKey() string {
	stones := make([]string, len(a.Stones))
	for i, s := range a.Stones {
		stones[i] = string(s.Key)
	}
	sort.Strings(stones)
	return string(a.Host.Key) + "[" + strings.Join(stones, ",") + "]"
}

// Clone returns a deep copy that shares no stone slice with a.
func (a Artifact) Clone() Artifact {
	return New(a.Host, a.Stones...)
}

func (a Artifact) String() string {
	if len(a.Stones) == 0 {
		return string(a.Host.Key)
	}
	stones := make([]string, len(a.Stones))
	for i, s := range a.Stones {
		stones[i] = string(s.Key)
	}
	return fmt.Sprintf("%s(%s)", a.Host.Key, strings.Join(stones, ", "))
}

// Equal reports whether a and b have the same host and the same stones in the
// same socket order.
func Equal(a, b Artifact) bool {
	if a.Host.Key != b.Host.Key {
		return false
	}
	if len(a.Stones) != len(b.Stones) {
		return false
	}
	for i := range a.Stones {
		if a.Stones[i].Key != b.Stones[i].Key {
			return false
		}
	}
	return true
}
