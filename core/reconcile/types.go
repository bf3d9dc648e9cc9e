package reconcile

import (
	"fmt"

	"artifact-planner/core/artifact"
)

// AssemblyStatus describes how far an artifact is from being worn.
type AssemblyStatus int

const (
	// StatusMissingConstituents means some host or stone is not owned.
	// Reconstruct never produces it.
	StatusMissingConstituents AssemblyStatus = iota
	// StatusAwaitingAssembly means every constituent is owned but the stones
	// still have to be slotted.
	StatusAwaitingAssembly
	// StatusAssembled means the artifact exists as is in the inventory.
	StatusAssembled
	// StatusEquipped means the artifact is already worn.
	StatusEquipped
)

var statusNames = map[AssemblyStatus]string{
	StatusMissingConstituents: "missing_constituents",
	StatusAwaitingAssembly:    "awaiting_assembly",
	StatusAssembled:           "assembled",
	StatusEquipped:            "equipped",
}

func (s AssemblyStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("AssemblyStatus(%d)", int(s))
}

// MarshalText encodes the status as its snake_case name.
func (s AssemblyStatus) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown assembly status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a snake_case status name.
func (s *AssemblyStatus) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown assembly status %q", text)
}

// Result is the output of Reconstruct.
type Result struct {
	// Set is the reconstructed set in slot order.
	Set artifact.Set `json:"set"`

	// Statuses holds the status of Set.Artifacts[i] at index i.
	Statuses []AssemblyStatus `json:"statuses"`
}

// ActionType represents what the player has to do with one artifact.
type ActionType string

const (
	// ActionKeep leaves an equipped artifact where it is.
	ActionKeep ActionType = "keep"
	// ActionEquip equips an artifact that is already assembled.
	ActionEquip ActionType = "equip"
	// ActionAssemble slots stones into a host before equipping it.
	ActionAssemble ActionType = "assemble"
	// ActionUnequip removes an equipped artifact the new set does not use.
	ActionUnequip ActionType = "unequip"
)

// Action represents a single step towards wearing the reconstructed set.
type Action struct {
	// Type specifies the step to take.
	Type ActionType `json:"type"`

	// Slot is the position in the new set, or in the old set for unequips.
	Slot int `json:"slot"`

	// Artifact is the host key.
	Artifact artifact.Key `json:"artifact"`

	// Stones lists the stones to slot. Only populated for ActionAssemble.
	Stones []artifact.Key `json:"stones,omitempty"`

	// Reason explains why this step is needed.
	Reason string `json:"reason"`
}

// PlanEntry is one slot of the reconstructed set.
type PlanEntry struct {
	Slot     int               `json:"slot"`
	Artifact artifact.Artifact `json:"artifact"`
	Status   AssemblyStatus    `json:"status"`
}

// Plan contains the reconstructed set and the steps to wear it.
type Plan struct {
	// Entries contains the reconstructed set, one entry per slot.
	Entries []PlanEntry `json:"entries"`

	// Actions contains the steps to take, new slots first, unequips last.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalArtifacts is the size of the reconstructed set.
	TotalArtifacts int `json:"total_artifacts"`

	// Equipped counts artifacts that are already worn.
	Equipped int `json:"equipped"`

	// Assembled counts artifacts ready in the inventory.
	Assembled int `json:"assembled"`

	// AwaitingAssembly counts artifacts whose stones still need slotting.
	AwaitingAssembly int `json:"awaiting_assembly"`

	// Unequipped counts worn artifacts that the new set drops.
	Unequipped int `json:"unequipped"`

	// StonesToSlot counts stones across every assemble action.
	StonesToSlot int `json:"stones_to_slot"`
}
