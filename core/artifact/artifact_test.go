package artifact_test

import (
	"testing"

	"artifact-planner/core/artifact"

	"github.com/stretchr/testify/assert"
)

var (
	lens   = artifact.Item{Key: "LENS_T4_EPIC", Family: "LENS", Slots: 3}
	totem  = artifact.Item{Key: "TOTEM_T4_RARE", Family: "TOTEM", Slots: 2}
	tach   = artifact.Item{Key: "TACHYON_T4", Family: "TACHYON_STONE"}
	quantm = artifact.Item{Key: "QUANTUM_T4", Family: "QUANTUM_STONE"}
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b artifact.Artifact
		want bool
	}{
		{"SameBare", artifact.New(lens), artifact.New(lens), true},
		{"SameStones", artifact.New(lens, tach, quantm), artifact.New(lens, tach, quantm), true},
		{"StoneOrderMatters", artifact.New(lens, tach, quantm), artifact.New(lens, quantm, tach), false},
		{"DifferentHost", artifact.New(lens), artifact.New(totem), false},
		{"DifferentStoneCount", artifact.New(lens, tach), artifact.New(lens, tach, tach), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, artifact.Equal(tt.a, tt.b))
		})
	}
}

func TestCompleteKey_IgnoresStoneOrder(t *testing.T) {
	a := artifact.New(lens, tach, quantm)
	b := artifact.New(lens, quantm, tach)
	assert.Equal(t, a.CompleteKey(), b.CompleteKey())
	assert.NotEqual(t, a.CompleteKey(), artifact.New(lens, tach).CompleteKey())
	assert.NotEqual(t, artifact.New(lens).CompleteKey(), artifact.New(totem).CompleteKey())
}

func TestSetEqual(t *testing.T) {
	s1 := artifact.NewSet(artifact.New(lens, tach), artifact.New(totem))
	s2 := artifact.NewSet(artifact.New(lens, tach), artifact.New(totem))
	swapped := artifact.NewSet(artifact.New(totem), artifact.New(lens, tach))

	assert.True(t, artifact.SetEqual(s1, s2))
	assert.False(t, artifact.SetEqual(s1, swapped), "slot order matters")
	assert.False(t, artifact.SetEqual(s1, artifact.NewSet(artifact.New(lens, tach))))
	assert.True(t, artifact.SetEqual(artifact.Set{}, artifact.NewSet()))
}

func TestArtifact_CloneAndSlots(t *testing.T) {
	a := artifact.New(lens, tach)
	c := a.Clone()
	c.Stones = append(c.Stones, quantm)
	c.Stones[0] = quantm

	assert.Equal(t, []artifact.Key{"TACHYON_T4"}, a.StoneKeys())
	assert.Equal(t, 2, a.FreeSlots())
	assert.Equal(t, 1, c.FreeSlots())
	assert.Equal(t, 0, artifact.New(totem, tach, tach, tach).FreeSlots())
	assert.Equal(t, "LENS_T4_EPIC(TACHYON_T4)", a.String())
}

func TestInventoryKeys(t *testing.T) {
	inv := artifact.StaticInventory{artifact.New(lens, tach), artifact.New(totem)}
	keys := artifact.InventoryKeys(inv)
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, artifact.New(lens, tach).CompleteKey())
	assert.Empty(t, artifact.InventoryKeys(nil))
}
