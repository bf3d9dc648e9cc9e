package contender_test

import (
	"testing"

	"artifact-planner/core/artifact"
	"artifact-planner/core/contender"

	"github.com/stretchr/testify/assert"
)

var (
	gusset  = artifact.Item{Key: "GUSSET_T3", Family: "GUSSET", Slots: 2}
	feather = artifact.Item{Key: "FEATHER_T2", Family: "FEATHER", Slots: 1}
	lunar   = artifact.Item{Key: "LUNAR_T3", Family: "LUNAR_STONE"}
	soul    = artifact.Item{Key: "SOUL_T2", Family: "SOUL_STONE"}
)

func TestFromSet(t *testing.T) {
	set := artifact.NewSet(
		artifact.New(gusset, lunar, soul),
		artifact.New(feather),
	)

	c := contender.FromSet(set)
	assert.Equal(t, []artifact.Item{gusset, feather}, c.Artifacts)
	assert.Equal(t, []artifact.Item{lunar, soul}, c.Stones)
}

func TestEquals(t *testing.T) {
	base := contender.New([]artifact.Item{gusset, feather}, []artifact.Item{lunar, soul})

	tests := []struct {
		name  string
		other contender.Contender
		want  bool
	}{
		{"Reordered", contender.New([]artifact.Item{feather, gusset}, []artifact.Item{soul, lunar}), true},
		{"MissingStone", contender.New([]artifact.Item{gusset, feather}, []artifact.Item{lunar}), false},
		{"DuplicateStone", contender.New([]artifact.Item{gusset, feather}, []artifact.Item{lunar, lunar}), false},
		{"ExtraHost", contender.New([]artifact.Item{gusset, feather, feather}, []artifact.Item{lunar, soul}), false},
		{"StoneAsHost", contender.New([]artifact.Item{gusset, soul}, []artifact.Item{lunar, feather}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equals(tt.other))
			assert.Equal(t, tt.want, tt.other.Equals(base))
		})
	}

	assert.True(t, contender.Contender{}.Equals(contender.FromSet(artifact.Set{})))
}

func TestString(t *testing.T) {
	c := contender.New([]artifact.Item{gusset, feather}, []artifact.Item{soul, lunar})
	assert.Equal(t, "artifacts: [FEATHER_T2, GUSSET_T3], stones: [LUNAR_T3, SOUL_T2]", c.String())
}
