package catalog_test

import (
	"strings"
	"testing"

	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "items": [
    {"key": "NECKLACE_T4_L", "family": "NECKLACE", "name": "Brilliant Tungsten Ankh", "kind": "artifact", "slots": 3, "base_crafting_price": 50000, "quality": 12, "effects": {"egg_value": 1.0}},
    {"key": "TOTEM_T4_E", "family": "TOTEM", "name": "Mighty Lunar Totem", "kind": "artifact", "slots": 2, "base_crafting_price": 30000, "quality": 9, "effects": {"away_earnings": 49}},
    {"key": "PROPHECY_T3", "family": "PROPHECY_STONE", "name": "Eggceptional Prophecy Stone", "kind": "stone", "base_crafting_price": 3000, "quality": 4, "effects": {"earning_bonus": 0.003}}
  ]
}`

func TestDecode(t *testing.T) {
	cat, err := catalog.Decode(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	e, ok := cat.Lookup("TOTEM_T4_E")
	require.True(t, ok)
	assert.Equal(t, "TOTEM", e.Family)
	assert.Equal(t, 2, e.Slots)
	assert.Equal(t, catalog.KindArtifact, e.Kind)
	assert.InDelta(t, 49, e.Effects.AwayEarnings, 1e-9)

	assert.InDelta(t, 0.003, cat.Effects("PROPHECY_T3").EarningBonus, 1e-9)
	assert.Zero(t, cat.Effects("MISSING"))

	entries := cat.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, artifact.Key("NECKLACE_T4_L"), entries[0].Key)
	assert.Equal(t, artifact.Key("TOTEM_T4_E"), entries[2].Key)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := catalog.Decode(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "failed to parse catalog JSON")
}

func TestNew(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		_, err := catalog.New([]catalog.Entry{{Key: "A"}, {Key: "A"}})
		assert.ErrorIs(t, err, catalog.ErrDuplicateItem)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := catalog.New([]catalog.Entry{{Name: "nameless"}})
		assert.ErrorContains(t, err, "has no key")
	})

	t.Run("DefaultKind", func(t *testing.T) {
		cat, err := catalog.New([]catalog.Entry{{Key: "A", Slots: 1}})
		require.NoError(t, err)
		_, err = cat.Item("A", catalog.KindArtifact)
		assert.NoError(t, err)
	})

	t.Run("DefaultFamily", func(t *testing.T) {
		cat, err := catalog.New([]catalog.Entry{{Key: "A", Slots: 1}, {Key: "B", Slots: 1}, {Key: "C", Family: "F"}})
		require.NoError(t, err)

		a, err := cat.Item("A", catalog.KindArtifact)
		require.NoError(t, err)
		b, err := cat.Item("B", catalog.KindArtifact)
		require.NoError(t, err)
		assert.Equal(t, "A", a.Family)
		assert.Equal(t, "B", b.Family)
		assert.NotEqual(t, a.Family, b.Family)

		c, _ := cat.Lookup("C")
		assert.Equal(t, "F", c.Family)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		for _, key := range []artifact.Key{"A[B]", "A,B", "A]", "A B", "A;B", "A\tB"} {
			_, err := catalog.New([]catalog.Entry{{Key: key}})
			assert.ErrorIs(t, err, catalog.ErrInvalidKey, string(key))
		}
	})
}

// TestNew_CompleteKeysDistinct tests that catalog keys cannot forge each
// other's complete keys.
func TestNew_CompleteKeysDistinct(t *testing.T) {
	// H[a,b] with no stones and H with stones a,b] and b would otherwise
	// render the same complete key.
	_, err := catalog.New([]catalog.Entry{{Key: "H[a,b]"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidKey)

	cat, err := catalog.New([]catalog.Entry{
		{Key: "H", Slots: 2},
		{Key: "a", Kind: catalog.KindStone},
		{Key: "b", Kind: catalog.KindStone},
	})
	require.NoError(t, err)
	ab, err := cat.Artifact("H", []artifact.Key{"a", "b"})
	require.NoError(t, err)
	a, err := cat.Artifact("H", []artifact.Key{"a"})
	require.NoError(t, err)
	assert.NotEqual(t, ab.CompleteKey(), a.CompleteKey())
}

func TestItem(t *testing.T) {
	cat, err := catalog.Decode(strings.NewReader(catalogJSON))
	require.NoError(t, err)

	item, err := cat.Item("NECKLACE_T4_L", catalog.KindArtifact)
	require.NoError(t, err)
	assert.Equal(t, artifact.Item{
		Key:               "NECKLACE_T4_L",
		Family:            "NECKLACE",
		Name:              "Brilliant Tungsten Ankh",
		Slots:             3,
		BaseCraftingPrice: 50000,
		Quality:           12,
	}, item)

	_, err = cat.Item("NOPE", catalog.KindArtifact)
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)

	_, err = cat.Item("PROPHECY_T3", catalog.KindArtifact)
	assert.ErrorIs(t, err, catalog.ErrWrongKind)

	items, err := cat.Items([]artifact.Key{"PROPHECY_T3", "PROPHECY_T3"}, catalog.KindStone)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = cat.Items([]artifact.Key{"PROPHECY_T3", "NECKLACE_T4_L"}, catalog.KindStone)
	assert.ErrorIs(t, err, catalog.ErrWrongKind)
}

func TestArtifact(t *testing.T) {
	cat, err := catalog.Decode(strings.NewReader(catalogJSON))
	require.NoError(t, err)

	a, err := cat.Artifact("TOTEM_T4_E", []artifact.Key{"PROPHECY_T3", "PROPHECY_T3"})
	require.NoError(t, err)
	assert.Equal(t, "TOTEM_T4_E[PROPHECY_T3,PROPHECY_T3]", a.CompleteKey())
	assert.Equal(t, 0, a.FreeSlots())

	_, err = cat.Artifact("TOTEM_T4_E", []artifact.Key{"PROPHECY_T3", "PROPHECY_T3", "PROPHECY_T3"})
	assert.ErrorIs(t, err, catalog.ErrTooManyStones)

	_, err = cat.Artifact("PROPHECY_T3", nil)
	assert.ErrorIs(t, err, catalog.ErrWrongKind)

	_, err = cat.Artifact("TOTEM_T4_E", []artifact.Key{"GHOST"})
	assert.ErrorIs(t, err, catalog.ErrUnknownItem)
}
