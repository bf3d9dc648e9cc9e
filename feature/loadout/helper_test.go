package loadout_test

import (
	"context"
	"errors"
	"testing"

	"artifact-planner/core/catalog"
	"artifact-planner/core/planner"
	"artifact-planner/core/storage"
	"artifact-planner/feature/loadout"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Entry{
		{Key: "A", Family: "A", Kind: catalog.KindArtifact, Slots: 1, BaseCraftingPrice: 100, Effects: catalog.Effects{EggValue: 1}},
		{Key: "B", Family: "B", Kind: catalog.KindArtifact, Slots: 2, BaseCraftingPrice: 200},
		{Key: "C", Family: "C", Kind: catalog.KindArtifact, Slots: 0, BaseCraftingPrice: 10},
		{Key: "D", Family: "D", Kind: catalog.KindArtifact, Slots: 1, BaseCraftingPrice: 50},
		{Key: "E", Family: "E", Kind: catalog.KindArtifact, Slots: 1, BaseCraftingPrice: 60},
		{Key: "g1", Family: "G1", Kind: catalog.KindStone, BaseCraftingPrice: 5, Effects: catalog.Effects{EarningBonus: 0.5}},
		{Key: "g2", Family: "G2", Kind: catalog.KindStone, BaseCraftingPrice: 7},
	})
	require.NoError(t, err)
	return cat
}

func testConfig() planner.Config {
	return planner.Config{
		Strategy:     "none",
		AwayEarnings: 1,
		BackupPrefix: "backups/",
	}
}

func newService(t *testing.T, client storage.Client) *loadout.Service {
	return loadout.NewService(catalog.Fixed{Catalog: testCatalog(t)}, client, "assets", testConfig(), zap.NewNop())
}

type failingProvider struct{}

func (failingProvider) Get(context.Context) (*catalog.Catalog, error) {
	return nil, errors.New("bucket offline")
}
