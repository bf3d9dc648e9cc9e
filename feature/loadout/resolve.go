package loadout

import (
	"fmt"

	"artifact-planner/core/artifact"
	"artifact-planner/core/catalog"
	"artifact-planner/core/contender"
	"artifact-planner/feature/loadout/models"
)

func resolveTarget(cat *catalog.Catalog, doc models.TargetDoc) (contender.Contender, error) {
	if len(doc.Artifacts) > artifact.MaxEquipped {
		return contender.Contender{}, fmt.Errorf("%w: target has %d artifacts, at most %d can be equipped",
			ErrInvalidRequest, len(doc.Artifacts), artifact.MaxEquipped)
	}
	hosts, err := cat.Items(doc.Artifacts, catalog.KindArtifact)
	if err != nil {
		return contender.Contender{}, fmt.Errorf("%w: target: %w", ErrInvalidRequest, err)
	}
	stones, err := cat.Items(doc.Stones, catalog.KindStone)
	if err != nil {
		return contender.Contender{}, fmt.Errorf("%w: target: %w", ErrInvalidRequest, err)
	}
	capacity := 0
	for _, h := range hosts {
		capacity += h.Slots
	}
	if len(stones) > capacity {
		return contender.Contender{}, fmt.Errorf("%w: target has %d stones but only %d slots",
			ErrInvalidRequest, len(stones), capacity)
	}
	return contender.New(hosts, stones), nil
}

func resolveArtifacts(cat *catalog.Catalog, docs []models.ArtifactDoc, what string) ([]artifact.Artifact, error) {
	out := make([]artifact.Artifact, 0, len(docs))
	for i, d := range docs {
		a, err := cat.Artifact(d.Host, d.Stones)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrInvalidRequest, what, i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func resolveSet(cat *catalog.Catalog, docs []models.ArtifactDoc, what string) (artifact.Set, error) {
	if len(docs) > artifact.MaxEquipped {
		return artifact.Set{}, fmt.Errorf("%w: %s has %d artifacts, at most %d can be equipped",
			ErrInvalidRequest, what, len(docs), artifact.MaxEquipped)
	}
	artifacts, err := resolveArtifacts(cat, docs, what)
	if err != nil {
		return artifact.Set{}, err
	}
	return artifact.Set{Artifacts: artifacts}, nil
}
