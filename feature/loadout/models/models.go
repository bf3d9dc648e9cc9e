// Package models holds the request, response and document types of the
// loadout feature.
package models

import (
	"artifact-planner/core/artifact"
	"artifact-planner/core/earnings"
	"artifact-planner/core/effects"
	"artifact-planner/core/reconcile"
)

// ArtifactDoc is an artifact by key: a host and the stones in its sockets.
type ArtifactDoc struct {
	Host   artifact.Key   `json:"host" yaml:"host"`
	Stones []artifact.Key `json:"stones,omitempty" yaml:"stones,omitempty"`
}

// TargetDoc is a candidate loadout as flat item lists.
type TargetDoc struct {
	Artifacts []artifact.Key `json:"artifacts" yaml:"artifacts"`
	Stones    []artifact.Key `json:"stones" yaml:"stones"`
}

// Backup is the relevant part of a player backup.
type Backup struct {
	// Equipped is the currently worn set, in slot order.
	Equipped []ArtifactDoc `json:"equipped" yaml:"equipped"`
	// Inventory lists stoned artifacts that are not worn.
	Inventory []ArtifactDoc `json:"inventory" yaml:"inventory"`
	// Farm enables earnings scoring when present.
	Farm *effects.Snapshot `json:"farm,omitempty" yaml:"farm,omitempty"`
}

// PlanRequest asks for the concrete set realizing Target.
type PlanRequest struct {
	Target TargetDoc `json:"target" yaml:"target"`
	// Backup is used when set; otherwise BackupID is loaded from storage.
	Backup    *Backup             `json:"backup,omitempty" yaml:"backup,omitempty"`
	BackupID  string              `json:"backup_id,omitempty" yaml:"backup_id,omitempty"`
	Strategy  string              `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Modifiers *earnings.Modifiers `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// PlanResponse is the reconstructed set with the steps to wear it.
type PlanResponse struct {
	Set  []ArtifactDoc   `json:"set"`
	Plan *reconcile.Plan `json:"plan"`
	// Strategy and EarningsMultiplier are set when the backup has a farm.
	Strategy           earnings.Strategy `json:"strategy,omitempty"`
	EarningsMultiplier *float64          `json:"earnings_multiplier,omitempty"`
}

// EarningsRequest scores an explicit set on a farm.
type EarningsRequest struct {
	Set       []ArtifactDoc       `json:"set"`
	Farm      effects.Snapshot    `json:"farm"`
	Strategy  string              `json:"strategy,omitempty"`
	Modifiers *earnings.Modifiers `json:"modifiers,omitempty"`
}

// EarningsResponse is the score of an EarningsRequest.
type EarningsResponse struct {
	Strategy           earnings.Strategy `json:"strategy"`
	EarningsMultiplier float64           `json:"earnings_multiplier"`
}

// StrategiesResponse lists the known strategies.
type StrategiesResponse struct {
	Default    earnings.Strategy   `json:"default"`
	Strategies []earnings.Strategy `json:"strategies"`
}

// Docs converts a set into documents.
func Docs(set artifact.Set) []ArtifactDoc {
	docs := make([]ArtifactDoc, 0, set.Len())
	for _, a := range set.Artifacts {
		docs = append(docs, ArtifactDoc{Host: a.Key(), Stones: a.StoneKeys()})
	}
	return docs
}
