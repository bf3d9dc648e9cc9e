package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"artifact-planner/core/artifact"
	"artifact-planner/core/database"
	"artifact-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// ErrBucketNotFound is returned when the catalog bucket does not exist.
var ErrBucketNotFound = errors.New("catalog bucket not found")

// Source loads a full catalog.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Load reads every entry.
	Load(ctx context.Context) (*Catalog, error)
}

// StorageSource reads a JSON catalog document from object storage.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Name implements Source.
func (s *StorageSource) Name() string {
	return "storage:" + s.Bucket + "/" + s.Object
}

// Load implements Source.
func (s *StorageSource) Load(ctx context.Context) (*Catalog, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, s.Bucket)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog object %s: %w", s.Object, err)
	}
	defer obj.Close()

	return Decode(obj)
}

// Row is the artifact_catalog table model.
type Row struct {
	ItemKey              string  `gorm:"column:item_key;primaryKey"`
	Family               string  `gorm:"column:family"`
	Name                 string  `gorm:"column:name"`
	Kind                 string  `gorm:"column:kind"`
	Slots                int     `gorm:"column:slots"`
	BaseCraftingPrice    float64 `gorm:"column:base_crafting_price"`
	Quality              float64 `gorm:"column:quality"`
	EarningBonus         float64 `gorm:"column:earning_bonus"`
	EggValue             float64 `gorm:"column:egg_value"`
	EggLayingRate        float64 `gorm:"column:egg_laying_rate"`
	HabSpace             float64 `gorm:"column:hab_space"`
	InternalHatcheryRate float64 `gorm:"column:internal_hatchery_rate"`
	BoostEffect          float64 `gorm:"column:boost_effect"`
	AwayEarnings         float64 `gorm:"column:away_earnings"`
	VirtualEarnings      float64 `gorm:"column:virtual_earnings"`
	RunningChickenBonus  float64 `gorm:"column:running_chicken_bonus"`
}

// TableName implements gorm's Tabler.
func (Row) TableName() string {
	return "artifact_catalog"
}

// requiredColumns lists every column Row maps.
var requiredColumns = []string{
	"item_key", "family", "name", "kind", "slots", "base_crafting_price", "quality",
	"earning_bonus", "egg_value", "egg_laying_rate", "hab_space", "internal_hatchery_rate",
	"boost_effect", "away_earnings", "virtual_earnings", "running_chicken_bonus",
}

// Columns returns the artifact_catalog columns Row maps.
func Columns() []string {
	out := make([]string, len(requiredColumns))
	copy(out, requiredColumns)
	return out
}

// ToEntry converts a row into a catalog entry.
func (r Row) ToEntry() Entry {
	return Entry{
		Key:               artifact.Key(r.ItemKey),
		Family:            r.Family,
		Name:              r.Name,
		Kind:              Kind(r.Kind),
		Slots:             r.Slots,
		BaseCraftingPrice: r.BaseCraftingPrice,
		Quality:           r.Quality,
		Effects: Effects{
			EarningBonus:         r.EarningBonus,
			EggValue:             r.EggValue,
			EggLayingRate:        r.EggLayingRate,
			HabSpace:             r.HabSpace,
			InternalHatcheryRate: r.InternalHatcheryRate,
			BoostEffect:          r.BoostEffect,
			AwayEarnings:         r.AwayEarnings,
			VirtualEarnings:      r.VirtualEarnings,
			RunningChickenBonus:  r.RunningChickenBonus,
		},
	}
}

// DBSource reads the catalog from the artifact_catalog table.
type DBSource struct {
	DB *gorm.DB
	// VerifySchema checks the table columns before querying.
	VerifySchema bool
}

// Name implements Source.
func (s *DBSource) Name() string {
	return "database:artifact_catalog"
}

// Load implements Source.
func (s *DBSource) Load(ctx context.Context) (*Catalog, error) {
	db := s.DB.WithContext(ctx)
	if s.VerifySchema {
		missing, err := database.MissingColumns(db, Row{}.TableName(), requiredColumns)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("artifact_catalog is missing columns: %s", strings.Join(missing, ", "))
		}
	}

	var rows []Row
	if err := db.Order("item_key").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query artifact_catalog: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.ToEntry())
	}
	return New(entries)
}
