package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"artifact-planner/core/planner"
	"artifact-planner/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders returns the bucket prefixes the planner reads from: the
// folder of the catalog document and the backup prefix.
func RequiredFolders(cfg planner.Config) []string {
	var folders []string
	seen := make(map[string]bool)
	add := func(folder string) {
		folder = strings.Trim(folder, "/")
		if folder == "" || folder == "." || seen[folder] {
			return
		}
		seen[folder] = true
		folders = append(folders, folder)
	}
	if cfg.CatalogSource != planner.SourceDatabase {
		add(path.Dir(cfg.CatalogObject))
	}
	add(cfg.BackupPrefix)
	return folders
}

// CheckStructure returns the required folders missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:    folder + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the missing folders as empty marker objects.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folder+"/", bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
