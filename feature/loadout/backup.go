package loadout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"artifact-planner/feature/loadout/models"

	"github.com/minio/minio-go/v7"
)

// loadBackup reads a stored backup document by id.
func (s *Service) loadBackup(ctx context.Context, id string) (*models.Backup, error) {
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("%w: malformed backup id %q", ErrInvalidRequest, id)
	}
	object := s.cfg.BackupObject(id)

	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, backupError(id, object, err)
	}
	defer obj.Close()

	var backup models.Backup
	if err := json.NewDecoder(obj).Decode(&backup); err != nil {
		// minio reports missing objects on the first read
		return nil, backupError(id, object, err)
	}
	return &backup, nil
}

func backupError(id, object string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%w: %s", ErrBackupNotFound, id)
	}
	return fmt.Errorf("failed to read backup %s: %w", object, err)
}
