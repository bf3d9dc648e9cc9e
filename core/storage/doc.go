// Package storage wraps the MinIO client for the objects the planner reads
// and writes: the catalog document and player backups.
//
// Client is an interface so handlers and sources can be tested against
// core/storage/mocks. Works with AWS S3 and self-hosted MinIO.
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "catalog/artifacts.json", minio.GetObjectOptions{})
package storage
