package logbook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"logbook-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service exposes the reconciliation engine together with the remote log
// store: contest log files can be ingested straight from the object-storage
// bucket and CSL exports published back to it.
type Service struct {
	manager *Manager
	client  storage.Client
	bucket  string
	prefix  string
	logger  *zap.Logger
}

// NewService creates a new logbook service.
func NewService(manager *Manager, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		manager: manager,
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		logger:  logger,
	}
}

// Manager returns the underlying reconciliation engine.
func (s *Service) Manager() *Manager {
	return s.manager
}

// ListObjects returns the keys of contest log files in the bucket under the
// configured prefix, filtered to supported extensions.
func (s *Service) ListObjects(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if SupportedExtension(filepath.Ext(obj.Key)) {
			keys = append(keys, obj.Key)
		}
	}
	return keys, nil
}

// LoadObject fetches a contest log from the bucket and feeds it through the
// reconciliation engine. The format is determined from the object key's
// extension.
func (s *Service) LoadObject(ctx context.Context, objectName string, progress ProgressFunc) (*MergeSummary, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch object %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// Minio defers missing-key errors until the first read.
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, &NotFoundError{Path: objectName}
		}
		return nil, fmt.Errorf("failed to read object %s: %w", objectName, err)
	}

	return s.manager.LoadBytes(objectName, data, progress)
}

// PublishObject serializes the current record list as CSL and uploads it to
// the bucket. On success the dirty flag is cleared like a local save.
func (s *Service) PublishObject(ctx context.Context, objectName string) error {
	var buf bytes.Buffer
	if err := s.manager.Export(&buf); err != nil {
		return &WriteError{Path: objectName, Err: err}
	}

	size := int64(buf.Len())
	_, err := s.client.PutObject(ctx, s.bucket, objectName, &buf, size, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return &WriteError{Path: objectName, Err: err}
	}

	s.manager.markSaved()
	s.logger.Info("Published logbook", zap.String("object", objectName), zap.Int64("bytes", size))
	return nil
}
