// Package storage keeps copies of exported documents in S3-compatible
// object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/models"
)

//go:generate mockgen -source=storage.go -destination=../mock/object_storage_mock.go -package=mock

// ObjectStorage defines the object operations the archive needs.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Bucket() string
}

// exportPrefix is the key prefix every archived export is stored under.
const exportPrefix = "exports"

// Archive stores exported documents under time-stamped keys.
type Archive struct {
	backend ObjectStorage
	now     func() time.Time
	logger  *logger.Logger
}

// NewArchive constructs an Archive over backend.
func NewArchive(backend ObjectStorage, logger *logger.Logger) *Archive {
	return &Archive{
		backend: backend,
		now:     time.Now,
		logger:  logger,
	}
}

// Prepare makes sure the target bucket exists. It is called once at startup.
func (a *Archive) Prepare(ctx context.Context) error {
	if err := a.backend.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("%w %q: %w", ErrBucketUnavailable, a.backend.Bucket(), err)
	}

	return nil
}

// Store uploads doc and returns the object key it was written to, e.g.
// "exports/20261017T093000Z-user_data.xlsx".
func (a *Archive) Store(ctx context.Context, doc models.Document) (string, error) {
	key := ExportKey(a.now(), doc.FileName)

	err := a.backend.Put(ctx, key, bytes.NewReader(doc.Content), int64(len(doc.Content)), doc.ContentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Archive.Store").Str("key", key).Msg("error uploading export")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	logger.FromContext(ctx).Debug().Str("bucket", a.backend.Bucket()).Str("key", key).Msg("export archived")
	return key, nil
}

// ExportKey builds the object key of a document archived at t.
func ExportKey(t time.Time, fileName string) string {
	return path.Join(exportPrefix, t.UTC().Format("20060102T150405Z")+"-"+path.Base(fileName))
}
