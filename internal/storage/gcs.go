package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSUploader archives admin CSV exports in a private bucket. Each export is
// one object named by ExportObjectName, so the bucket holds
// exports/applications-<YYYYMMDDTHHMMSSZ>.csv objects, one per export; an
// export in the same second overwrites the previous one. Objects are never
// made public. Upload returns the gs://<bucket>/<object> URI that gets logged.
type GCSUploader struct {
	client *gcs.Client
	bucket string
}

// NewGCSUploader uses application default credentials.
func NewGCSUploader(ctx context.Context, bucket string) (*GCSUploader, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{client: c, bucket: bucket}, nil
}

func (u *GCSUploader) Close() error { return u.client.Close() }

func (u *GCSUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	w := u.client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", objectName, err)
	}
	return objectURI(u.bucket, objectName), nil
}

func objectURI(bucket, objectName string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectName)
}
