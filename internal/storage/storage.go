package storage

import (
	"context"
	"io"
	"time"
)

// Uploader writes an object and returns where it was stored.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

const exportStamp = "20060102T150405Z"

// ExportObjectName names the archived CSV for an applications export taken at
// t: exports/applications-<UTC stamp>.csv, for example
// exports/applications-20240501T090000Z.csv. Names sort by export time.
func ExportObjectName(t time.Time) string {
	return "exports/applications-" + t.UTC().Format(exportStamp) + ".csv"
}
