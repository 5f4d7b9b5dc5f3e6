package services

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/logger"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/storage"
	"github.com/yoockh/jardam/internal/utils"
)

const (
	ExportFileName    = "tokmaker_applications.csv"
	ExportContentType = "text/csv"
	exportHeader      = "id,name,contact,address,category,otherCategoryText,description,datetime,price,created_at\n"
	isoMillis         = "2006-01-02T15:04:05.000Z07:00"
)

type ExportService interface {
	ApplicationsCSV(ctx context.Context) ([]byte, error)
}

type exportService struct {
	apps     gormrepo.ApplicationRepository
	uploader storage.Uploader
	log      logrus.FieldLogger
}

// NewExportService takes a nil uploader when archiving is not configured.
func NewExportService(apps gormrepo.ApplicationRepository, uploader storage.Uploader, log logrus.FieldLogger) ExportService {
	return &exportService{apps: apps, uploader: uploader, log: log}
}

func (s *exportService) ApplicationsCSV(ctx context.Context) ([]byte, error) {
	const op = "ExportService.ApplicationsCSV"

	rows, err := s.apps.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	out := EncodeApplicationsCSV(rows)

	if s.uploader != nil {
		name := storage.ExportObjectName(time.Now())
		path, err := s.uploader.Upload(ctx, name, ExportContentType, bytes.NewReader(out))
		if err != nil {
			s.log.WithError(err).WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).Error("export archive upload failed")
		} else {
			s.log.WithField("path", path).Info("export archived")
		}
	}
	return out, nil
}

// EncodeApplicationsCSV quotes every text cell and doubles embedded quotes;
// id and created_at are written bare.
func EncodeApplicationsCSV(rows []models.Application) []byte {
	var b strings.Builder
	b.WriteString(exportHeader)
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		cells := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			quoteCell(r.Name),
			quoteCell(r.Contact),
			quoteCell(r.Address),
			quoteCell(r.Category),
			quoteCell(r.OtherCategoryText),
			quoteCell(r.Description),
			quoteCell(r.Datetime),
			quoteCell(r.Price),
			r.CreatedAt.UTC().Format(isoMillis),
		}
		b.WriteString(strings.Join(cells, ","))
	}
	return []byte(b.String())
}

func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
