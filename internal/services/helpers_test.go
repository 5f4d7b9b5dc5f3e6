package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "svc.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gormrepo.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }

type mockVacancies struct {
	mock.Mock
}

func (m *mockVacancies) Create(ctx context.Context, v *models.Vacancy) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVacancies) GetByID(ctx context.Context, id uint) (*models.Vacancy, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.Vacancy)
	return v, args.Error(1)
}

func (m *mockVacancies) ListByUser(ctx context.Context, userID uint) ([]models.Vacancy, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Vacancy), args.Error(1)
}

func (m *mockVacancies) Search(ctx context.Context, f models.VacancyFilter) ([]models.Vacancy, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Vacancy), args.Error(1)
}

func (m *mockVacancies) Update(ctx context.Context, v *models.Vacancy) (int64, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVacancies) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create(ctx context.Context, s *models.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSessions) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, objectName, contentType, string(body))
	return args.String(0), args.Error(1)
}
