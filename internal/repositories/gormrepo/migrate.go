package gormrepo

import (
	"fmt"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

const backfillBatch = 200

// Migrate creates or extends every table the API reads and writes, then
// fills folded search columns for rows written before they existed.
func Migrate(db *gorm.DB) error {
	entities := []any{
		&models.User{},
		&models.Session{},
		&models.Application{},
		&models.Vacancy{},
		&models.WorkerProfile{},
	}
	for _, e := range entities {
		if err := db.AutoMigrate(e); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", e, err)
		}
	}
	if err := backfillVacancyKeys(db); err != nil {
		return fmt.Errorf("failed to backfill vacancy search keys: %w", err)
	}
	if err := backfillProfileKeys(db); err != nil {
		return fmt.Errorf("failed to backfill profile search keys: %w", err)
	}
	return nil
}

func backfillVacancyKeys(db *gorm.DB) error {
	var rows []models.Vacancy
	return db.Where("search_text IS NULL OR search_text = ''").
		FindInBatches(&rows, backfillBatch, func(_ *gorm.DB, _ int) error {
			for i := range rows {
				rows[i].RefreshSearchKeys()
				if rows[i].SearchText == "" {
					continue
				}
				err := db.Model(&models.Vacancy{}).
					Where("id = ?", rows[i].ID).
					UpdateColumn("search_text", rows[i].SearchText).Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}

func backfillProfileKeys(db *gorm.DB) error {
	var rows []models.WorkerProfile
	return db.Where("search_text IS NULL OR search_text = '' OR city_key IS NULL").
		FindInBatches(&rows, backfillBatch, func(_ *gorm.DB, _ int) error {
			for i := range rows {
				p := &rows[i]
				p.RefreshSearchKeys()
				err := db.Model(&models.WorkerProfile{}).
					Where("id = ?", p.ID).
					UpdateColumns(map[string]any{
						"search_text":  p.SearchText,
						"city_key":     p.CityKey,
						"location_key": p.LocationKey,
					}).Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}
