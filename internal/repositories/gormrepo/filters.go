package gormrepo

import (
	"strings"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// containsAny matches rows whose serialized list column contains at least one
// of values. An empty values slice leaves the query untouched.
func containsAny(column string, values []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		conds := make([]string, 0, len(values))
		args := make([]any, 0, len(values))
		for _, v := range values {
			conds = append(conds, "CAST("+column+" AS TEXT) LIKE ? ESCAPE '\\'")
			args = append(args, likePattern(v))
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// foldedMatch is a case-insensitive substring match over columns that
// already hold models.Fold output.
func foldedMatch(query string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q := models.Fold(query)
		if q == "" || len(columns) == 0 {
			return db
		}
		pattern := likePattern(q)
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, c+" LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func atLeast(column string, v *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(column+" >= ?", *v)
	}
}

func atMost(column string, v *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		return db.Where(column+" <= ?", *v)
	}
}

// sameDay compares the calendar date prefix of a stored "YYYY-MM-DDTHH:MM"
// string, so time of day never matters.
func sameDay(column, date string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if date == "" {
			return db
		}
		return db.Where("SUBSTR("+column+", 1, 10) = ?", date)
	}
}

func paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
