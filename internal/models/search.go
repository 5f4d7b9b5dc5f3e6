package models

import (
	"strings"

	"gorm.io/gorm"
)

// Fold is the case folding shared by stored search columns and query
// patterns. SQLite's LOWER only folds ASCII, so folding never happens in SQL.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func searchText(parts ...string) string {
	folded := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = Fold(p); p != "" {
			folded = append(folded, p)
		}
	}
	return strings.Join(folded, "\n")
}

// RefreshSearchKeys recomputes the folded columns from title, description
// and location.
func (v *Vacancy) RefreshSearchKeys() {
	v.SearchText = searchText(v.Title, v.Description, v.LocationText)
}

func (v *Vacancy) BeforeSave(*gorm.DB) error {
	v.RefreshSearchKeys()
	return nil
}

func (p *WorkerProfile) RefreshSearchKeys() {
	p.SearchText = searchText(p.Name, p.Headline, p.About, p.LocationText)
	p.CityKey = Fold(p.City)
	p.LocationKey = Fold(p.LocationText)
}

func (p *WorkerProfile) BeforeSave(*gorm.DB) error {
	p.RefreshSearchKeys()
	return nil
}
