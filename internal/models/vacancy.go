package models

import (
	"time"

	"gorm.io/datatypes"
)

type PayType string

const (
	PayHour  PayType = "hour"
	PayShift PayType = "shift"
	PayFixed PayType = "fixed"
)

func (p PayType) Valid() bool {
	switch p {
	case "", PayHour, PayShift, PayFixed:
		return true
	}
	return false
}

type Vacancy struct {
	ID             uint                        `gorm:"column:id;primaryKey" json:"id"`
	UserID         *uint                       `gorm:"column:user_id;index" json:"userId"`
	ContactName    string                      `gorm:"column:contact_name;type:text" json:"contactName"`
	Phone          string                      `gorm:"column:phone;type:text" json:"phone"`
	LocationText   string                      `gorm:"column:location_text;type:text" json:"locationText"`
	CategoryIDs    datatypes.JSONSlice[string] `gorm:"column:category_ids" json:"categoryIds"`
	Title          string                      `gorm:"column:title;type:text" json:"title"`
	Description    string                      `gorm:"column:description;type:text" json:"description"`
	DateTime       string                      `gorm:"column:date_time;type:text" json:"dateTime"`
	IsFlexibleTime bool                        `gorm:"column:is_flexible_time" json:"isFlexibleTime"`
	Schedule       datatypes.JSONSlice[string] `gorm:"column:schedule" json:"schedule"`
	PayAmount      *float64                    `gorm:"column:pay_amount" json:"payAmount"`
	PayType        PayType                     `gorm:"column:pay_type;type:text" json:"payType"`
	Tags           datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	SearchText     string                      `gorm:"column:search_text;type:text" json:"-"`
	CreatedAt      time.Time                   `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt      time.Time                   `gorm:"column:updated_at" json:"updatedAt"`
}

func (Vacancy) TableName() string { return "vacancies" }

// VacancyFilter carries the already coerced search parameters. Nil and
// empty fields are not applied.
type VacancyFilter struct {
	Query        string
	Categories   []string
	Schedule     []string
	Tags         []string
	PayMin       *float64
	PayMax       *float64
	Date         string // YYYY-MM-DD
	FlexibleOnly bool
	Limit        int
	Offset       int
}
