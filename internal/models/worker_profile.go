package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkerProfile struct {
	ID              uint                        `gorm:"column:id;primaryKey" json:"id"`
	UserID          *uint                       `gorm:"column:user_id;index" json:"userId"`
	Name            string                      `gorm:"column:name;type:text" json:"name"`
	Phone           string                      `gorm:"column:phone;type:text" json:"phone"`
	Categories      datatypes.JSONSlice[string] `gorm:"column:categories" json:"categories"`
	Headline        string                      `gorm:"column:headline;type:text" json:"headline"`
	Availability    datatypes.JSONSlice[string] `gorm:"column:availability" json:"availability"`
	PayMin          *float64                    `gorm:"column:pay_min" json:"payMin"`
	PayType         PayType                     `gorm:"column:pay_type;type:text" json:"payType"`
	City            string                      `gorm:"column:city;type:text" json:"city"`
	LocationText    string                      `gorm:"column:location_text;type:text" json:"locationText"`
	About           string                      `gorm:"column:about;type:text" json:"about"`
	ExperienceLevel string                      `gorm:"column:experience_level;type:text" json:"experienceLevel"`
	Languages       datatypes.JSONSlice[string] `gorm:"column:languages" json:"languages"`
	WorkFormat      datatypes.JSONSlice[string] `gorm:"column:work_format" json:"workFormat"`
	ContactMethods  datatypes.JSONSlice[string] `gorm:"column:contact_methods" json:"contactMethods"`
	Age             *int                        `gorm:"column:age" json:"age"`
	Tags            datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	SearchText      string                      `gorm:"column:search_text;type:text" json:"-"`
	CityKey         string                      `gorm:"column:city_key;type:text;index" json:"-"`
	LocationKey     string                      `gorm:"column:location_key;type:text" json:"-"`
	CreatedAt       time.Time                   `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at" json:"updatedAt"`
}

func (WorkerProfile) TableName() string { return "worker_profiles" }

type ProfileFilter struct {
	Query           string
	Categories      []string
	Availability    []string
	Languages       []string
	WorkFormat      []string
	PayMin          *float64
	PayMax          *float64
	City            string
	Location        string
	ExperienceLevel string
	Limit           int
	Offset          int
}
