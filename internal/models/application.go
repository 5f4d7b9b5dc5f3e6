package models

import "time"

// Application is the legacy free-form employer posting.
type Application struct {
	ID                uint      `gorm:"column:id;primaryKey" json:"id"`
	Name              string    `gorm:"column:name;type:text;not null" json:"name"`
	Contact           string    `gorm:"column:contact;type:text;not null" json:"contact"`
	Address           string    `gorm:"column:address;type:text" json:"address"`
	Category          string    `gorm:"column:category;type:text" json:"category"`
	OtherCategoryText string    `gorm:"column:other_category_text;type:text" json:"otherCategoryText"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	Datetime          string    `gorm:"column:datetime;type:text" json:"datetime"`
	Price             string    `gorm:"column:price;type:text" json:"price"`
	CreatedAt         time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UserID            *uint     `gorm:"column:user_id;index" json:"userId"`
}

func (Application) TableName() string { return "applications" }
