package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups beers; a beer may belong to many categories.
type Category struct {
	ID               uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Version          int       `gorm:"column:version;not null;default:0"`
	Description      string    `gorm:"column:description"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date;autoUpdateTime"`
	Beers            []Beer    `gorm:"many2many:beer_category;"`
}

func (Category) TableName() string { return "categories" }
