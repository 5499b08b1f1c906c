package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer of beer orders.
type Customer struct {
	ID          uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Version     int       `gorm:"column:version;not null;default:0"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime"`
	UpdateDate  time.Time `gorm:"column:update_date;autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }

// CustomerDTO is the API shape of a customer.
type CustomerDTO struct {
	ID          uuid.UUID  `json:"id"`
	Version     int        `json:"version"`
	Name        string     `json:"name" validate:"notblank,max=255"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdateDate  *time.Time `json:"updateDate,omitempty"`
}
