package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer is the persisted catalog record.
type Beer struct {
	ID             uuid.UUID       `gorm:"column:id;type:varchar(36);primaryKey"`
	Version        int             `gorm:"column:version;not null;default:0"`
	BeerName       string          `gorm:"column:beer_name;type:varchar(50);not null;index"`
	BeerStyle      BeerStyle       `gorm:"column:beer_style;type:varchar(20);not null;index"`
	UPC            string          `gorm:"column:upc;type:varchar(255);not null"`
	QuantityOnHand *int            `gorm:"column:quantity_on_hand"`
	Price          decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
	CreatedDate    time.Time       `gorm:"column:created_date;autoCreateTime"`
	UpdateDate     time.Time       `gorm:"column:update_date;autoUpdateTime"`
	Categories     []Category      `gorm:"many2many:beer_category;"`
}

func (Beer) TableName() string { return "beers" }

// BeerDTO is the API shape of a beer. Id, version and the timestamps are
// owned by the store; values sent by a caller on create are discarded.
type BeerDTO struct {
	ID             uuid.UUID        `json:"id"`
	Version        int              `json:"version"`
	BeerName       string           `json:"beerName" validate:"notblank,max=50"`
	BeerStyle      BeerStyle        `json:"beerStyle" validate:"beer_style"`
	UPC            string           `json:"upc" validate:"notblank,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand,omitempty" validate:"omitempty,gte=0"`
	Price          *decimal.Decimal `json:"price" validate:"required"`
	CreatedDate    *time.Time       `json:"createdDate,omitempty"`
	UpdateDate     *time.Time       `json:"updateDate,omitempty"`
}
