package models

import (
	"time"

	"github.com/google/uuid"
)

// BeerOrder is a customer order made of one or more order lines.
type BeerOrder struct {
	ID               uuid.UUID          `json:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	Version          int                `json:"version" gorm:"column:version;not null;default:0"`
	CustomerRef      string             `json:"customerRef" gorm:"column:customer_ref"`
	CustomerID       uuid.UUID          `json:"customerId" gorm:"column:customer_id;type:varchar(36);not null;index"`
	Lines            []BeerOrderLine    `json:"beerOrderLines" gorm:"foreignKey:BeerOrderID;constraint:OnDelete:CASCADE"`
	Shipment         *BeerOrderShipment `json:"beerOrderShipment,omitempty" gorm:"foreignKey:BeerOrderID;constraint:OnDelete:CASCADE"`
	CreatedDate      time.Time          `json:"createdDate" gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time          `json:"lastModifiedDate" gorm:"column:last_modified_date;autoUpdateTime"`
}

func (BeerOrder) TableName() string { return "beer_orders" }

// BeerOrderLine is a single beer within an order.
type BeerOrderLine struct {
	ID                uuid.UUID `json:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	Version           int       `json:"version" gorm:"column:version;not null;default:0"`
	BeerOrderID       uuid.UUID `json:"-" gorm:"column:beer_order_id;type:varchar(36);not null;index"`
	BeerID            uuid.UUID `json:"beerId" gorm:"column:beer_id;type:varchar(36);not null;index"`
	OrderQuantity     int       `json:"orderQuantity" gorm:"column:order_quantity;not null"`
	QuantityAllocated int       `json:"quantityAllocated" gorm:"column:quantity_allocated;not null;default:0"`
	CreatedDate       time.Time `json:"createdDate" gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate  time.Time `json:"lastModifiedDate" gorm:"column:last_modified_date;autoUpdateTime"`
}

func (BeerOrderLine) TableName() string { return "beer_order_lines" }

// BeerOrderShipment records the carrier tracking number of a shipped order.
type BeerOrderShipment struct {
	ID               uuid.UUID `json:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	Version          int       `json:"version" gorm:"column:version;not null;default:0"`
	BeerOrderID      uuid.UUID `json:"-" gorm:"column:beer_order_id;type:varchar(36);not null;uniqueIndex"`
	TrackingNumber   string    `json:"trackingNumber" gorm:"column:tracking_number"`
	CreatedDate      time.Time `json:"createdDate" gorm:"column:created_date;autoCreateTime"`
	LastModifiedDate time.Time `json:"lastModifiedDate" gorm:"column:last_modified_date;autoUpdateTime"`
}

func (BeerOrderShipment) TableName() string { return "beer_order_shipments" }

// Routing keys of published order events.
const (
	OrderEventCreated = "order.created"
	OrderEventShipped = "order.shipped"
)

// BeerOrderCreateDTO is the request body that places an order.
type BeerOrderCreateDTO struct {
	CustomerID  uuid.UUID                `json:"customerId" validate:"required"`
	CustomerRef string                   `json:"customerRef" validate:"max=255"`
	Lines       []BeerOrderLineCreateDTO `json:"beerOrderLines" validate:"required,min=1,dive"`
}

// BeerOrderLineCreateDTO asks for a quantity of one beer.
type BeerOrderLineCreateDTO struct {
	BeerID        uuid.UUID `json:"beerId" validate:"required"`
	OrderQuantity int       `json:"orderQuantity" validate:"gt=0"`
}

// BeerOrderShipmentDTO is the request body that ships an order.
type BeerOrderShipmentDTO struct {
	TrackingNumber string `json:"trackingNumber" validate:"notblank,max=255"`
}
