package models

// AllModels lists every persisted model, for migrations.
func AllModels() []any {
	return []any{
		&User{},
		&Beer{},
		&Category{},
		&Customer{},
		&BeerOrder{},
		&BeerOrderLine{},
		&BeerOrderShipment{},
	}
}
