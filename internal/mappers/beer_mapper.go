package mappers

import (
	"time"

	"taproom/internal/models"

	"github.com/shopspring/decimal"
)

// BeerToBeerDTO copies every field of beer into its API shape.
func BeerToBeerDTO(beer models.Beer) models.BeerDTO {
	price := beer.Price
	return models.BeerDTO{
		ID:             beer.ID,
		Version:        beer.Version,
		BeerName:       beer.BeerName,
		BeerStyle:      beer.BeerStyle,
		UPC:            beer.UPC,
		QuantityOnHand: copyInt(beer.QuantityOnHand),
		Price:          &price,
		CreatedDate:    timePtr(beer.CreatedDate),
		UpdateDate:     timePtr(beer.UpdateDate),
	}
}

// BeerDTOToBeer builds a new entity from dto. Id, version and timestamps are
// left zero so the store assigns them.
func BeerDTOToBeer(dto models.BeerDTO) models.Beer {
	price := decimal.Zero
	if dto.Price != nil {
		price = *dto.Price
	}
	return models.Beer{
		BeerName:       dto.BeerName,
		BeerStyle:      dto.BeerStyle,
		UPC:            dto.UPC,
		QuantityOnHand: copyInt(dto.QuantityOnHand),
		Price:          price,
	}
}

// BeersToBeerDTOs maps beers keeping their order.
func BeersToBeerDTOs(beers []models.Beer) []models.BeerDTO {
	out := make([]models.BeerDTO, 0, len(beers))
	for _, beer := range beers {
		out = append(out, BeerToBeerDTO(beer))
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
