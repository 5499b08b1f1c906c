package bootstrap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"taproom/internal/models"

	"github.com/shopspring/decimal"
)

const maxBeerName = 50

var csvPrice = decimal.NewFromInt(10)

// BeerCSVRecord is one row of the beer catalog CSV, whose columns are row,
// count_x, abv, ibu, id, beer, style_id, style, brewery_id, ounces, style2,
// count_y, city, state and label.
type BeerCSVRecord struct {
	Row       int
	CountX    int
	ABV       string
	IBU       string
	ID        int
	Name      string
	StyleID   int
	Style     string
	BreweryID int
	Ounces    float64
	Style2    string
	CountY    string
	City      string
	State     string
	Label     string
}

// Beer converts the record to a catalog entry.
func (r BeerCSVRecord) Beer() models.Beer {
	name := r.Name
	if runes := []rune(name); len(runes) > maxBeerName {
		name = string(runes[:maxBeerName])
	}
	qty := r.CountX
	return models.Beer{
		BeerName:       name,
		BeerStyle:      StyleFromCSV(r.Style),
		UPC:            strconv.Itoa(r.Row),
		QuantityOnHand: &qty,
		Price:          csvPrice,
	}
}

// StyleFromCSV maps the free-form style of the CSV onto a catalog style.
// Unknown styles become PILSNER.
func StyleFromCSV(style string) models.BeerStyle {
	switch style {
	case "American Pale Lager":
		return models.BeerStyleLager
	case "American Pale Ale (APA)", "American Black Ale", "Belgian Dark Ale", "American Blonde Ale":
		return models.BeerStyleAle
	case "American IPA", "American Double / Imperial IPA", "Belgian IPA":
		return models.BeerStyleIPA
	case "American Porter":
		return models.BeerStylePorter
	case "Oatmeal Stout", "American Stout":
		return models.BeerStyleStout
	case "Saison / Farmhouse Ale":
		return models.BeerStyleSaison
	case "Fruit / Vegetable Beer", "Winter Warmer", "Berliner Weissbier":
		return models.BeerStyleWheat
	case "English Pale Ale":
		return models.BeerStylePaleAle
	default:
		return models.BeerStylePilsner
	}
}

// ReadBeerCSV reads every record of the CSV file at path.
func ReadBeerCSV(path string) ([]BeerCSVRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open beer csv: %w", err)
	}
	defer f.Close()
	return ParseBeerCSV(f)
}

// ParseBeerCSV reads beer records from r. The first line is a header naming
// the columns; columns may come in any order.
func ParseBeerCSV(r io.Reader) ([]BeerCSVRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read beer csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, col := range []string{"row", "count_x", "beer", "style"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("beer csv is missing column %q", col)
		}
	}

	var records []BeerCSVRecord
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read beer csv line %d: %w", line, err)
		}
		record, err := parseRecord(index, fields)
		if err != nil {
			return nil, fmt.Errorf("beer csv line %d: %w", line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRecord(index map[string]int, fields []string) (BeerCSVRecord, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}
	atoi := func(col string) (int, error) {
		raw := get(col)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", col, err)
		}
		return v, nil
	}

	var (
		record BeerCSVRecord
		err    error
	)
	for col, dest := range map[string]*int{
		"row":        &record.Row,
		"count_x":    &record.CountX,
		"id":         &record.ID,
		"style_id":   &record.StyleID,
		"brewery_id": &record.BreweryID,
	} {
		if *dest, err = atoi(col); err != nil {
			return BeerCSVRecord{}, err
		}
	}
	if raw := get("ounces"); raw != "" {
		if record.Ounces, err = strconv.ParseFloat(raw, 64); err != nil {
			return BeerCSVRecord{}, fmt.Errorf("column ounces: %w", err)
		}
	}

	record.ABV = get("abv")
	record.IBU = get("ibu")
	record.Name = get("beer")
	record.Style = get("style")
	record.Style2 = get("style2")
	record.CountY = get("count_y")
	record.City = get("city")
	record.State = get("state")
	record.Label = get("label")
	return record, nil
}
