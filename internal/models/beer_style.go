package models

import (
	"fmt"
	"strings"
)

// BeerStyle is the closed set of beer categories the catalog accepts.
type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

var beerStyles = []BeerStyle{
	BeerStyleLager,
	BeerStylePilsner,
	BeerStyleStout,
	BeerStyleGose,
	BeerStylePorter,
	BeerStyleAle,
	BeerStyleWheat,
	BeerStyleIPA,
	BeerStylePaleAle,
	BeerStyleSaison,
}

// BeerStyles lists every valid style.
func BeerStyles() []BeerStyle {
	out := make([]BeerStyle, len(beerStyles))
	copy(out, beerStyles)
	return out
}

func (s BeerStyle) String() string { return string(s) }

// Valid reports whether s is one of the known styles.
func (s BeerStyle) Valid() bool {
	for _, style := range beerStyles {
		if s == style {
			return true
		}
	}
	return false
}

// ParseBeerStyle accepts a style name in any letter case.
func ParseBeerStyle(value string) (BeerStyle, error) {
	style := BeerStyle(strings.ToUpper(strings.TrimSpace(value)))
	if !style.Valid() {
		return "", fmt.Errorf("invalid beer style %q", value)
	}
	return style, nil
}
