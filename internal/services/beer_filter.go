package services

import (
	"strings"

	"taproom/internal/models"
)

// BeerFilterKind identifies which store lookup serves a list request.
type BeerFilterKind int

const (
	FilterAll BeerFilterKind = iota
	FilterByName
	FilterByStyle
	FilterByStyleAndName
)

func (k BeerFilterKind) String() string {
	switch k {
	case FilterByName:
		return "name"
	case FilterByStyle:
		return "style"
	case FilterByStyleAndName:
		return "style_and_name"
	default:
		return "all"
	}
}

// BeerFilter is the lookup chosen for a list request. NamePattern is the
// SQL LIKE pattern for name lookups; Style is set for style lookups.
type BeerFilter struct {
	Kind        BeerFilterKind
	NamePattern string
	Style       models.BeerStyle
}

// ChooseBeerFilter picks exactly one lookup from the presence of name and
// style. A name counts as present when it holds a non-whitespace character.
func ChooseBeerFilter(name string, style *models.BeerStyle) BeerFilter {
	hasName := strings.TrimSpace(name) != ""
	hasStyle := style != nil

	switch {
	case hasName && hasStyle:
		return BeerFilter{Kind: FilterByStyleAndName, NamePattern: namePattern(name), Style: *style}
	case hasName:
		return BeerFilter{Kind: FilterByName, NamePattern: namePattern(name)}
	case hasStyle:
		return BeerFilter{Kind: FilterByStyle, Style: *style}
	default:
		return BeerFilter{Kind: FilterAll}
	}
}

func namePattern(name string) string {
	return "%" + name + "%"
}
