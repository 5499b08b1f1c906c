package pagination

import "math"

const (
	// DefaultPage is the page returned when no page number is requested.
	DefaultPage = 0
	// DefaultSize is the standard page size when a size is not provided.
	DefaultSize = 25
	// MaxSize caps how many rows any page query can request.
	MaxSize = 1000
	// MaxPage is the largest page number whose offset fits in an int at any
	// page size.
	MaxPage = math.MaxInt / MaxSize
)

// DefaultSort is the only ordering list queries use.
const DefaultSort = "beer_name asc"

// PageSpec is a sanitized page request. Number is zero based.
type PageSpec struct {
	Number int
	Size   int
	Sort   string
}

// BuildPageSpec normalizes the raw page inputs. It never rejects a value:
// missing or non-positive numbers fall back to the defaults, oversized
// pages are clamped and page numbers are capped at MaxPage.
func BuildPageSpec(pageNumber, pageSize *int) PageSpec {
	number := DefaultPage
	if pageNumber != nil && *pageNumber > 0 {
		number = *pageNumber
	}
	if number > MaxPage {
		number = MaxPage
	}

	size := DefaultSize
	if pageSize != nil && *pageSize > 0 {
		size = *pageSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return PageSpec{Number: number, Size: size, Sort: DefaultSort}
}

// Offset returns the number of rows to skip for this page. It saturates at
// math.MaxInt instead of overflowing.
func (p PageSpec) Offset() int {
	if p.Number <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Page is one slice of a larger result set plus the metadata describing it.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// NewPage assembles a page for spec from the rows of that page and the total
// row count of the unpaged query.
func NewPage[T any](content []T, spec PageSpec, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if spec.Size > 0 {
		pages = int((total + int64(spec.Size) - 1) / int64(spec.Size))
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    pages,
		Number:        spec.Number,
		Size:          spec.Size,
	}
}

// Map converts every element of a page, keeping the page metadata.
func Map[T, U any](page Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(page.Content))
	for _, item := range page.Content {
		out = append(out, fn(item))
	}
	return Page[U]{
		Content:       out,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Number:        page.Number,
		Size:          page.Size,
	}
}
