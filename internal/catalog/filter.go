package catalog

import (
	"sort"
	"strings"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
	SortFeatured  = "featured"
)

// Filter is the storefront's product query: every zero field means "no
// constraint". Matching is a single linear pass over the static catalog.
type Filter struct {
	Category    string
	Material    string
	Gemstone    string
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	Sort        string
	Page        int
	PageSize    int
}

const (
	defaultPageSize = 12
	maxPageSize     = 48
)

// Page is one page of filtered results plus the totals the storefront needs
// to render pagination controls.
type Page struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	PageNumber int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

func (c *Catalog) Search(f Filter) Page {
	matched := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.matches(p) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, f.Sort)

	size := f.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	return Page{
		Items:      matched[start:end],
		Total:      len(matched),
		PageNumber: page,
		PageSize:   size,
	}
}

func (f Filter) matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.Material != "" && !strings.EqualFold(f.Material, p.Material) {
		return false
	}
	if f.Gemstone != "" && !strings.EqualFold(f.Gemstone, p.Gemstone) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	return true
}

func sortProducts(items []Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	case SortFeatured:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Featured && !items[j].Featured })
	}
	// Unknown or empty sort keeps catalog order.
}
