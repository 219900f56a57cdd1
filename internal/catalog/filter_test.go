package catalog

import "testing"

func testCatalog() *Catalog {
	return New([]Product{
		{ID: "a", Name: "Bangle", Category: CategoryBracelets, Material: "18k yellow gold", Price: 900, InStock: true},
		{ID: "b", Name: "Aurore Ring", Category: CategoryRings, Material: "platinum", Gemstone: "diamond", Price: 4800, Featured: true, InStock: true},
		{ID: "c", Name: "Cuff", Category: CategoryBracelets, Material: "18k rose gold", Price: 2100, InStock: false},
		{ID: "d", Name: "Studs", Category: CategoryEarrings, Material: "platinum", Gemstone: "diamond", Price: 2900, InStock: true},
	}, nil)
}

func TestSearchByCategory(t *testing.T) {
	page := testCatalog().Search(Filter{Category: "bracelets"})
	if page.Total != 2 {
		t.Fatalf("expected 2 bracelets, got %d", page.Total)
	}
	for _, p := range page.Items {
		if p.Category != CategoryBracelets {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}

func TestSearchPriceRangeAndStock(t *testing.T) {
	page := testCatalog().Search(Filter{MinPrice: 1000, MaxPrice: 3000, InStockOnly: true})
	if page.Total != 1 || page.Items[0].ID != "d" {
		t.Fatalf("expected only product d, got %+v", page.Items)
	}
}

func TestSearchSortPriceAsc(t *testing.T) {
	page := testCatalog().Search(Filter{Sort: SortPriceAsc})
	prev := 0.0
	for _, p := range page.Items {
		if p.Price < prev {
			t.Fatalf("items not sorted ascending by price: %+v", page.Items)
		}
		prev = p.Price
	}
}

func TestSearchSortFeaturedFirst(t *testing.T) {
	page := testCatalog().Search(Filter{Sort: SortFeatured})
	if !page.Items[0].Featured {
		t.Fatalf("expected featured item first, got %+v", page.Items[0])
	}
}

func TestSearchPagination(t *testing.T) {
	c := testCatalog()
	page := c.Search(Filter{PageSize: 3, Page: 1})
	if len(page.Items) != 3 || page.Total != 4 {
		t.Fatalf("page 1: expected 3 of 4 items, got %d of %d", len(page.Items), page.Total)
	}
	page = c.Search(Filter{PageSize: 3, Page: 2})
	if len(page.Items) != 1 {
		t.Fatalf("page 2: expected 1 item, got %d", len(page.Items))
	}
	page = c.Search(Filter{PageSize: 3, Page: 5})
	if len(page.Items) != 0 {
		t.Fatalf("past-the-end page should be empty, got %d items", len(page.Items))
	}
}

func TestDefaultCatalogLookups(t *testing.T) {
	c := Default()
	ct, ok := c.Consultation("custom-design")
	if !ok {
		t.Fatal("custom-design consultation missing from default catalog")
	}
	if ct.BasePrice != 150 {
		t.Fatalf("expected Custom Design base price 150, got %v", ct.BasePrice)
	}
	if _, ok := c.Product("no-such-id"); ok {
		t.Fatal("expected lookup miss for unknown product id")
	}
}
