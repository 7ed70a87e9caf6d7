package catalog

import (
	"testing"
	"time"

	"github.com/haeun/go-diary-store/internal/models"
	"github.com/shopspring/decimal"
)

func TestAllProductsStableOrder(t *testing.T) {
	cat := New()

	products := cat.AllProducts()
	if len(products) != 10 {
		t.Fatalf("Expected 10 seeded products, got %d", len(products))
	}
	for i, p := range cat.AllProducts() {
		if p.ID != products[i].ID {
			t.Errorf("Product order not stable at index %d", i)
		}
	}
}

func TestProductByID(t *testing.T) {
	cat := New()

	p, ok := cat.ProductByID("1")
	if !ok {
		t.Fatal("Expected product 1")
	}
	if p.Name != "2026 Minimal Daily Diary" {
		t.Errorf("Unexpected product name %q", p.Name)
	}

	if _, ok := cat.ProductByID("does-not-exist"); ok {
		t.Error("Expected miss for unknown id")
	}
}

func TestProductsByCategory(t *testing.T) {
	cat := New()

	daily := cat.ProductsByCategory(models.CategoryDaily)
	if len(daily) != 2 {
		t.Fatalf("Expected 2 daily products, got %d", len(daily))
	}
	if daily[0].ID != "1" || daily[1].ID != "8" {
		t.Errorf("Category filter must preserve declaration order, got %s, %s", daily[0].ID, daily[1].ID)
	}

	if got := cat.ProductsByCategory("no-such-category"); len(got) != 0 {
		t.Errorf("Expected empty result for unknown category, got %d", len(got))
	}
}

func TestCategoriesDistinctFirstSeen(t *testing.T) {
	cat := New()

	categories := cat.Categories()
	seen := make(map[string]bool)
	for _, c := range categories {
		if seen[c] {
			t.Errorf("Duplicate category %q", c)
		}
		seen[c] = true
	}
	if categories[0] != models.CategoryDaily {
		t.Errorf("Expected daily first, got %q", categories[0])
	}
}

func TestFlagAccessors(t *testing.T) {
	cat := New()

	for _, p := range cat.FeaturedProducts() {
		if !p.Featured {
			t.Errorf("Product %s not featured", p.ID)
		}
	}
	for _, p := range cat.BestsellerProducts() {
		if !p.Bestseller {
			t.Errorf("Product %s not a bestseller", p.ID)
		}
	}
	for _, p := range cat.NewProducts() {
		if !p.IsNew {
			t.Errorf("Product %s not new", p.ID)
		}
	}
}

func TestFilter(t *testing.T) {
	cat := New()

	got := cat.Filter(FilterOptions{
		MinPrice: decimal.NewFromInt(30000),
		MaxPrice: decimal.NewFromInt(40000),
	})
	for _, p := range got {
		if p.Price.LessThan(decimal.NewFromInt(30000)) || p.Price.GreaterThan(decimal.NewFromInt(40000)) {
			t.Errorf("Product %s price %s outside bounds", p.ID, p.Price)
		}
	}

	for _, p := range cat.Filter(FilterOptions{InStockOnly: true}) {
		if !p.InStock {
			t.Errorf("Product %s out of stock in in-stock filter", p.ID)
		}
	}

	got = cat.Filter(FilterOptions{Category: models.CategoryTravel})
	if len(got) != 1 || got[0].ID != "6" {
		t.Errorf("Expected only product 6 in travel, got %v", got)
	}
}

func TestSortProducts(t *testing.T) {
	cat := New()

	products := cat.AllProducts()
	SortProducts(products, SortPriceLow)
	for i := 1; i < len(products); i++ {
		if products[i].Price.LessThan(products[i-1].Price) {
			t.Fatalf("Products not sorted by ascending price at index %d", i)
		}
	}

	products = cat.AllProducts()
	SortProducts(products, SortPriceHigh)
	for i := 1; i < len(products); i++ {
		if products[i].Price.GreaterThan(products[i-1].Price) {
			t.Fatalf("Products not sorted by descending price at index %d", i)
		}
	}

	products = cat.AllProducts()
	SortProducts(products, SortRating)
	for i := 1; i < len(products); i++ {
		if products[i].Rating > products[i-1].Rating {
			t.Fatalf("Products not sorted by descending rating at index %d", i)
		}
	}
}

func TestListProducts(t *testing.T) {
	cat := New()
	products := cat.AllProducts()

	page := ListProducts(products, 1, 3)
	if page.Total != 10 || page.TotalPages != 4 {
		t.Errorf("Expected total 10 over 4 pages, got %d over %d", page.Total, page.TotalPages)
	}
	if len(page.Items) != 3 {
		t.Errorf("Expected 3 items on page 1, got %d", len(page.Items))
	}

	page = ListProducts(products, 4, 3)
	if len(page.Items) != 1 {
		t.Errorf("Expected 1 item on the last page, got %d", len(page.Items))
	}

	page = ListProducts(products, 5, 3)
	if len(page.Items) != 0 {
		t.Errorf("Expected empty page past the end, got %d items", len(page.Items))
	}
}

func TestEventLookups(t *testing.T) {
	cat := New()

	if got := cat.AllEvents(); len(got) != 3 {
		t.Fatalf("Expected 3 seeded events, got %d", len(got))
	}

	e, ok := cat.EventByID("event-1")
	if !ok {
		t.Fatal("Expected event-1")
	}
	if e.Discount != 30 {
		t.Errorf("Expected 30%% discount, got %d%%", e.Discount)
	}

	if _, ok := cat.EventByID("does-not-exist"); ok {
		t.Error("Expected miss for unknown event id")
	}
}

func TestActiveEventsFiltersOnFlagOnly(t *testing.T) {
	cat := New()

	// All seeded events are published regardless of their date windows.
	if got := cat.ActiveEvents(); len(got) != 3 {
		t.Errorf("Expected 3 active events, got %d", len(got))
	}
}

func TestEventDateBuckets(t *testing.T) {
	cat := New()
	now := date(2025, time.December, 15)

	running := cat.RunningEvents(now)
	if len(running) != 1 || running[0].ID != "event-2" {
		t.Errorf("Expected only event-2 running on Dec 15, got %v", ids(running))
	}

	upcoming := cat.UpcomingEvents(now)
	if len(upcoming) != 2 {
		t.Errorf("Expected 2 upcoming events, got %v", ids(upcoming))
	}

	now = date(2026, time.March, 10)
	ended := cat.EndedEvents(now)
	if len(ended) != 3 {
		t.Errorf("Expected all events ended by March, got %v", ids(ended))
	}
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
