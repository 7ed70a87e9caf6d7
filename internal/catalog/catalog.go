package catalog

import (
	"sort"
	"time"

	"github.com/haeun/go-diary-store/internal/models"
	"github.com/shopspring/decimal"
)

// Catalog is the read-only product and event data source. It is populated
// once at construction and safe for concurrent readers; nothing mutates
// it afterwards.
type Catalog struct {
	products []models.Product
	events   []models.Event
}

// New returns a catalog seeded with the demo product and event data.
func New() *Catalog {
	return &Catalog{
		products: seedProducts(),
		events:   seedEvents(),
	}
}

// AllProducts returns every product in declaration order.
func (c *Catalog) AllProducts() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up a product. A miss is not an error.
func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i], true
		}
	}
	return models.Product{}, false
}

// ProductsByCategory filters by exact category, preserving order.
func (c *Catalog) ProductsByCategory(category string) []models.Product {
	var out []models.Product
	for i := range c.products {
		if c.products[i].Category == category {
			out = append(out, c.products[i])
		}
	}
	return out
}

func (c *Catalog) FeaturedProducts() []models.Product {
	var out []models.Product
	for i := range c.products {
		if c.products[i].Featured {
			out = append(out, c.products[i])
		}
	}
	return out
}

func (c *Catalog) BestsellerProducts() []models.Product {
	var out []models.Product
	for i := range c.products {
		if c.products[i].Bestseller {
			out = append(out, c.products[i])
		}
	}
	return out
}

func (c *Catalog) NewProducts() []models.Product {
	var out []models.Product
	for i := range c.products {
		if c.products[i].IsNew {
			out = append(out, c.products[i])
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range c.products {
		cat := c.products[i].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// FilterOptions narrows a product listing. Zero values mean "no
// constraint"; price bounds are inclusive.
type FilterOptions struct {
	Category    string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	InStockOnly bool
	Featured    bool
}

// Filter applies the options over the full catalog, preserving order.
func (c *Catalog) Filter(opts FilterOptions) []models.Product {
	var out []models.Product
	for i := range c.products {
		p := c.products[i]
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if !opts.MinPrice.IsZero() && p.Price.LessThan(opts.MinPrice) {
			continue
		}
		if !opts.MaxPrice.IsZero() && p.Price.GreaterThan(opts.MaxPrice) {
			continue
		}
		if opts.InStockOnly && !p.InStock {
			continue
		}
		if opts.Featured && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

type SortOption string

const (
	SortLatest    SortOption = "latest"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortPopular   SortOption = "popular"
	SortRating    SortOption = "rating"
)

// SortProducts orders a product slice in place. "latest" puts new
// arrivals first and otherwise keeps catalog order; "popular" and
// "rating" both sort by rating, matching the storefront behavior.
func SortProducts(products []models.Product, opt SortOption) {
	switch opt {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortPopular, SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortLatest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}

type OffsetPage struct {
	Items      []models.Product `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ListProducts pages over an already-filtered product slice. Pages are
// 1-based; a page past the end returns an empty item list.
func ListProducts(products []models.Product, page, pageSize int) *OffsetPage {
	total := len(products)

	offset := (page - 1) * pageSize
	var items []models.Product
	if offset < total {
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = products[offset:end]
	}

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &OffsetPage{
		Items:      items,
		Total:      int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// AllEvents returns every event in declaration order.
func (c *Catalog) AllEvents() []models.Event {
	out := make([]models.Event, len(c.events))
	copy(out, c.events)
	return out
}

// EventByID looks up an event. A miss is not an error.
func (c *Catalog) EventByID(id string) (models.Event, bool) {
	for i := range c.events {
		if c.events[i].ID == id {
			return c.events[i], true
		}
	}
	return models.Event{}, false
}

// ActiveEvents filters on the publish flag only. Whether an active event
// is currently running is a separate, date-derived question.
func (c *Catalog) ActiveEvents() []models.Event {
	var out []models.Event
	for i := range c.events {
		if c.events[i].IsActive {
			out = append(out, c.events[i])
		}
	}
	return out
}

// RunningEvents returns events whose date window contains now.
func (c *Catalog) RunningEvents(now time.Time) []models.Event {
	var out []models.Event
	for i := range c.events {
		if c.events[i].Status(now) == models.EventStatusRunning {
			out = append(out, c.events[i])
		}
	}
	return out
}

// UpcomingEvents returns events that have not started yet.
func (c *Catalog) UpcomingEvents(now time.Time) []models.Event {
	var out []models.Event
	for i := range c.events {
		if c.events[i].Status(now) == models.EventStatusUpcoming {
			out = append(out, c.events[i])
		}
	}
	return out
}

// EndedEvents returns events whose window has passed.
func (c *Catalog) EndedEvents(now time.Time) []models.Event {
	var out []models.Event
	for i := range c.events {
		if c.events[i].Status(now) == models.EventStatusEnded {
			out = append(out, c.events[i])
		}
	}
	return out
}
