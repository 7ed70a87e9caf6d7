package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description,omitempty"`
	Images          []string        `json:"images"`
	Colors          []string        `json:"colors,omitempty"`
	InStock         bool            `json:"in_stock"`
	Featured        bool            `json:"featured,omitempty"`
	Bestseller      bool            `json:"bestseller,omitempty"`
	IsNew           bool            `json:"is_new,omitempty"`
	Discount        int             `json:"discount,omitempty"`
	Rating          float64         `json:"rating,omitempty"`
	ReviewCount     int             `json:"review_count,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
}

// HasColor reports whether the product declares the given color variant.
// The empty variant is always accepted.
func (p *Product) HasColor(color string) bool {
	if color == "" {
		return true
	}
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// CartItem embeds a full product snapshot: catalog changes after the item
// was added do not retroactively reprice a persisted cart line.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Discount    int       `json:"discount,omitempty"`
	ProductIDs  []string  `json:"product_ids,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusRunning  EventStatus = "running"
	EventStatusEnded    EventStatus = "ended"
)

// Status derives the temporal status of the event from its date range.
// It is independent of IsActive, which is a publish flag: a published
// event can still be upcoming or already ended.
func (e *Event) Status(now time.Time) EventStatus {
	if now.Before(e.StartDate) {
		return EventStatusUpcoming
	}
	if now.After(e.EndDate) {
		return EventStatusEnded
	}
	return EventStatusRunning
}

// Running reports whether the event window contains now. Both bounds are
// inclusive.
func (e *Event) Running(now time.Time) bool {
	return e.Status(now) == EventStatusRunning
}

type ShippingInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ZipCode       string `json:"zip_code"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
	Message       string `json:"message,omitempty"`
}

// Order exists only between checkout submission and confirmation
// dismissal. It is never persisted.
type Order struct {
	Number      string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Email       string          `json:"email"`
}

const (
	CategoryDaily     = "daily"
	CategoryWeekly    = "weekly"
	CategoryMonthly   = "monthly"
	CategoryGoal      = "goal"
	CategoryGratitude = "gratitude"
	CategoryTravel    = "travel"
	CategoryProject   = "project"
	CategoryStudy     = "study"
	CategoryDotGrid   = "dot-grid"
	CategorySketch    = "sketch"
)
