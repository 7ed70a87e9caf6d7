package catalog

import (
	"time"

	"github.com/haeun/go-diary-store/internal/models"
	"github.com/shopspring/decimal"
)

func won(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:              "1",
			Name:            "2026 Minimal Daily Diary",
			Price:           won(28000),
			OriginalPrice:   won(35000),
			Category:        models.CategoryDaily,
			Description:     "A simple, minimal daily diary",
			LongDescription: "Clean layouts and a premium cover make this a diary you want to write in every day. Printed on heavyweight paper with an excellent writing feel.",
			Images: []string{
				"https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=800",
				"https://images.unsplash.com/photo-1517842645767-c639042777db?w=800",
			},
			Colors:      []string{"Black", "Navy", "Beige"},
			InStock:     true,
			Featured:    true,
			Bestseller:  true,
			Discount:    20,
			Rating:      4.8,
			ReviewCount: 156,
			Tags:        []string{"minimal", "daily", "bestseller"},
		},
		{
			ID:              "2",
			Name:            "Floral Weekly Planner",
			Price:           won(32000),
			Category:        models.CategoryWeekly,
			Description:     "A weekly planner with a delicate floral print",
			LongDescription: "A fine flower pattern covers this weekly planner, perfect for laying out a week at a glance. Generous note space and a sticker set included.",
			Images: []string{
				"https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
				"https://images.unsplash.com/photo-1506784365847-bbad939e9335?w=800",
			},
			Colors:      []string{"Pink", "Lavender", "Mint"},
			InStock:     true,
			Featured:    true,
			Rating:      4.6,
			ReviewCount: 89,
			Tags:        []string{"floral", "weekly"},
		},
		{
			ID:              "3",
			Name:            "Modern Monthly Organizer",
			Price:           won(25000),
			Category:        models.CategoryMonthly,
			Description:     "A monthly organizer with a modern layout",
			LongDescription: "See an entire month at a glance. Clean grid layouts keep scheduling simple, with monthly goal pages included.",
			Images: []string{
				"https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800",
				"https://images.unsplash.com/photo-1506784983877-45594efa4cbe?w=800",
			},
			Colors:      []string{"Gray", "White", "Black"},
			InStock:     true,
			Bestseller:  true,
			Rating:      4.7,
			ReviewCount: 124,
			Tags:        []string{"modern", "monthly"},
		},
		{
			ID:              "4",
			Name:            "Goal Tracker Diary",
			Price:           won(35000),
			OriginalPrice:   won(42000),
			Category:        models.CategoryGoal,
			Description:     "A tracker diary built for hitting goals",
			LongDescription: "Designed around systematic goal management: monthly and weekly goal setting, habit trackers, and achievement checklists.",
			Images: []string{
				"https://images.unsplash.com/photo-1517842645767-c639042777db?w=800",
				"https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
			},
			Colors:      []string{"Navy", "Forest Green", "Burgundy"},
			InStock:     true,
			Featured:    true,
			IsNew:       true,
			Discount:    17,
			Rating:      4.9,
			ReviewCount: 203,
			Tags:        []string{"goals", "self-improvement", "new"},
		},
		{
			ID:              "5",
			Name:            "Gratitude Journal",
			Price:           won(24000),
			Category:        models.CategoryGratitude,
			Description:     "A journal for recording daily gratitude",
			LongDescription: "Write down the things you are thankful for each day and build a more positive mindset. Morning and evening routine checks included.",
			Images: []string{
				"https://images.unsplash.com/photo-1506784983877-45594efa4cbe?w=800",
				"https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800",
			},
			Colors:      []string{"Cream", "Peach", "Sky Blue"},
			InStock:     true,
			Rating:      4.5,
			ReviewCount: 67,
			Tags:        []string{"gratitude", "wellness"},
		},
		{
			ID:              "6",
			Name:            "Travel Memory Book",
			Price:           won(38000),
			Category:        models.CategoryTravel,
			Description:     "A travel diary for keeping trip memories",
			LongDescription: "Record every moment of a trip, with space for photos, route maps, and packing checklists.",
			Images: []string{
				"https://images.unsplash.com/photo-1506784365847-bbad939e9335?w=800",
				"https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=800",
			},
			Colors:      []string{"Tan", "Olive", "Brown"},
			InStock:     true,
			IsNew:       true,
			Rating:      4.7,
			ReviewCount: 91,
			Tags:        []string{"travel", "memories"},
		},
		{
			ID:              "7",
			Name:            "Project Management Planner",
			Price:           won(42000),
			Category:        models.CategoryProject,
			Description:     "A planner for managing projects end to end",
			LongDescription: "Kanban-style spreads, milestone timelines, and retrospective pages for anyone juggling multiple projects.",
			Images: []string{
				"https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
				"https://images.unsplash.com/photo-1517842645767-c639042777db?w=800",
			},
			Colors:      []string{"Black", "Charcoal"},
			InStock:     true,
			Featured:    true,
			Rating:      4.6,
			ReviewCount: 112,
			Tags:        []string{"project", "work"},
		},
		{
			ID:              "8",
			Name:            "Premium Leather Edition Diary",
			Price:           won(58000),
			OriginalPrice:   won(72000),
			Category:        models.CategoryDaily,
			Description:     "A limited premium edition with a leather cover",
			LongDescription: "A limited-run premium diary bound in genuine leather, with gilded page edges and a ribbon marker.",
			Images: []string{
				"https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=800",
				"https://images.unsplash.com/photo-1506784365847-bbad939e9335?w=800",
			},
			Colors:      []string{"Brown", "Black"},
			InStock:     false,
			Featured:    true,
			Discount:    19,
			Rating:      4.9,
			ReviewCount: 48,
			Tags:        []string{"premium", "limited"},
		},
		{
			ID:              "9",
			Name:            "Dot Grid Note",
			Price:           won(18000),
			Category:        models.CategoryDotGrid,
			Description:     "A dot-grid note for free-form writing",
			LongDescription: "A 5mm dot grid suits both writing and drawing. Minimal design, lies flat at 180 degrees.",
			Images: []string{
				"https://images.unsplash.com/photo-1506784365847-bbad939e9335?w=800",
				"https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
			},
			Colors:      []string{"White", "Black", "Gray"},
			InStock:     true,
			Rating:      4.4,
			ReviewCount: 95,
			Tags:        []string{"dot-grid", "simple"},
		},
		{
			ID:              "10",
			Name:            "Creative Sketchbook Diary",
			Price:           won(29000),
			Category:        models.CategorySketch,
			Description:     "A sketchbook diary for creative work",
			LongDescription: "A sketchbook-diary hybrid for artists and designers, with heavy drawing paper that takes most media, plus dated entry space.",
			Images: []string{
				"https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=800",
				"https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800",
			},
			Colors:      []string{"Black", "Kraft", "Navy"},
			InStock:     true,
			IsNew:       true,
			Rating:      4.6,
			ReviewCount: 73,
			Tags:        []string{"sketch", "drawing"},
		},
	}
}

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          "event-1",
			Title:       "New Year Special",
			Description: "Up to 30% off across the catalog to ring in 2026",
			Image:       "https://images.unsplash.com/photo-1467810563316-b5476525c0f9?w=1200",
			StartDate:   date(2026, time.January, 1),
			EndDate:     date(2026, time.January, 31),
			Discount:    30,
			ProductIDs:  []string{"1", "3", "4", "7", "8"},
			IsActive:    true,
		},
		{
			ID:          "event-2",
			Title:       "Early Bird Discount",
			Description: "A special offer for customers who order ahead",
			Image:       "https://images.unsplash.com/photo-1513128034602-7814ccaddd4e?w=1200",
			StartDate:   date(2025, time.December, 1),
			EndDate:     date(2025, time.December, 31),
			Discount:    20,
			ProductIDs:  []string{"2", "5", "6", "9", "10"},
			IsActive:    true,
		},
		{
			ID:          "event-3",
			Title:       "Premium Edition Launch",
			Description: "A limited premium diary collection",
			Image:       "https://images.unsplash.com/photo-1506784365847-bbad939e9335?w=1200",
			StartDate:   date(2026, time.January, 15),
			EndDate:     date(2026, time.February, 28),
			ProductIDs:  []string{"8"},
			IsActive:    true,
		},
	}
}
