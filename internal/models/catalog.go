package models

import (
	"strings"
	"time"
)

// Menu is a dish a restaurant offers.
type Menu struct {
	ID              int64     `json:"id"`
	StoreID         int64     `json:"storeId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           int       `json:"price"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	ThumbnailURL    *string   `json:"thumbnailUrl,omitempty"`
	Category        *string   `json:"category,omitempty"`
	IsAvailable     *bool     `json:"isAvailable,omitempty"`
	IsPopular       bool      `json:"isPopular"`
	IsRecommended   bool      `json:"isRecommended"`
	AllergenInfo    *string   `json:"allergenInfo,omitempty"`
	NutritionInfo   *string   `json:"nutritionInfo,omitempty"`
	PreparationTime *int      `json:"preparationTime,omitempty"` // minutes
	SpiceLevel      *int      `json:"spiceLevel,omitempty"`
	SortOrder       *int      `json:"sortOrder,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// MenuFilter narrows the available menus of one store. Empty fields do not filter.
type MenuFilter struct {
	StoreID     int64
	Category    string
	Popular     bool
	Recommended bool
}

// EventType classifies a restaurant promotion.
type EventType string

const (
	EventDiscount EventType = "DISCOUNT"
	EventGift     EventType = "GIFT"
	EventSpecial  EventType = "SPECIAL"
	EventSeasonal EventType = "SEASONAL"
)

// ParseEventType converts a case-insensitive name into an EventType.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(strings.ToUpper(strings.TrimSpace(s))); t {
	case EventDiscount, EventGift, EventSpecial, EventSeasonal:
		return t, true
	default:
		return "", false
	}
}

// Event is a promotion a restaurant runs for a period of time.
type Event struct {
	ID                 int64      `json:"id"`
	StoreID            int64      `json:"storeId"`
	Name               string     `json:"eventName"`
	Description        *string    `json:"eventDescription,omitempty"`
	Type               EventType  `json:"eventType"`
	DiscountRate       *int       `json:"discountRate,omitempty"`
	DiscountAmount     *int       `json:"discountAmount,omitempty"`
	MinOrderAmount     *int       `json:"minOrderAmount,omitempty"`
	ImageURL           *string    `json:"imageUrl,omitempty"`
	ThumbnailURL       *string    `json:"thumbnailUrl,omitempty"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            time.Time  `json:"endDate"`
	IsActive           bool       `json:"isActive"`
	IsPopular          bool       `json:"isPopular"`
	TermsAndConditions *string    `json:"termsAndConditions,omitempty"`
	SortOrder          int        `json:"sortOrder"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
}

// RunsAt reports whether the event is switched on and t falls inside its period.
func (e Event) RunsAt(t time.Time) bool {
	return e.IsActive && !t.Before(e.StartDate) && !t.After(e.EndDate)
}

// EventFilter narrows the events of one store. Zero fields do not filter.
type EventFilter struct {
	StoreID int64
	Type    EventType
	Popular bool
	// ActiveAt keeps only active events whose period contains the time.
	ActiveAt *time.Time
}
