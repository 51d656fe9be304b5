// Package domain contains core domain types for the lunch calendar generator.
package domain

import (
	"strings"
	"time"
)

// Weekdays lists the weekday keys of a school week in layout order.
var Weekdays = [5]string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// sentinelNames are menu-item names that mean "no meal to illustrate".
// Matching is case-insensitive.
var sentinelNames = map[string]struct{}{
	"no school": {},
	"holiday":   {},
	"skip":      {},
	"no menu":   {},
}

// NutritionalInfo holds the macros and allergens for one menu item.
// Fields are pointers so that "absent" and "zero" stay distinguishable.
// Immutable once constructed; owned exclusively by its MenuItem.
type NutritionalInfo struct {
	Calories  *int     `json:"calories,omitempty"`
	ProteinG  *float64 `json:"protein_g,omitempty"`
	CarbsG    *float64 `json:"carbs_g,omitempty"`
	FatG      *float64 `json:"fat_g,omitempty"`
	FiberG    *float64 `json:"fiber_g,omitempty"`
	SodiumMG  *int     `json:"sodium_mg,omitempty"`
	Allergens []string `json:"allergens,omitempty"`
}

// HasData reports whether any of the headline macros is present.
// Fiber, sodium and allergens alone do not count as nutrition data.
func (n *NutritionalInfo) HasData() bool {
	if n == nil {
		return false
	}
	return n.Calories != nil || n.ProteinG != nil || n.CarbsG != nil || n.FatG != nil
}

// MenuItem describes one day's lunch and its metadata.
type MenuItem struct {
	Name      string           `json:"name"`
	Day       string           `json:"day"`
	Date      string           `json:"date"`
	ImageURL  string           `json:"image_url,omitempty"`
	Nutrition *NutritionalInfo `json:"nutrition,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// SkipsGeneration reports whether the item's name means there is no meal
// to illustrate, e.g. "No School" or "Holiday". Image generation and
// caching are bypassed entirely for such items.
func (m MenuItem) SkipsGeneration() bool {
	if m.Name == "" {
		return true
	}
	_, ok := sentinelNames[strings.ToLower(m.Name)]
	return ok
}

// WeekMenu maps weekday keys to menu items. At most five entries,
// monday through friday.
type WeekMenu map[string]MenuItem

// Ordered returns the menu items in Monday-to-Friday order, skipping
// days that have no entry. Layout code relies on this ordering.
func (w WeekMenu) Ordered() []MenuItem {
	items := make([]MenuItem, 0, len(w))
	for _, day := range Weekdays {
		if item, ok := w[day]; ok {
			items = append(items, item)
		}
	}
	return items
}

// IsWeekday reports whether day is one of the five lower-case weekday keys.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// MenuDocument is the persisted record of a finished week: the menu items
// and the public URL of the composed calendar.
type MenuDocument struct {
	WeekID      WeekID    `json:"week_id"`
	Items       WeekMenu  `json:"menu_items"`
	CalendarURL string    `json:"calendar_url"`
	CreatedAt   time.Time `json:"created_at"`
}
