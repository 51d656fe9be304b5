package domain

import (
	"fmt"
	"time"
)

// CacheEntry holds the metadata for one cached generated image.
// Entries are never deleted on expiry; staleness is a read-time check.
type CacheEntry struct {
	// ImagePath is the object-store path of the cached artifact.
	ImagePath string `json:"image_path"`
	// WeekID is the week the image was generated for.
	WeekID string `json:"week_id"`
	// FoodItem is the menu-item name the image illustrates, as scraped.
	FoodItem string `json:"food_item"`
	// Timestamp is when the entry was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// AgeAt returns how old the entry is at the given instant.
func (e CacheEntry) AgeAt(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// FreshAt reports whether the entry is within ttl at the given instant.
// The boundary is inclusive: age == ttl is still fresh.
func (e CacheEntry) FreshAt(now time.Time, ttl time.Duration) bool {
	return e.AgeAt(now) <= ttl
}

// MenuImagePath returns the object-store path for a cached per-day image.
func MenuImagePath(weekID WeekID, cacheKey string) string {
	return fmt.Sprintf("menu_images/%s/%s.png", weekID, cacheKey)
}

// CalendarPath returns the object-store path for a week's composed calendar.
func CalendarPath(weekID WeekID) string {
	return fmt.Sprintf("menu_calendars/%s/calendar.png", weekID)
}

// PDFPath returns the object-store path for a week's exported PDF.
func PDFPath(weekID WeekID) string {
	return fmt.Sprintf("menu_pdfs/%s/menu.pdf", weekID)
}
