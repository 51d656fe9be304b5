package domain

// RawDay is one day of scraped menu data before it is turned into a MenuItem.
type RawDay struct {
	Meal      string   `json:"meal"`
	Calories  *int     `json:"calories,omitempty"`
	Allergens []string `json:"allergens,omitempty"`
}

// RawWeek maps weekday keys to scraped day data. Produced by the scraping
// collaborator, either from a structured extract or the markdown fallback.
type RawWeek map[string]RawDay
