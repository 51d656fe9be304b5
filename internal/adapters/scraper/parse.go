package scraper

import (
	"time"

	"go.trai.ch/lunchcal/internal/core/domain"
)

// fallbackMeal names a day the scrape found but could not read. It is in
// the sentinel set, so no image is generated for it.
const fallbackMeal = "No menu"

// ParseMenuData turns raw scraped data into a week menu dated relative to
// now. Days the scrape did not cover are left out.
func ParseMenuData(raw domain.RawWeek, now time.Time, offset int) domain.WeekMenu {
	menu := make(domain.WeekMenu)
	dates := domain.WeekDates(now, offset)

	for _, day := range domain.Weekdays {
		rawDay, ok := raw[day]
		if !ok {
			continue
		}

		name := rawDay.Meal
		if name == "" {
			name = fallbackMeal
		}

		var nutrition *domain.NutritionalInfo
		if rawDay.Calories != nil || len(rawDay.Allergens) > 0 {
			nutrition = &domain.NutritionalInfo{
				Calories:  rawDay.Calories,
				Allergens: rawDay.Allergens,
			}
		}

		menu[day] = domain.MenuItem{
			Name:      name,
			Day:       day,
			Date:      dates[day],
			Nutrition: nutrition,
		}
	}

	return menu
}
