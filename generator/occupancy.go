package generator

import (
	"math/rand"

	"hotel-data-generator/models"
)

// OccupancyForDate returns the target occupancy fraction for a check-in
// date. With tiers, the date's calendar-month offset from today picks a
// tier and the target is drawn from that tier's range: near-term dates
// run hot, far-future dates run cold, past dates count as near-term.
// Without tiers, the target is drawn from the fallback range.
// Inputs are percentages; the result is a fraction in [0, 1].
func OccupancyForDate(rng *rand.Rand, checkin, today models.Date, tiers *models.OccupancyTiers, fallbackMin, fallbackMax int) float64 {
	if tiers == nil {
		return uniform(rng, float64(fallbackMin)/100, float64(fallbackMax)/100)
	}

	tier := tiers.ForMonthOffset(today.MonthsUntil(checkin))
	return uniform(rng, float64(tier.Min)/100, float64(tier.Max)/100)
}
