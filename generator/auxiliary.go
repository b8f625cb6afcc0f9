package generator

import "hotel-data-generator/models"

// Local event distribution for the market table.
var (
	localEvents   = []string{"None", "Concert", "Conference", "Holiday"}
	localEventWts = []float64{0.80, 0.05, 0.10, 0.05}
)

// Competitor rate bands and the dynamic-pricing noise band.
const (
	competitorAMin = 700000
	competitorAMax = 1800000
	competitorBMin = 750000
	competitorBMax = 1900000

	rateAdjustMin = -0.15
	rateAdjustMax = 0.25
)

// marketData draws one independent market-conditions row per stay day.
func (g *Generator) marketData() []*models.MarketDay {
	var rows []*models.MarketDay
	for d := g.cfg.StayStart; !d.After(g.cfg.StayEnd); d = d.AddDays(1) {
		rows = append(rows, &models.MarketDay{
			Date:            d,
			LocalEvent:      weightedString(g.rng, localEvents, localEventWts),
			CompetitorARate: round2(uniform(g.rng, competitorAMin, competitorAMax)),
			CompetitorBRate: round2(uniform(g.rng, competitorBMin, competitorBMax)),
			DemandIndex:     intBetween(g.rng, 1, 10),
		})
	}
	return rows
}

// inventoryData snapshots the occupancy tracker into one row per stay
// day and room type.
func (g *Generator) inventoryData(tracker *Tracker) []*models.InventoryDay {
	var rows []*models.InventoryDay
	for d := g.cfg.StayStart; !d.After(g.cfg.StayEnd); d = d.AddDays(1) {
		for _, rt := range g.cfg.RoomTypes {
			occupied := tracker.Occupied(d, rt.Name)
			rate := 0.0
			if rt.Total > 0 {
				rate = float64(occupied) / float64(rt.Total)
			}
			rows = append(rows, &models.InventoryDay{
				Date:          d,
				RoomType:      rt.Name,
				Total:         rt.Total,
				Occupied:      occupied,
				Available:     rt.Total - occupied,
				OccupancyRate: round3(rate),
			})
		}
	}
	return rows
}

// dailyRates draws an independent dynamic nightly rate per stay day and
// room type: base rate plus bounded random adjustment.
func (g *Generator) dailyRates() []*models.DailyRate {
	var rows []*models.DailyRate
	for d := g.cfg.StayStart; !d.After(g.cfg.StayEnd); d = d.AddDays(1) {
		for _, rt := range g.cfg.RoomTypes {
			adj := round3(uniform(g.rng, rateAdjustMin, rateAdjustMax))
			rows = append(rows, &models.DailyRate{
				Date:        d,
				RoomType:    rt.Name,
				BaseRate:    rt.BaseRate,
				Adjustment:  adj,
				DynamicRate: round2(rt.BaseRate * (1 + adj)),
			})
		}
	}
	return rows
}
