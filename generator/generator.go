package generator

import (
	"fmt"
	"math/rand"
	"time"

	"hotel-data-generator/models"
	"hotel-data-generator/utils"
)

const (
	maxAdvanceDays     = 90   // booking lead time cap
	earlyBirdThreshold = 30   // days of advance that force the early-bird plan
	memberProbability  = 0.30 // share of bookings carrying the member discount
	confirmProbability = 0.90
	maxNights          = 7
)

// Channel preference tables. Members book direct far more often;
// non-members lean on OTAs.
var (
	memberChannels      = []string{"Direct", "Website", "OTA", "Walk-in"}
	memberChannelWts    = []float64{0.45, 0.35, 0.15, 0.05}
	nonMemberChannels   = []string{"OTA", "Website", "Direct", "Walk-in"}
	nonMemberChannelWts = []float64{0.40, 0.30, 0.20, 0.10}
)

// Generator synthesizes one full hotel dataset from a configuration.
// All randomness flows through a single seedable source, so a run with
// an explicit seed is reproducible.
type Generator struct {
	cfg    models.GenerationConfig
	logger *utils.Logger
	rng    *rand.Rand

	nightWeights []float64
	today        models.Date
}

// New creates a ready-to-run Generator. A zero seed in the config means
// the run is seeded from the clock and is not reproducible.
func New(cfg models.GenerationConfig, logger *utils.Logger) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	today := cfg.Today
	if today.IsZero() {
		today = models.DateOf(time.Now())
	}

	weights := NormalizeWeights(cfg.NightWeights)
	if len(weights) == 0 {
		weights = NormalizeWeights(make([]float64, maxNights))
	}

	return &Generator{
		cfg:          cfg,
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		nightWeights: weights,
		today:        today,
	}
}

// Generate runs the full single-pass synthesis: bookings first (feeding
// the occupancy tracker), then the three auxiliary tables.
func (g *Generator) Generate() *models.Dataset {
	started := time.Now()

	tracker := NewTracker(g.cfg.StayStart, g.cfg.StayEnd, g.cfg.RoomTypes)
	bookings := g.synthesizeBookings(tracker)

	ds := &models.Dataset{
		Config:    g.cfg,
		Bookings:  bookings,
		Market:    g.marketData(),
		Inventory: g.inventoryData(tracker),
		Rates:     g.dailyRates(),
	}

	g.logger.Info("[generator] Generated %d bookings, %d market rows, %d inventory rows, %d rate rows in %v",
		len(ds.Bookings), len(ds.Market), len(ds.Inventory), len(ds.Rates), time.Since(started).Round(time.Millisecond))

	return ds
}

// synthesizeBookings walks every stay date and room type, tops each day
// up to its drawn occupancy target, and records confirmed stays in the
// tracker so later days see the committed rooms.
func (g *Generator) synthesizeBookings(tracker *Tracker) []*models.Booking {
	var bookings []*models.Booking
	counter := 1

	tiers := g.cfg.Tiers
	if g.cfg.OccupancyMode != models.OccupancySeasonal {
		tiers = nil
	}
	occMin, occMax := g.cfg.OccupancyMin, g.cfg.OccupancyMax
	if g.cfg.OccupancyMode == models.OccupancyRandom {
		occMin, occMax = 50, 95
	}

	for d := g.cfg.StayStart; !d.After(g.cfg.StayEnd); d = d.AddDays(1) {
		for _, rt := range g.cfg.RoomTypes {
			targetPct := OccupancyForDate(g.rng, d, g.today, tiers, occMin, occMax)
			targetOccupied := int(float64(rt.Total) * targetPct)

			roomsNeeded := targetOccupied - tracker.Occupied(d, rt.Name)
			for i := 0; i < roomsNeeded; i++ {
				b, ok := g.synthesizeOne(d, rt, counter)
				if !ok {
					// Checkout would overrun the stay window; the
					// candidate is dropped and the day undershoots
					// its target.
					continue
				}
				bookings = append(bookings, b)
				if b.Status == models.StatusConfirmed {
					tracker.AddStay(b.CheckIn, b.CheckOut, rt.Name)
				}
				counter++
			}
		}
	}

	return bookings
}

// synthesizeOne builds a single candidate booking for one check-in date
// and room type. It returns ok=false when the drawn stay length would
// push checkout past the stay window.
func (g *Generator) synthesizeOne(checkIn models.Date, rt models.RoomTypeConfig, counter int) (*models.Booking, bool) {
	bookDate := g.drawBookingDate(checkIn)

	nights := 1 + weightedIndex(g.rng, g.nightWeights)
	checkOut := checkIn.AddDays(nights)
	if checkOut.After(g.cfg.StayEnd) {
		return nil, false
	}

	plan := g.drawRatePlan(bookDate.DaysUntil(checkIn))
	rate := g.planRate(rt.BaseRate, plan)

	var channel string
	if g.rng.Float64() < memberProbability {
		rate *= 1 - g.cfg.MemberDiscountPct/100
		plan += models.MemberSuffix
		channel = weightedString(g.rng, memberChannels, memberChannelWts)
	} else {
		channel = weightedString(g.rng, nonMemberChannels, nonMemberChannelWts)
	}

	rate = round2(rate * uniform(g.rng, 0.95, 1.05))

	status := models.StatusConfirmed
	if g.rng.Float64() >= confirmProbability {
		status = models.StatusCancelled
	}
	revenue := 0.0
	if status == models.StatusConfirmed {
		revenue = rate * float64(nights)
	}

	return &models.Booking{
		ID:          fmt.Sprintf("BKG%05d", counter),
		BookingDate: bookDate,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		RoomType:    rt.Name,
		RatePlan:    plan,
		Rate:        rate,
		Nights:      nights,
		Guests:      intBetween(g.rng, 1, 3),
		Channel:     channel,
		Status:      status,
		Revenue:     revenue,
	}, true
}

// drawBookingDate picks how far in advance the booking was made, capped
// at 90 days and at the booking window start, then clamps the result
// into the booking window.
func (g *Generator) drawBookingDate(checkIn models.Date) models.Date {
	bookDate := g.cfg.BookingStart

	maxAdvance := g.cfg.BookingStart.DaysUntil(checkIn)
	if maxAdvance > maxAdvanceDays {
		maxAdvance = maxAdvanceDays
	}
	if maxAdvance > 0 {
		bookDate = checkIn.AddDays(-intBetween(g.rng, 1, maxAdvance))
	}

	if bookDate.Before(g.cfg.BookingStart) {
		bookDate = g.cfg.BookingStart
	}
	if bookDate.After(g.cfg.BookingEnd) {
		bookDate = g.cfg.BookingEnd
	}
	return bookDate
}

// drawRatePlan forces the early-bird plan for long lead times and
// otherwise picks uniformly among the remaining plans, Corporate
// included.
func (g *Generator) drawRatePlan(daysAdvance int) string {
	if daysAdvance > earlyBirdThreshold {
		return models.PlanEarlyBird
	}

	pool := make([]string, 0, len(g.cfg.RatePlans)+1)
	for _, p := range g.cfg.RatePlans {
		if p.Name != models.PlanEarlyBird {
			pool = append(pool, p.Name)
		}
	}
	pool = append(pool, models.PlanCorporate)

	return pool[g.rng.Intn(len(pool))]
}

// planRate applies the plan's discount to the base rate: a fixed amount
// for Corporate, a percentage for everything else. Unknown plans fall
// back to the undiscounted base rate.
func (g *Generator) planRate(baseRate float64, plan string) float64 {
	if plan == models.PlanCorporate {
		return baseRate - g.cfg.CorporateDiscount
	}
	for _, p := range g.cfg.RatePlans {
		if p.Name == plan {
			return baseRate * (1 - p.DiscountPct/100)
		}
	}
	return baseRate
}
