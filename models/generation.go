package models

import (
	"errors"
	"fmt"
	"time"
)

// Occupancy modes accepted by GenerationConfig.
const (
	OccupancySeasonal = "seasonal" // tiered by month offset from today
	OccupancyFixed    = "fixed"    // single min–max range
	OccupancyRandom   = "random"   // 50–95% each day
)

// Rate plan names with special handling in the synthesizer.
const (
	PlanEarlyBird = "Early Bird (> 30 days)"
	PlanCorporate = "Corporate"
)

// MemberSuffix is appended to the rate plan label when the member
// discount is stacked on a booking.
const MemberSuffix = " + Member"

// BookingChannels lists every channel a booking can come through.
var BookingChannels = []string{"Website", "OTA", "Direct", "Walk-in"}

// RoomTypeConfig describes one room type in the simulated hotel.
// Slice order is preserved throughout generation.
type RoomTypeConfig struct {
	Name     string  `json:"name"`
	Total    int     `json:"total"`
	BaseRate float64 `json:"base_rate"`
}

// RatePlanConfig is a percentage-off rate plan. The Corporate plan is
// configured separately because its discount is a fixed amount.
type RatePlanConfig struct {
	Name        string  `json:"name"`
	DiscountPct float64 `json:"discount_pct"` // 0–100
}

// TierRange is one occupancy tier's min–max percentage range.
type TierRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OccupancyTiers partitions the horizon into four month-offset buckets:
// tier 1 covers today through month +3, tier 2 months 4–6, tier 3
// months 7–9, tier 4 everything from month 10 on. Past dates fold into
// tier 1.
type OccupancyTiers struct {
	Tier1 TierRange `json:"tier1"`
	Tier2 TierRange `json:"tier2"`
	Tier3 TierRange `json:"tier3"`
	Tier4 TierRange `json:"tier4"`
}

// ForMonthOffset returns the tier range governing a check-in date the
// given number of calendar months from today.
func (t *OccupancyTiers) ForMonthOffset(months int) TierRange {
	switch {
	case months <= 3: // includes negative offsets
		return t.Tier1
	case months <= 6:
		return t.Tier2
	case months <= 9:
		return t.Tier3
	default:
		return t.Tier4
	}
}

// GenerationConfig is the full form payload driving one generation run.
type GenerationConfig struct {
	BookingStart Date `json:"booking_start"`
	BookingEnd   Date `json:"booking_end"`
	StayStart    Date `json:"stay_start"`
	StayEnd      Date `json:"stay_end"`

	OccupancyMode string          `json:"occupancy_mode"`
	Tiers         *OccupancyTiers `json:"occupancy_tiers,omitempty"`
	OccupancyMin  int             `json:"occupancy_min"`
	OccupancyMax  int             `json:"occupancy_max"`

	RoomTypes []RoomTypeConfig `json:"room_types"`
	RatePlans []RatePlanConfig `json:"rate_plans"`

	CorporateDiscount float64 `json:"corporate_discount"`  // fixed amount off base rate
	MemberDiscountPct float64 `json:"member_discount_pct"` // stacking, 0–100

	// NightWeights are relative weights for stays of 1–7 nights.
	// They are normalized before use; an all-zero vector means uniform.
	NightWeights []float64 `json:"night_weights,omitempty"`

	// Seed makes a run reproducible. Zero means seed from the clock.
	Seed int64 `json:"seed,omitempty"`

	// Today anchors the seasonal tiers. Zero means the real today.
	Today Date `json:"today,omitempty"`
}

// DefaultConfig returns the generator's stock hotel: three room types,
// three percentage plans plus Corporate, business-hotel stay lengths.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		BookingStart:  NewDate(2024, 1, 1),
		BookingEnd:    DateOf(time.Now()),
		StayStart:     NewDate(2025, 1, 1),
		StayEnd:       NewDate(2026, 12, 31),
		OccupancyMode: OccupancySeasonal,
		Tiers: &OccupancyTiers{
			Tier1: TierRange{Min: 75, Max: 90},
			Tier2: TierRange{Min: 55, Max: 75},
			Tier3: TierRange{Min: 40, Max: 60},
			Tier4: TierRange{Min: 25, Max: 45},
		},
		OccupancyMin: 50,
		OccupancyMax: 80,
		RoomTypes: []RoomTypeConfig{
			{Name: "Standard", Total: 50, BaseRate: 900000},
			{Name: "Deluxe", Total: 20, BaseRate: 1500000},
			{Name: "Suite", Total: 10, BaseRate: 2500000},
		},
		RatePlans: []RatePlanConfig{
			{Name: "BAR", DiscountPct: 0},
			{Name: "Non-Refundable", DiscountPct: 10},
			{Name: PlanEarlyBird, DiscountPct: 15},
		},
		CorporateDiscount: 150000,
		MemberDiscountPct: 10,
		NightWeights:      []float64{35, 30, 15, 10, 7, 2, 1},
	}
}

// ApplyDefaults fills any empty sections with DefaultConfig values so a
// partial form submission still produces a complete run.
func (c *GenerationConfig) ApplyDefaults() {
	def := DefaultConfig()
	if c.BookingStart.IsZero() {
		c.BookingStart = def.BookingStart
	}
	if c.BookingEnd.IsZero() {
		c.BookingEnd = def.BookingEnd
	}
	if c.StayStart.IsZero() {
		c.StayStart = def.StayStart
	}
	if c.StayEnd.IsZero() {
		c.StayEnd = def.StayEnd
	}
	if c.OccupancyMode == "" {
		c.OccupancyMode = def.OccupancyMode
	}
	if c.OccupancyMode == OccupancySeasonal && c.Tiers == nil {
		c.Tiers = def.Tiers
	}
	if c.OccupancyMode == OccupancyFixed && c.OccupancyMin == 0 && c.OccupancyMax == 0 {
		c.OccupancyMin, c.OccupancyMax = def.OccupancyMin, def.OccupancyMax
	}
	if c.OccupancyMode == OccupancyRandom {
		c.OccupancyMin, c.OccupancyMax = 50, 95
	}
	if len(c.RoomTypes) == 0 {
		c.RoomTypes = def.RoomTypes
	}
	if len(c.RatePlans) == 0 {
		c.RatePlans = def.RatePlans
		c.CorporateDiscount = def.CorporateDiscount
		c.MemberDiscountPct = def.MemberDiscountPct
	}
	if len(c.NightWeights) == 0 {
		c.NightWeights = def.NightWeights
	}
}

// Validate checks the configuration. Hard errors make generation
// impossible; warnings are advisory and never block a run.
func (c *GenerationConfig) Validate() (warnings []string, err error) {
	if !c.BookingStart.Before(c.BookingEnd) {
		warnings = append(warnings, "Booking Start should be before Booking End")
	}
	if !c.StayStart.Before(c.StayEnd) {
		warnings = append(warnings, "Arrival Start should be before Departure End")
	}

	if len(c.RoomTypes) == 0 {
		return warnings, errors.New("config: at least one room type is required")
	}
	seen := make(map[string]bool, len(c.RoomTypes))
	for _, rt := range c.RoomTypes {
		if rt.Name == "" {
			return warnings, errors.New("config: room type with empty name")
		}
		if seen[rt.Name] {
			return warnings, fmt.Errorf("config: duplicate room type %q", rt.Name)
		}
		seen[rt.Name] = true
		if rt.Total <= 0 {
			return warnings, fmt.Errorf("config: room type %q has non-positive count", rt.Name)
		}
		if rt.BaseRate <= 0 {
			return warnings, fmt.Errorf("config: room type %q has non-positive base rate", rt.Name)
		}
	}

	switch c.OccupancyMode {
	case OccupancySeasonal:
		if c.Tiers == nil {
			return warnings, errors.New("config: seasonal mode requires occupancy tiers")
		}
	case OccupancyFixed, OccupancyRandom:
	default:
		return warnings, fmt.Errorf("config: unknown occupancy mode %q", c.OccupancyMode)
	}

	if n := len(c.NightWeights); n != 0 && n != 7 {
		return warnings, fmt.Errorf("config: night weights must have 7 entries, got %d", n)
	}
	for i, w := range c.NightWeights {
		if w < 0 {
			return warnings, fmt.Errorf("config: negative weight for %d-night stays", i+1)
		}
	}

	return warnings, nil
}

// TotalRooms sums the room counts across all configured room types.
func (c *GenerationConfig) TotalRooms() int {
	total := 0
	for _, rt := range c.RoomTypes {
		total += rt.Total
	}
	return total
}
