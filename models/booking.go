package models

import "strconv"

// Booking statuses.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking is one synthesized reservation. Immutable once emitted.
type Booking struct {
	ID          string  `json:"booking_id"`
	BookingDate Date    `json:"booking_date"`
	CheckIn     Date    `json:"check_in_date"`
	CheckOut    Date    `json:"check_out_date"`
	RoomType    string  `json:"room_type"`
	RatePlan    string  `json:"rate_plan"`
	Rate        float64 `json:"booked_rate"`
	Nights      int     `json:"number_of_nights"`
	Guests      int     `json:"number_of_guests"`
	Channel     string  `json:"booking_channel"`
	Status      string  `json:"cancellation_status"`
	Revenue     float64 `json:"revenue_generated"`
}

// Row renders the booking as a CSV row in the fixed column order.
func (b *Booking) Row() []string {
	return []string{
		b.ID,
		b.BookingDate.String(),
		b.CheckIn.String(),
		b.CheckOut.String(),
		b.RoomType,
		b.RatePlan,
		formatAmount(b.Rate),
		strconv.Itoa(b.Nights),
		strconv.Itoa(b.Guests),
		b.Channel,
		b.Status,
		formatAmount(b.Revenue),
	}
}

// MarketDay is one day's market conditions, independent of bookings.
type MarketDay struct {
	Date            Date    `json:"date"`
	LocalEvent      string  `json:"local_event"`
	CompetitorARate float64 `json:"competitor_a_rate"`
	CompetitorBRate float64 `json:"competitor_b_rate"`
	DemandIndex     int     `json:"market_demand_index"`
}

func (m *MarketDay) Row() []string {
	return []string{
		m.Date.String(),
		m.LocalEvent,
		formatAmount(m.CompetitorARate),
		formatAmount(m.CompetitorBRate),
		strconv.Itoa(m.DemandIndex),
	}
}

// InventoryDay is the room inventory snapshot for one day and room type,
// derived from the occupancy tracker.
type InventoryDay struct {
	Date          Date    `json:"date"`
	RoomType      string  `json:"room_type"`
	Total         int     `json:"total_rooms"`
	Occupied      int     `json:"occupied_rooms"`
	Available     int     `json:"available_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

func (i *InventoryDay) Row() []string {
	return []string{
		i.Date.String(),
		i.RoomType,
		strconv.Itoa(i.Total),
		strconv.Itoa(i.Occupied),
		strconv.Itoa(i.Available),
		strconv.FormatFloat(i.OccupancyRate, 'f', 3, 64),
	}
}

// DailyRate is the dynamic nightly rate for one day and room type.
type DailyRate struct {
	Date        Date    `json:"date"`
	RoomType    string  `json:"room_type"`
	BaseRate    float64 `json:"base_rate"`
	Adjustment  float64 `json:"rate_adjustment"`
	DynamicRate float64 `json:"dynamic_rate"`
}

func (r *DailyRate) Row() []string {
	return []string{
		r.Date.String(),
		r.RoomType,
		formatAmount(r.BaseRate),
		strconv.FormatFloat(r.Adjustment, 'f', 3, 64),
		formatAmount(r.DynamicRate),
	}
}

// formatAmount renders a currency amount with two decimals, matching
// the rounding applied during generation.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
