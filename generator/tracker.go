package generator

import "hotel-data-generator/models"

// Tracker counts rooms already committed per stay-night and room type
// across the tracked horizon. It is fed by confirmed bookings and read
// back both to size the next day's demand and to build the inventory
// table. The count for any night is capped at the room type's physical
// total, so spillover from multi-night stays cannot overbook a day.
type Tracker struct {
	start, end models.Date
	totals     map[string]int
	counts     map[models.Date]map[string]int
}

// NewTracker builds an empty tracker covering [start, end] inclusive.
func NewTracker(start, end models.Date, roomTypes []models.RoomTypeConfig) *Tracker {
	t := &Tracker{
		start:  start,
		end:    end,
		totals: make(map[string]int, len(roomTypes)),
		counts: make(map[models.Date]map[string]int),
	}
	for _, rt := range roomTypes {
		t.totals[rt.Name] = rt.Total
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		day := make(map[string]int, len(roomTypes))
		for _, rt := range roomTypes {
			day[rt.Name] = 0
		}
		t.counts[d] = day
	}
	return t
}

// Occupied returns the committed-room count for one night.
func (t *Tracker) Occupied(d models.Date, roomType string) int {
	if day, ok := t.counts[d]; ok {
		return day[roomType]
	}
	return 0
}

// AddStay commits one room of the given type for every night in
// [checkIn, checkOut) that lies within the tracked horizon. Nights
// already at the physical total are left unchanged.
func (t *Tracker) AddStay(checkIn, checkOut models.Date, roomType string) {
	total := t.totals[roomType]
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		day, ok := t.counts[d]
		if !ok {
			continue
		}
		if day[roomType] < total {
			day[roomType]++
		}
	}
}
