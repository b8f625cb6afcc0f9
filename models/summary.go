package models

// Summary holds the aggregate stats computed over a generated dataset.
type Summary struct {
	TotalBookings  int     `json:"total_bookings"`
	Confirmed      int     `json:"confirmed"`
	Cancelled      int     `json:"cancelled"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgNightlyRate float64 `json:"avg_nightly_rate"`
	AvgStayNights  float64 `json:"avg_stay_nights"`
	MemberShare    float64 `json:"member_share"`

	BookingsByRoomType map[string]int `json:"bookings_by_room_type"`
	BookingsByChannel  map[string]int `json:"bookings_by_channel"`
	BookingsByRatePlan map[string]int `json:"bookings_by_rate_plan"`
}
