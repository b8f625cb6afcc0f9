package services

import (
	"testing"

	"hotel-data-generator/models"
	"hotel-data-generator/utils"
)

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		Bookings: []*models.Booking{
			{ID: "BKG00001", RoomType: "Standard", RatePlan: "BAR", Rate: 900000, Nights: 2,
				Channel: "OTA", Status: models.StatusConfirmed, Revenue: 1800000},
			{ID: "BKG00002", RoomType: "Standard", RatePlan: "BAR + Member", Rate: 810000, Nights: 1,
				Channel: "Direct", Status: models.StatusConfirmed, Revenue: 810000},
			{ID: "BKG00003", RoomType: "Deluxe", RatePlan: "Non-Refundable", Rate: 1350000, Nights: 3,
				Channel: "Website", Status: models.StatusCancelled, Revenue: 0},
			{ID: "BKG00004", RoomType: "Suite", RatePlan: "Corporate + Member", Rate: 2115000, Nights: 2,
				Channel: "Direct", Status: models.StatusConfirmed, Revenue: 4230000},
		},
	}
}

func TestSummaryCounts(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(sampleDataset())

	if r.TotalBookings != 4 {
		t.Errorf("TotalBookings: got %d, want 4", r.TotalBookings)
	}
	if r.Confirmed != 3 {
		t.Errorf("Confirmed: got %d, want 3", r.Confirmed)
	}
	if r.Cancelled != 1 {
		t.Errorf("Cancelled: got %d, want 1", r.Cancelled)
	}
}

func TestSummaryRevenue(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(sampleDataset())

	if r.TotalRevenue != 6840000 {
		t.Errorf("TotalRevenue: got %.2f, want 6840000", r.TotalRevenue)
	}
	wantAvg := 1275000.0 // (900000 + 810000 + 2115000) / 3
	if r.AvgNightlyRate != wantAvg {
		t.Errorf("AvgNightlyRate: got %.2f, want %.2f", r.AvgNightlyRate, wantAvg)
	}
}

func TestSummaryStayAndMembers(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(sampleDataset())

	if r.AvgStayNights != 2 {
		t.Errorf("AvgStayNights: got %.2f, want 2", r.AvgStayNights)
	}
	if r.MemberShare != 0.5 {
		t.Errorf("MemberShare: got %.2f, want 0.5", r.MemberShare)
	}
}

func TestSummaryGrouping(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())
	r := svc.Generate(sampleDataset())

	if r.BookingsByRoomType["Standard"] != 2 {
		t.Errorf("Standard count: got %d, want 2", r.BookingsByRoomType["Standard"])
	}
	if r.BookingsByChannel["Direct"] != 2 {
		t.Errorf("Direct count: got %d, want 2", r.BookingsByChannel["Direct"])
	}
	// The member suffix folds into the base plan bucket.
	if r.BookingsByRatePlan["BAR"] != 2 {
		t.Errorf("BAR count: got %d, want 2", r.BookingsByRatePlan["BAR"])
	}
	if r.BookingsByRatePlan["Corporate"] != 1 {
		t.Errorf("Corporate count: got %d, want 1", r.BookingsByRatePlan["Corporate"])
	}
}

func TestSummaryEmptyDataset(t *testing.T) {
	svc := NewSummaryService(utils.NewLogger())

	r := svc.Generate(&models.Dataset{})
	if r.TotalBookings != 0 || r.TotalRevenue != 0 {
		t.Error("expected zeroed summary for empty dataset")
	}

	r = svc.Generate(nil)
	if r.TotalBookings != 0 {
		t.Error("expected zeroed summary for nil dataset")
	}
}
