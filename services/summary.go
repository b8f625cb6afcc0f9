package services

import (
	"fmt"
	"sort"
	"strings"

	"hotel-data-generator/models"
	"hotel-data-generator/utils"
)

// SummaryService computes aggregate stats over a generated dataset.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate walks the bookings once and returns the aggregate summary.
// Rate-plan counts strip the member suffix so "BAR + Member" and "BAR"
// land in the same bucket.
func (s *SummaryService) Generate(ds *models.Dataset) *models.Summary {
	summary := &models.Summary{
		BookingsByRoomType: make(map[string]int),
		BookingsByChannel:  make(map[string]int),
		BookingsByRatePlan: make(map[string]int),
	}

	if ds == nil || len(ds.Bookings) == 0 {
		return summary
	}

	summary.TotalBookings = len(ds.Bookings)

	var rateSum float64
	var nightSum, members int

	for _, b := range ds.Bookings {
		if b.Status == models.StatusConfirmed {
			summary.Confirmed++
			summary.TotalRevenue += b.Revenue
			rateSum += b.Rate
		} else {
			summary.Cancelled++
		}

		nightSum += b.Nights
		if strings.HasSuffix(b.RatePlan, models.MemberSuffix) {
			members++
		}

		summary.BookingsByRoomType[b.RoomType]++
		summary.BookingsByChannel[b.Channel]++
		plan := strings.TrimSuffix(b.RatePlan, models.MemberSuffix)
		summary.BookingsByRatePlan[plan]++
	}

	if summary.Confirmed > 0 {
		summary.AvgNightlyRate = round2(rateSum / float64(summary.Confirmed))
	}
	summary.AvgStayNights = round2(float64(nightSum) / float64(summary.TotalBookings))
	summary.MemberShare = round2(float64(members) / float64(summary.TotalBookings))

	summary.TotalRevenue = round2(summary.TotalRevenue)

	return summary
}

// Print writes a compact report to stdout after a generation run.
func (s *SummaryService) Print(r *models.Summary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏨 HOTEL DATASET SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Bookings\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total      : \033[1m%d\033[0m\n", r.TotalBookings)
	fmt.Printf("  Confirmed  : \033[1;32m%d\033[0m\n", r.Confirmed)
	fmt.Printf("  Cancelled  : \033[1;31m%d\033[0m\n", r.Cancelled)
	fmt.Printf("  Avg nights : %.2f\n", r.AvgStayNights)
	fmt.Printf("  Members    : %.0f%%\n", r.MemberShare*100)
	fmt.Println()

	fmt.Printf("\033[1;33m  Revenue\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total revenue    : \033[1;32m%.0f\033[0m\n", r.TotalRevenue)
	fmt.Printf("  Avg nightly rate : \033[1;32m%.0f\033[0m\n", r.AvgNightlyRate)
	fmt.Println()

	printDistribution("Bookings by Room Type", r.BookingsByRoomType)
	printDistribution("Bookings by Channel", r.BookingsByChannel)
	printDistribution("Bookings by Rate Plan", r.BookingsByRatePlan)

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

func printDistribution(title string, counts map[string]int) {
	thin := strings.Repeat("─", 54)

	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(counts) == 0 {
		fmt.Printf("  No data\n\n")
		return
	}

	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, entry{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	for _, e := range entries {
		fmt.Printf("  %-28s \033[1m%d\033[0m\n", truncate(e.key, 26), e.count)
	}
	fmt.Println()
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
