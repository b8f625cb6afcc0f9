package models

import (
	"strings"
	"testing"
)

func validConfig() GenerationConfig {
	cfg := DefaultConfig()
	cfg.BookingEnd = NewDate(2024, 12, 31)
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()

	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestValidateWindowsWarnButDoNotBlock(t *testing.T) {
	cfg := validConfig()
	cfg.BookingStart = NewDate(2025, 1, 1)
	cfg.BookingEnd = NewDate(2024, 1, 1)
	cfg.StayStart = NewDate(2026, 1, 1)
	cfg.StayEnd = NewDate(2025, 1, 1)

	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("inverted windows must not be a hard error: %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings: got %v, want 2 entries", warnings)
	}
}

func TestValidateHardErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationConfig)
		wantSub string
	}{
		{
			name:    "no room types",
			mutate:  func(c *GenerationConfig) { c.RoomTypes = []RoomTypeConfig{} },
			wantSub: "room type",
		},
		{
			name: "duplicate room type",
			mutate: func(c *GenerationConfig) {
				c.RoomTypes = append(c.RoomTypes, c.RoomTypes[0])
			},
			wantSub: "duplicate",
		},
		{
			name: "zero rooms",
			mutate: func(c *GenerationConfig) {
				c.RoomTypes[0].Total = 0
			},
			wantSub: "non-positive count",
		},
		{
			name: "zero base rate",
			mutate: func(c *GenerationConfig) {
				c.RoomTypes[0].BaseRate = 0
			},
			wantSub: "non-positive base rate",
		},
		{
			name: "seasonal without tiers",
			mutate: func(c *GenerationConfig) {
				c.OccupancyMode = OccupancySeasonal
				c.Tiers = nil
			},
			wantSub: "tiers",
		},
		{
			name: "unknown occupancy mode",
			mutate: func(c *GenerationConfig) {
				c.OccupancyMode = "sideways"
			},
			wantSub: "occupancy mode",
		},
		{
			name: "wrong weight count",
			mutate: func(c *GenerationConfig) {
				c.NightWeights = []float64{1, 2, 3}
			},
			wantSub: "7 entries",
		},
		{
			name: "negative weight",
			mutate: func(c *GenerationConfig) {
				c.NightWeights = []float64{1, -1, 1, 1, 1, 1, 1}
			},
			wantSub: "negative weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a hard error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestApplyDefaultsFillsEmptySections(t *testing.T) {
	var cfg GenerationConfig
	cfg.ApplyDefaults()

	if len(cfg.RoomTypes) != 3 {
		t.Errorf("room types: got %d, want 3", len(cfg.RoomTypes))
	}
	if cfg.OccupancyMode != OccupancySeasonal || cfg.Tiers == nil {
		t.Error("expected seasonal mode with tiers by default")
	}
	if len(cfg.NightWeights) != 7 {
		t.Errorf("night weights: got %d entries, want 7", len(cfg.NightWeights))
	}
	if cfg.TotalRooms() != 80 {
		t.Errorf("TotalRooms: got %d, want 80", cfg.TotalRooms())
	}
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	cfg := GenerationConfig{
		OccupancyMode: OccupancyFixed,
		OccupancyMin:  60,
		OccupancyMax:  70,
		RoomTypes:     []RoomTypeConfig{{Name: "Cabin", Total: 4, BaseRate: 500000}},
	}
	cfg.ApplyDefaults()

	if cfg.OccupancyMode != OccupancyFixed || cfg.OccupancyMin != 60 {
		t.Error("fixed-range settings were overwritten")
	}
	if len(cfg.RoomTypes) != 1 || cfg.RoomTypes[0].Name != "Cabin" {
		t.Error("room types were overwritten")
	}
}

func TestTierSelection(t *testing.T) {
	tiers := &OccupancyTiers{
		Tier1: TierRange{75, 90},
		Tier2: TierRange{55, 75},
		Tier3: TierRange{40, 60},
		Tier4: TierRange{25, 45},
	}

	tests := []struct {
		months int
		want   TierRange
	}{
		{-5, tiers.Tier1},
		{0, tiers.Tier1},
		{3, tiers.Tier1},
		{4, tiers.Tier2},
		{6, tiers.Tier2},
		{7, tiers.Tier3},
		{9, tiers.Tier3},
		{10, tiers.Tier4},
		{24, tiers.Tier4},
	}
	for _, tt := range tests {
		if got := tiers.ForMonthOffset(tt.months); got != tt.want {
			t.Errorf("ForMonthOffset(%d) = %v, want %v", tt.months, got, tt.want)
		}
	}
}
