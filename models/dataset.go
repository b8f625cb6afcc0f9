package models

import "time"

// Table names, which double as the CSV/ZIP entry filename stems.
const (
	TableBookings  = "Bookings"
	TableInventory = "Room_Inventory"
	TableRates     = "Daily_Rates"
	TableMarket    = "Market_Data"
)

// ZIPFilename is the archive name offered for download.
const ZIPFilename = "hotel_data.zip"

// Table is a fully rendered dataset table ready for CSV export.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Filename returns the table's CSV filename inside the ZIP archive.
func (t Table) Filename() string { return t.Name + ".csv" }

// Dataset holds everything one generation run produced.
type Dataset struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Config    GenerationConfig `json:"config"`

	Bookings  []*Booking      `json:"bookings"`
	Market    []*MarketDay    `json:"market"`
	Inventory []*InventoryDay `json:"inventory"`
	Rates     []*DailyRate    `json:"rates"`
}

// Tables renders every dataset table in its fixed export order.
func (d *Dataset) Tables() []Table {
	return []Table{
		d.BookingsTable(),
		d.InventoryTable(),
		d.RatesTable(),
		d.MarketTable(),
	}
}

// TableByName returns the named table, or false if the name is unknown.
func (d *Dataset) TableByName(name string) (Table, bool) {
	switch name {
	case TableBookings:
		return d.BookingsTable(), true
	case TableInventory:
		return d.InventoryTable(), true
	case TableRates:
		return d.RatesTable(), true
	case TableMarket:
		return d.MarketTable(), true
	}
	return Table{}, false
}

func (d *Dataset) BookingsTable() Table {
	t := Table{
		Name: TableBookings,
		Header: []string{
			"Booking_ID", "Booking_Date", "Check_in_Date", "Check_out_Date",
			"Room_Type", "Rate_Plan", "Booked_Rate", "Number_of_Nights",
			"Number_of_Guests", "Booking_Channel", "Cancellation_Status",
			"Revenue_Generated",
		},
		Rows: make([][]string, 0, len(d.Bookings)),
	}
	for _, b := range d.Bookings {
		t.Rows = append(t.Rows, b.Row())
	}
	return t
}

func (d *Dataset) InventoryTable() Table {
	t := Table{
		Name: TableInventory,
		Header: []string{
			"Date", "Room_Type", "Total_Rooms", "Occupied_Rooms",
			"Available_Rooms", "Occupancy_Rate",
		},
		Rows: make([][]string, 0, len(d.Inventory)),
	}
	for _, row := range d.Inventory {
		t.Rows = append(t.Rows, row.Row())
	}
	return t
}

func (d *Dataset) RatesTable() Table {
	t := Table{
		Name: TableRates,
		Header: []string{
			"Date", "Room_Type", "Base_Rate", "Rate_Adjustment", "Dynamic_Rate",
		},
		Rows: make([][]string, 0, len(d.Rates)),
	}
	for _, row := range d.Rates {
		t.Rows = append(t.Rows, row.Row())
	}
	return t
}

func (d *Dataset) MarketTable() Table {
	t := Table{
		Name: TableMarket,
		Header: []string{
			"Date", "Local_Event", "Competitor_A_Rate", "Competitor_B_Rate",
			"Market_Demand_Index",
		},
		Rows: make([][]string, 0, len(d.Market)),
	}
	for _, row := range d.Market {
		t.Rows = append(t.Rows, row.Row())
	}
	return t
}
