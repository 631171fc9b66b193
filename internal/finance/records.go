package finance

import "time"

// Travel is a read-only snapshot of a billable transport job as handed in by
// the record source. Amounts are whole colones (no minor units). The engine
// never re-derives one amount from the others; totals are always additive.
type Travel struct {
	ID          int64     `json:"id"`
	TravelCode  string    `json:"travelCode"`
	Destination string    `json:"destination"`
	TravelDate  time.Time `json:"travelDate"`

	NoIVAmount   int64 `json:"noIVAmount"`
	WithIVAmount int64 `json:"withIVAmount"`
	IVAmount     int64 `json:"IVAmount"`

	TaxFree bool `json:"taxFree"`
	Invalid bool `json:"invalid"`

	TruckName  string `json:"truckName,omitempty"`
	DriverName string `json:"driverName,omitempty"`
	ClientName string `json:"clientName,omitempty"`

	// Non-deleted expenses attached to this travel.
	Expenses []Expense `json:"expenses,omitempty"`
}

// Expense is a cost entry, optionally tied to a truck or travel.
type Expense struct {
	ID         int64     `json:"id,omitempty"`
	Name       string    `json:"name"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
	Deleted    bool      `json:"deleted,omitempty"`
	TruckName  string    `json:"truckName,omitempty"`
	TruckPlate string    `json:"truckPlate,omitempty"`
	TravelID   int64     `json:"travelId,omitempty"`
}

// InvoiceRecord is the slice of an invoice the reporting side needs.
type InvoiceRecord struct {
	ID            int64     `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	InvoiceAmount int64     `json:"invoiceAmount"`
	InvoiceDate   time.Time `json:"invoiceDate"`
	DueDate       time.Time `json:"dueDate"`
	Paid          bool      `json:"paid"`
	Status        bool      `json:"status"`
	ClientName    string    `json:"clientName,omitempty"`
}
