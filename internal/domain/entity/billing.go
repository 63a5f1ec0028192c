// internal/domain/entity/billing.go
package entity

// BillingRecord is the billing view of a sheet row. Only rows whose bill
// and paid-amount cells both parse as numbers produce one.
type BillingRecord struct {
	FlightNumber     string     `json:"flightNumber"`
	TotalBill        float64    `json:"totalBill"`
	AmountPaid       float64    `json:"amountPaid"`
	DueDate          *LocalTime `json:"dueDate"`
	PaymentStatusRaw string     `json:"paymentStatusRaw"`
	IsOverdue        bool       `json:"isOverdue"`
	AmountRemaining  float64    `json:"amountRemaining"`
}
