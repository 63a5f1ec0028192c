// internal/domain/entity/report.go
package entity

// Derivation names used in row diagnostics
const (
	DerivationFlight  = "flight"
	DerivationBilling = "billing"
)

// RowDiagnostic records one recovered per-row failure. Row is 1-based over
// the data rows, matching sheet numbering after the header.
type RowDiagnostic struct {
	Row        int    `json:"row" bson:"row"`
	Derivation string `json:"derivation" bson:"derivation"`
	Reason     string `json:"reason" bson:"reason"`
}

// Report is the payload served to the dashboard client.
type Report struct {
	Flights      []FlightRecord      `json:"flights"`
	Billing      []BillingRecord     `json:"billing"`
	DailyAirtime []DailyAirtimeEntry `json:"dailyAirtime"`
}
