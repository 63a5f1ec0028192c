// internal/domain/entity/snapshot.go
package entity

import (
	"time"
)

// RunSnapshot is the audit record of one pipeline run: the raw document as
// fetched plus counts and the diagnostics collected while parsing it.
// Computed results are deliberately not stored.
type RunSnapshot struct {
	ID           string          `bson:"_id,omitempty"`
	FetchedAt    time.Time       `bson:"fetchedAt"`
	Document     string          `bson:"document"`
	RowCount     int             `bson:"rowCount"`
	FlightCount  int             `bson:"flightCount"`
	BillingCount int             `bson:"billingCount"`
	Diagnostics  []RowDiagnostic `bson:"diagnostics,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt"`
}
