// internal/domain/entity/airtime.go
package entity

// Air-time status bands
const (
	StatusMissing = "Missing"
	StatusRed     = "Red (<10)"
	StatusYellow  = "Yellow (10–14)"
	StatusGreen   = "Green (>14)"
)

// Status colors as #RRGGBB hex for the dashboard to parse
const (
	ColorGrey   = "#808080"
	ColorRed    = "#F44336"
	ColorOrange = "#FF9800"
	ColorGreen  = "#4CAF50"
)

// DailyAirtimeEntry is the summed air-time for one (arrival date,
// registration) group. Recomputed on every pipeline run, never persisted.
type DailyAirtimeEntry struct {
	FlightDate    string  `json:"flightDate"`
	RegNo         string  `json:"regNo"`
	TotalAirHours float64 `json:"totalAirHours"`
	Status        string  `json:"status"`
	StatusColor   string  `json:"statusColor"`
}

// ClassifyAirtime maps total air hours to a status band and its color.
// A nil or zero value means no usable air-time was recorded.
func ClassifyAirtime(hours *float64) (string, string) {
	switch {
	case hours == nil || *hours == 0:
		return StatusMissing, ColorGrey
	case *hours < 10:
		return StatusRed, ColorRed
	case *hours <= 14:
		return StatusYellow, ColorOrange
	default:
		return StatusGreen, ColorGreen
	}
}
