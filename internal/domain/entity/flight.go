// internal/domain/entity/flight.go
package entity

import (
	"strconv"
	"time"
)

// LocalTimeLayout is ISO-8601 without a zone suffix. The fixed IST offset
// is already applied to every instant before it is serialized.
const LocalTimeLayout = "2006-01-02T15:04:05"

// LocalTime is an absolute instant that serializes as a local-naive
// ISO-8601 string. A nil *LocalTime serializes as JSON null.
type LocalTime time.Time

// Time returns the underlying time value.
func (t LocalTime) Time() time.Time {
	return time.Time(t)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(LocalTimeLayout))), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := time.Parse(LocalTimeLayout, s)
	if err != nil {
		return err
	}
	*t = LocalTime(parsed)
	return nil
}

// FlightRecord is one flight leg derived from a sheet row. Built once per
// row and immutable afterwards. ArrivalIST and DepartureIST are absent when
// the row lacks a usable date/time pair for that side; AirHours is 0.0
// unless both instants are present.
type FlightRecord struct {
	FlightNumber     string     `json:"flightNumber"`
	DepartureCity    string     `json:"departureCity"`
	ArrivalCity      string     `json:"arrivalCity"`
	DepartureTime    string     `json:"departureTime"`
	ArrivalTime      string     `json:"arrivalTime"`
	TravelLinkage    string     `json:"travelLinkage"`
	IsLinkageMissing bool       `json:"isLinkageMissing"`
	RegNo            string     `json:"regNo"`
	ArrFlightNo      string     `json:"arrFlightNo"`
	DepFlightNo      string     `json:"depFlightNo"`
	ArrivalIST       *LocalTime `json:"arrivalIST"`
	DepartureIST     *LocalTime `json:"departureIST"`
	AirHours         float64    `json:"airHours"`
}
