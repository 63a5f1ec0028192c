package usecase

import (
	"sort"
	"time"

	"flightboard-service/internal/domain/entity"
)

const flightDateLayout = "2006-01-02"

// BuildDailyAirtime groups flight records by (arrival date, registration),
// sums air hours per group and classifies each total into a status band.
// Records without an arrival instant or a registration stay out of the
// grouping. Entries come back sorted descending by flight date, then
// descending by registration, so repeated runs over the same input produce
// the same order.
func BuildDailyAirtime(flights []entity.FlightRecord) []entity.DailyAirtimeEntry {
	grouped := make(map[string]map[string]float64)
	for _, flight := range flights {
		if flight.ArrivalIST == nil || flight.RegNo == "" {
			continue
		}
		dateKey := time.Time(*flight.ArrivalIST).Format(flightDateLayout)
		if grouped[dateKey] == nil {
			grouped[dateKey] = make(map[string]float64)
		}
		grouped[dateKey][flight.RegNo] += flight.AirHours
	}

	entries := make([]entity.DailyAirtimeEntry, 0, len(grouped))
	for dateKey, regGroups := range grouped {
		for regNo, totalHours := range regGroups {
			status, statusColor := entity.ClassifyAirtime(&totalHours)
			entries = append(entries, entity.DailyAirtimeEntry{
				FlightDate:    dateKey,
				RegNo:         regNo,
				TotalAirHours: totalHours,
				Status:        status,
				StatusColor:   statusColor,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FlightDate != entries[j].FlightDate {
			return entries[i].FlightDate > entries[j].FlightDate
		}
		return entries[i].RegNo > entries[j].RegNo
	})
	return entries
}
