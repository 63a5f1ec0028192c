package utils

import (
	"strconv"
	"strings"
	"time"
)

// ISTOffset is the fixed forward shift applied to sheet instants. The
// sheet carries GMT; the dashboard shows IST. Not DST-aware.
const ISTOffset = 5*time.Hour + 30*time.Minute

// GmtToIst converts a DD/MM/YYYY date label and a military time label
// (zero-padded to 4 digits, HHMM) from GMT into an IST instant. Returns
// nil when either label is malformed.
func GmtToIst(dateStr, timeVal string) *time.Time {
	parts := strings.Split(dateStr, "/")
	if len(parts) != 3 {
		return nil
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}

	timeStr := timeVal
	for len(timeStr) < 4 {
		timeStr = "0" + timeStr
	}
	hours, err := strconv.Atoi(timeStr[:2])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(timeStr[2:])
	if err != nil {
		return nil
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return nil
	}

	// time.Date silently normalizes impossible dates (31/04 becomes 01/05);
	// reject anything that does not round-trip
	gmt := time.Date(year, time.Month(month), day, hours, minutes, 0, 0, time.UTC)
	if gmt.Year() != year || gmt.Month() != time.Month(month) || gmt.Day() != day {
		return nil
	}
	ist := gmt.Add(ISTOffset)
	return &ist
}
