package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalTime_MarshalsAsNaiveISO8601(t *testing.T) {
	lt := LocalTime(time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC))

	data, err := json.Marshal(lt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01T14:30:00"`, string(data))
}

func TestLocalTime_NilMarshalsAsNull(t *testing.T) {
	record := FlightRecord{FlightNumber: "AB123"}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"arrivalIST":null`)
	assert.Contains(t, string(data), `"departureIST":null`)
}

func TestLocalTime_RoundTrip(t *testing.T) {
	lt := LocalTime(time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC))

	data, err := json.Marshal(lt)
	require.NoError(t, err)

	var decoded LocalTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Time().Equal(lt.Time()))
}
