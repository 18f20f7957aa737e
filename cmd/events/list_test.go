package events

import (
	"testing"

	"github.com/markusressel/plant2go/internal/events"
	"github.com/stretchr/testify/assert"
)

func createRecords() []events.Record {
	return []events.Record{
		{Sequence: 1, Kind: events.KindInfo, Message: "System started"},
		{Sequence: 2, Kind: events.KindViolation, Message: "Sensor pressure (Pressure) out of range"},
		{Sequence: 3, Kind: events.KindAction, Message: "Adjusted pump (Pump) to 2.50"},
		{Sequence: 4, Kind: events.KindViolation, Message: "Sensor pressure (Pressure) out of range"},
	}
}

func TestFilterRecords_NoFilter(t *testing.T) {
	// WHEN
	result := filterRecords(createRecords(), "", 0)

	// THEN
	assert.Len(t, result, 4)
}

func TestFilterRecords_Kind(t *testing.T) {
	// WHEN
	result := filterRecords(createRecords(), events.KindViolation, 0)

	// THEN
	assert.Len(t, result, 2)
	assert.Equal(t, uint64(2), result[0].Sequence)
	assert.Equal(t, uint64(4), result[1].Sequence)
}

func TestFilterRecords_Limit(t *testing.T) {
	// WHEN
	result := filterRecords(createRecords(), "", 2)

	// THEN
	assert.Len(t, result, 2)
	assert.Equal(t, uint64(3), result[0].Sequence)
}

func TestFilterRecords_KindAndLimit(t *testing.T) {
	// WHEN
	result := filterRecords(createRecords(), events.KindViolation, 1)

	// THEN
	assert.Len(t, result, 1)
	assert.Equal(t, uint64(4), result[0].Sequence)
}
