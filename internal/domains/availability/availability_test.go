package availability_test

import (
	"testing"
	"time"

	"lodge/internal/domains/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func TestCompute_InvalidRange(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 3}}

	t.Run("equal bounds", func(t *testing.T) {
		_, err := availability.Compute(roomTypes, nil, date("2026-01-10"), date("2026-01-10"))

		assert.ErrorIs(t, err, availability.ErrInvalidRange)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := availability.Compute(roomTypes, nil, date("2026-01-15"), date("2026-01-10"))

		assert.ErrorIs(t, err, availability.ErrInvalidRange)
	})
}

func TestCompute_OverlappingBookingsReduceRemaining(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 3}}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
		{RoomTypeID: "1", DateFrom: date("2026-01-12"), DateTo: date("2026-01-20")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-13"), date("2026-01-14"))

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 1}, remaining)
}

func TestCompute_EndExclusiveBookingsDoNotOverlap(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 3}}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
		{RoomTypeID: "1", DateFrom: date("2026-01-12"), DateTo: date("2026-01-20")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-20"), date("2026-01-25"))

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 3}, remaining)
}

func TestCompute_Boundaries(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 2}}

	t.Run("checkout on query start does not overlap", func(t *testing.T) {
		bookings := []availability.Booking{
			{RoomTypeID: "1", DateFrom: date("2026-01-05"), DateTo: date("2026-01-10")},
		}

		remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-10"), date("2026-01-12"))

		require.NoError(t, err)
		assert.Equal(t, 2, remaining["1"])
	})

	t.Run("checkin on query start overlaps", func(t *testing.T) {
		bookings := []availability.Booking{
			{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-12")},
		}

		remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-10"), date("2026-01-15"))

		require.NoError(t, err)
		assert.Equal(t, 1, remaining["1"])
	})
}

func TestCompute_BookingsOutsideRangeDoNotReduceRemaining(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 3}}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2025-12-01"), DateTo: date("2025-12-10")},
		{RoomTypeID: "1", DateFrom: date("2026-02-01"), DateTo: date("2026-02-05")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-10"), date("2026-01-15"))

	require.NoError(t, err)
	assert.Equal(t, 3, remaining["1"])
}

func TestCompute_NonOverlappingBookingsEachReduceRemaining(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 5}}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-01"), DateTo: date("2026-01-20")},
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-11")},
		{RoomTypeID: "1", DateFrom: date("2026-01-11"), DateTo: date("2026-01-12")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-01"), date("2026-01-31"))

	require.NoError(t, err)
	assert.Equal(t, 5-len(bookings), remaining["1"])
}

func TestCompute_InvariantUnderBookingOrder(t *testing.T) {
	roomTypes := []availability.RoomType{
		{ID: "1", Quantity: 3},
		{ID: "2", Quantity: 1},
	}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
		{RoomTypeID: "2", DateFrom: date("2026-01-12"), DateTo: date("2026-01-20")},
		{RoomTypeID: "1", DateFrom: date("2026-01-13"), DateTo: date("2026-01-14")},
	}
	reversed := []availability.Booking{bookings[2], bookings[1], bookings[0]}

	first, err := availability.Compute(roomTypes, bookings, date("2026-01-13"), date("2026-01-14"))
	require.NoError(t, err)

	second, err := availability.Compute(roomTypes, reversed, date("2026-01-13"), date("2026-01-14"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_IgnoresBookingsForRoomTypesOutOfScope(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 2}}
	bookings := []availability.Booking{
		{RoomTypeID: "999", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-10"), date("2026-01-15"))

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2}, remaining)
}

func TestCompute_ReportsNegativeRemainingForOverbookedInventory(t *testing.T) {
	roomTypes := []availability.RoomType{{ID: "1", Quantity: 1}}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
		{RoomTypeID: "1", DateFrom: date("2026-01-11"), DateTo: date("2026-01-16")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-12"), date("2026-01-13"))

	require.NoError(t, err)
	assert.Equal(t, -1, remaining["1"])
}

func TestCompute_CoversEveryRoomTypeInScope(t *testing.T) {
	roomTypes := []availability.RoomType{
		{ID: "1", Quantity: 1},
		{ID: "2", Quantity: 4},
	}
	bookings := []availability.Booking{
		{RoomTypeID: "1", DateFrom: date("2026-01-10"), DateTo: date("2026-01-15")},
	}

	remaining, err := availability.Compute(roomTypes, bookings, date("2026-01-10"), date("2026-01-15"))

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 0, "2": 4}, remaining)
}

func TestSelectAvailable(t *testing.T) {
	remaining := map[string]int{"1": 0, "2": 2, "3": -1}

	available := availability.SelectAvailable(remaining)

	assert.Equal(t, map[string]int{"2": 2}, available)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a1, a2   string
		b1, b2   string
		expected bool
	}{
		{"fully contained", "2026-01-10", "2026-01-20", "2026-01-12", "2026-01-14", true},
		{"partial overlap", "2026-01-10", "2026-01-15", "2026-01-14", "2026-01-20", true},
		{"touching at end is exclusive", "2026-01-10", "2026-01-15", "2026-01-15", "2026-01-20", false},
		{"touching at start is exclusive", "2026-01-15", "2026-01-20", "2026-01-10", "2026-01-15", false},
		{"disjoint", "2026-01-10", "2026-01-12", "2026-01-20", "2026-01-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := availability.Overlaps(date(tt.a1), date(tt.a2), date(tt.b1), date(tt.b2))

			assert.Equal(t, tt.expected, actual)
		})
	}
}
