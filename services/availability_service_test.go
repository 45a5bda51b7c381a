package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// availabilityFixture seeds the reference catalogue: room 1 booked
// 2017-01-01..03 by two guests, room 2 booked twice, room 3 never booked.
type availabilityFixture struct {
	availability *AvailabilityService
	bookings     *BookingService
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()
	db := newTestDB(t)
	rooms := NewRoomService(db)
	guests := NewGuestService(db, NewDirectoryService(db))
	bookings := NewBookingService(db)

	require.NoError(t, rooms.Create(RoomInput{Number: 1, PricePerNight: 1000, Description: "VIP"}))
	require.NoError(t, rooms.Create(RoomInput{Number: 2, PricePerNight: 10, Description: "Cheap"}))
	require.NoError(t, rooms.Create(RoomInput{Number: 3, PricePerNight: 10, Description: "Cheap"}))

	g1 := createTestGuest(t, guests, "Stepan", "Stepanov", "FB", "31313131")
	g2 := createTestGuest(t, guests, "Olga", "Stepanov", "FF", "23232323")
	g3 := createTestGuest(t, guests, "Ivan", "Ivanov", "FB", "12345678")

	mustBook := func(room int, from, to string, guestIDs ...uint) {
		_, err := bookings.Create(BookingInput{
			RoomNumber: room,
			FromDate:   date(t, from),
			ToDate:     date(t, to),
			GuestIDs:   guestIDs,
		})
		require.NoError(t, err)
	}
	mustBook(1, "2017-01-01", "2017-01-03", g1, g2)
	mustBook(2, "2017-10-01", "2017-10-27", g3)
	mustBook(2, "2017-07-27", "2017-08-03", g1)

	return &availabilityFixture{
		availability: NewAvailabilityService(db),
		bookings:     bookings,
	}
}

func roomNumbers(rows []RoomRow) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Number)
	}
	return out
}

func TestOccupiedInsideRange(t *testing.T) {
	f := newAvailabilityFixture(t)

	rows, err := f.availability.QueryRooms(RoomStateOccupied, date(t, "2017-01-02"), nil)
	require.NoError(t, err)
	assert.Contains(t, roomNumbers(rows), 1)
}

func TestOccupiedBoundariesAreExclusive(t *testing.T) {
	f := newAvailabilityFixture(t)

	for _, at := range []string{"2017-01-01", "2017-01-03"} {
		rows, err := f.availability.QueryRooms(RoomStateOccupied, date(t, at), nil)
		require.NoError(t, err)
		assert.NotContains(t, roomNumbers(rows), 1, "boundary instant %s must not count as occupied", at)
	}
}

func TestOccupiedRowPerBookingGuestPair(t *testing.T) {
	f := newAvailabilityFixture(t)

	// Room 1's overlapping booking has two guests, so it yields two rows.
	n := 1
	rows, err := f.availability.QueryRooms(RoomStateOccupied, date(t, "2017-01-02"), &n)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, roomNumbers(rows))
}

func TestFreeReturnsNonOverlappingBookedRooms(t *testing.T) {
	f := newAvailabilityFixture(t)

	rows, err := f.availability.QueryRooms(RoomStateFree, date(t, "2017-01-05"), nil)
	require.NoError(t, err)
	assert.Contains(t, roomNumbers(rows), 1)
}

func TestFreeExcludesNeverBookedRooms(t *testing.T) {
	f := newAvailabilityFixture(t)

	// Room 3 has no booking rows to join against, so it never classifies
	// as free. Known query-shape limitation, preserved deliberately.
	rows, err := f.availability.QueryRooms(RoomStateFree, date(t, "2017-01-05"), nil)
	require.NoError(t, err)
	assert.NotContains(t, roomNumbers(rows), 3)
}

func TestFreeExcludesOverlappedRoom(t *testing.T) {
	f := newAvailabilityFixture(t)

	rows, err := f.availability.QueryRooms(RoomStateFree, date(t, "2017-10-05"), nil)
	require.NoError(t, err)
	numbers := roomNumbers(rows)
	// Room 2's October booking overlaps, but its July booking row does
	// not, so room 2 still shows up through that row.
	assert.Contains(t, numbers, 1)
	assert.Contains(t, numbers, 2)
}

func TestNoStateReturnsFullCatalogue(t *testing.T) {
	f := newAvailabilityFixture(t)

	rows, err := f.availability.QueryRooms(RoomStateAny, date(t, "2017-01-02"), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, roomNumbers(rows))
}

func TestRoomFilterNarrowsResults(t *testing.T) {
	f := newAvailabilityFixture(t)

	n := 2
	rows, err := f.availability.QueryRooms(RoomStateAny, date(t, "2017-01-02"), &n)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, roomNumbers(rows))

	rows, err = f.availability.QueryRooms(RoomStateOccupied, date(t, "2017-01-02"), &n)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
