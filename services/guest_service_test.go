package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-backoffice/models"
)

func newGuestService(t *testing.T) *GuestService {
	db := newTestDB(t)
	return NewGuestService(db, NewDirectoryService(db))
}

func TestGuestCreateGetRoundtrip(t *testing.T) {
	svc := newGuestService(t)

	id, err := svc.Create(GuestInput{
		GivenName:      "Ivan",
		FamilyName:     "Ivanov",
		Age:            18,
		PassportSeries: "FB",
		PassportNumber: "12345678",
	})
	require.NoError(t, err)

	row, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", row.GivenName)
	assert.Equal(t, "Ivanov", row.FamilyName)
	assert.Equal(t, 18, row.Age)
	assert.Equal(t, "FB", row.PassportSeries)
	assert.Equal(t, "12345678", row.PassportNumber)
}

func TestGuestDuplicatePassportConflicts(t *testing.T) {
	svc := newGuestService(t)

	_, err := svc.Create(GuestInput{
		GivenName: "Ivan", FamilyName: "Ivanov", Age: 18,
		PassportSeries: "FB", PassportNumber: "12345678",
	})
	require.NoError(t, err)

	_, err = svc.Create(GuestInput{
		GivenName: "Stepan", FamilyName: "Stepanov", Age: 20,
		PassportSeries: "FB", PassportNumber: "12345678",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGuestsShareNameRows(t *testing.T) {
	svc := newGuestService(t)

	createTestGuest(t, svc, "Stepan", "Stepanov", "FB", "31313131")
	createTestGuest(t, svc, "Stepan", "Petrov", "FE", "12121212")

	var count int64
	require.NoError(t, svc.DB.Model(&models.GivenName{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "same given name must resolve to one row")
}

func TestGuestUpdateReplacesWholesale(t *testing.T) {
	svc := newGuestService(t)
	id := createTestGuest(t, svc, "Ivan", "Ivanov", "FB", "12345678")

	err := svc.Update(id, GuestInput{
		GivenName:      "Olga",
		FamilyName:     "Petrov",
		Age:            22,
		PassportSeries: "FF",
		PassportNumber: "23232323",
	})
	require.NoError(t, err)

	row, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Olga", row.GivenName)
	assert.Equal(t, "Petrov", row.FamilyName)
	assert.Equal(t, 22, row.Age)
	assert.Equal(t, "FF", row.PassportSeries)
	assert.Equal(t, "23232323", row.PassportNumber)
}

func TestGuestUpdateMissingIDReportsNotFound(t *testing.T) {
	svc := newGuestService(t)

	err := svc.Update(99, GuestInput{
		GivenName: "Ivan", FamilyName: "Ivanov", Age: 18,
		PassportSeries: "FB", PassportNumber: "12345678",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestDelete(t *testing.T) {
	svc := newGuestService(t)
	id := createTestGuest(t, svc, "Ivan", "Ivanov", "FB", "12345678")

	require.NoError(t, svc.Delete(id))

	_, err := svc.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGuestDeleteMissingIDReportsNotFound(t *testing.T) {
	svc := newGuestService(t)
	assert.ErrorIs(t, svc.Delete(99), ErrNotFound)
}

func TestGuestCreateRejectsBadInput(t *testing.T) {
	svc := newGuestService(t)

	cases := []struct {
		name string
		in   GuestInput
	}{
		{"empty given name", GuestInput{FamilyName: "Ivanov", Age: 18, PassportSeries: "FB", PassportNumber: "1"}},
		{"empty family name", GuestInput{GivenName: "Ivan", Age: 18, PassportSeries: "FB", PassportNumber: "1"}},
		{"negative age", GuestInput{GivenName: "Ivan", FamilyName: "Ivanov", Age: -1, PassportSeries: "FB", PassportNumber: "1"}},
		{"series too long", GuestInput{GivenName: "Ivan", FamilyName: "Ivanov", Age: 18, PassportSeries: "FBX", PassportNumber: "1"}},
		{"number too long", GuestInput{GivenName: "Ivan", FamilyName: "Ivanov", Age: 18, PassportSeries: "FB", PassportNumber: "123456789012345678901"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.in)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestGuestListIncludesNames(t *testing.T) {
	svc := newGuestService(t)
	createTestGuest(t, svc, "Ivan", "Ivanov", "FB", "12345678")
	createTestGuest(t, svc, "Olga", "Stepanov", "FF", "23232323")

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ivan", rows[0].GivenName)
	assert.Equal(t, "Stepanov", rows[1].FamilyName)
}
