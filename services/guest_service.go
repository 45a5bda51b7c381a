package services

import (
	"strings"

	"gorm.io/gorm"

	"hotel-backoffice/models"
)

// GuestService owns guest CRUD. List/Get join the name tables so rows carry
// the display names alongside the numeric ids; Create/Update resolve names
// through the directory first.
type GuestService struct {
	DB        *gorm.DB
	Directory *DirectoryService
}

func NewGuestService(db *gorm.DB, directory *DirectoryService) *GuestService {
	return &GuestService{DB: db, Directory: directory}
}

// GuestRow is one guest list/get result with names joined in.
type GuestRow struct {
	ID             uint
	GivenName      string
	FamilyName     string
	Age            int
	PassportSeries string
	PassportNumber string
}

// GuestInput is the payload for create and update. Update replaces the guest
// wholesale; it is not a partial patch.
type GuestInput struct {
	GivenName      string `json:"given_name"`
	FamilyName     string `json:"family_name"`
	Age            int    `json:"age"`
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
}

func (in *GuestInput) validate() error {
	in.GivenName = strings.TrimSpace(in.GivenName)
	in.FamilyName = strings.TrimSpace(in.FamilyName)
	in.PassportSeries = strings.TrimSpace(in.PassportSeries)
	in.PassportNumber = strings.TrimSpace(in.PassportNumber)

	switch {
	case in.GivenName == "" || in.FamilyName == "":
		return validationErr("missing_name")
	case in.Age < 0:
		return validationErr("invalid_age")
	case in.PassportSeries == "" || len(in.PassportSeries) > 2:
		return validationErr("invalid_passport_series")
	case in.PassportNumber == "" || len(in.PassportNumber) > 20:
		return validationErr("invalid_passport_number")
	}
	return nil
}

func (s *GuestService) listQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Guest{}).
		Select("guests.id, given_names.value AS given_name, family_names.value AS family_name, " +
			"guests.age, guests.passport_series, guests.passport_number").
		Joins("JOIN given_names ON given_names.id = guests.given_name_id").
		Joins("JOIN family_names ON family_names.id = guests.family_name_id").
		Order("guests.id")
}

func (s *GuestService) List() ([]GuestRow, error) {
	var rows []GuestRow
	if err := s.listQuery(s.DB).Scan(&rows).Error; err != nil {
		return nil, translateDBError(err)
	}
	return rows, nil
}

func (s *GuestService) Get(id uint) (GuestRow, error) {
	var rows []GuestRow
	if err := s.listQuery(s.DB).Where("guests.id = ?", id).Scan(&rows).Error; err != nil {
		return GuestRow{}, translateDBError(err)
	}
	if len(rows) == 0 {
		return GuestRow{}, ErrNotFound
	}
	return rows[0], nil
}

func (s *GuestService) Create(in GuestInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	var guest models.Guest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		givenID, err := s.Directory.resolveGivenName(tx, in.GivenName)
		if err != nil {
			return err
		}
		familyID, err := s.Directory.resolveFamilyName(tx, in.FamilyName)
		if err != nil {
			return err
		}

		guest = models.Guest{
			GivenNameID:    givenID,
			FamilyNameID:   familyID,
			Age:            in.Age,
			PassportSeries: in.PassportSeries,
			PassportNumber: in.PassportNumber,
		}
		return tx.Create(&guest).Error
	})
	if err != nil {
		return 0, translateDBError(err)
	}
	return guest.ID, nil
}

func (s *GuestService) Update(id uint, in GuestInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Guest
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		givenID, err := s.Directory.resolveGivenName(tx, in.GivenName)
		if err != nil {
			return err
		}
		familyID, err := s.Directory.resolveFamilyName(tx, in.FamilyName)
		if err != nil {
			return err
		}

		return tx.Model(&models.Guest{}).Where("id = ?", id).Updates(map[string]any{
			"given_name_id":   givenID,
			"family_name_id":  familyID,
			"age":             in.Age,
			"passport_series": in.PassportSeries,
			"passport_number": in.PassportNumber,
		}).Error
	})
	return translateDBError(err)
}

// Delete removes the guest row. Bookings referencing the guest are not
// checked, matching the store's declared (dangling-reference) behavior.
func (s *GuestService) Delete(id uint) error {
	res := s.DB.Delete(&models.Guest{}, id)
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
