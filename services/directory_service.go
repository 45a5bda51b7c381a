package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-backoffice/models"
)

// DirectoryService deduplicates guest given/family names into stable ids.
// Resolution is get-or-create: a conflict-ignoring insert followed by a
// re-read, bounded to one retry, so concurrent callers inserting the same
// new value converge on the same id.
type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

func (s *DirectoryService) ResolveGivenName(value string) (uint, error) {
	return s.resolveGivenName(s.DB, value)
}

func (s *DirectoryService) ResolveFamilyName(value string) (uint, error) {
	return s.resolveFamilyName(s.DB, value)
}

func (s *DirectoryService) resolveGivenName(db *gorm.DB, value string) (uint, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var name models.GivenName
		err := db.Where("value = ?", value).First(&name).Error
		if err == nil {
			return name.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}

		created := models.GivenName{Value: value}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&created)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected > 0 {
			return created.ID, nil
		}
		// Lost the insert race; the loop re-reads the winner's row.
	}
	return 0, fmt.Errorf("given name %q did not settle after insert", value)
}

func (s *DirectoryService) resolveFamilyName(db *gorm.DB, value string) (uint, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var name models.FamilyName
		err := db.Where("value = ?", value).First(&name).Error
		if err == nil {
			return name.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}

		created := models.FamilyName{Value: value}
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&created)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected > 0 {
			return created.ID, nil
		}
	}
	return 0, fmt.Errorf("family name %q did not settle after insert", value)
}
