package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// openDialector picks the driver from the connection string scheme:
// sqlite://path (or :memory:) for the embedded store, mysql://... or a raw
// MySQL DSN otherwise.
func openDialector() (gorm.Dialector, error) {
	raw := envOrDefault("DATABASE_URL", "sqlite://hotel.db")

	if strings.HasPrefix(raw, "sqlite://") {
		return sqlite.Open(strings.TrimPrefix(raw, "sqlite://")), nil
	}
	if strings.HasPrefix(raw, "mysql://") {
		dsn, err := mysqlDSNFromURL(raw)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}
	return mysql.Open(raw), nil
}

func ConnectDatabase() error {
	dialector, err := openDialector()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger,
		// Room and guest deletes are deliberately not blocked by dependent
		// bookings, so no FK constraints are generated.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	DB = db

	if err := DB.AutoMigrate(
		&models.GivenName{},
		&models.FamilyName{},
		&models.Guest{},
		&models.Room{},
		&models.Booking{},
		&models.Account{},
		&models.Session{},
	); err != nil {
		return err
	}

	return SeedDatabase()
}

// SeedDatabase ensures a default account exists and, behind
// SEED_SAMPLE_DATA, loads the demo dataset on an empty catalogue.
func SeedDatabase() error {
	var accountCount int64
	DB.Model(&models.Account{}).Count(&accountCount)
	if accountCount == 0 {
		hash, err := utils.HashPassword(envOrDefault("ADMIN_PASSWORD", "admin"))
		if err != nil {
			return err
		}
		account := models.Account{Username: "admin", PasswordHash: hash}
		if err := DB.Create(&account).Error; err != nil {
			return err
		}
		log.Println("default account seeded")
	}

	if envOrDefault("SEED_SAMPLE_DATA", "false") != "true" {
		return nil
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("sample data already seeded")
		return nil
	}
	return seedSampleData()
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse(utils.DateFormat, value)
	if err != nil {
		log.Fatalf("error parsing date for seeding (%s): %v", value, err)
	}
	return t
}

func seedSampleData() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		givenNames := []models.GivenName{{Value: "Ivan"}, {Value: "Stepan"}, {Value: "Olga"}}
		if err := tx.Create(&givenNames).Error; err != nil {
			return err
		}
		familyNames := []models.FamilyName{{Value: "Ivanov"}, {Value: "Stepanov"}, {Value: "Petrov"}}
		if err := tx.Create(&familyNames).Error; err != nil {
			return err
		}

		guests := []models.Guest{
			{GivenNameID: givenNames[0].ID, FamilyNameID: familyNames[0].ID, Age: 18, PassportSeries: "FB", PassportNumber: "12345678"},
			{GivenNameID: givenNames[1].ID, FamilyNameID: familyNames[1].ID, Age: 20, PassportSeries: "FB", PassportNumber: "31313131"},
			{GivenNameID: givenNames[2].ID, FamilyNameID: familyNames[1].ID, Age: 22, PassportSeries: "FF", PassportNumber: "23232323"},
			{GivenNameID: givenNames[1].ID, FamilyNameID: familyNames[2].ID, Age: 22, PassportSeries: "FE", PassportNumber: "12121212"},
		}
		if err := tx.Create(&guests).Error; err != nil {
			return err
		}

		rooms := []models.Room{
			{Number: 1, PricePerNight: 1000.0, Description: "VIP"},
			{Number: 2, PricePerNight: 10.0, Description: "Cheap"},
			{Number: 3, PricePerNight: 10.0, Description: "Cheap"},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		bookings := []models.Booking{
			{
				RoomNumber: 1,
				FromDate:   mustParseDate("2017-01-01"),
				ToDate:     mustParseDate("2017-01-03"),
				TotalPrice: 2000,
				Guests:     []models.Guest{guests[1], guests[2]},
			},
			{
				RoomNumber: 2,
				FromDate:   mustParseDate("2017-10-01"),
				ToDate:     mustParseDate("2017-10-27"),
				TotalPrice: 260,
				Guests:     []models.Guest{guests[0]},
			},
			{
				RoomNumber: 2,
				FromDate:   mustParseDate("2017-07-27"),
				ToDate:     mustParseDate("2017-08-03"),
				TotalPrice: 70,
				Guests:     []models.Guest{guests[3]},
			},
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return err
		}

		log.Println("sample data seeded")
		return nil
	})
}
