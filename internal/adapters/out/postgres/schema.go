package postgres

import (
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/paymentrepo"
	"parceltrack/internal/adapters/out/postgres/riderrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, for truncation in tests.
var Tables = []string{"parcels", "payment_records", "riders", "users"}

// Migrate creates or updates the schema of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&parcelrepo.ParcelDTO{},
		&paymentrepo.RecordDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
	)
}
