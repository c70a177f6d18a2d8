package repository

import "gorm.io/gorm"

// Migrate creates or updates the registry tables, including the unique
// indexes that back the service-level uniqueness checks under concurrent
// callers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Airlines{}, &Pilots{}, &Flights{})
}
