package database

import "yayayum/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Parents come before the ratings that reference them.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Dish{},
		&models.Rating{},
	}
}
