package database

import "postboard/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Content{},
		&models.Media{},
		&models.Post{},
	}
}
