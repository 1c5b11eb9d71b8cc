package database

import "github.com/soremkrs/Twex/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Reply{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
		&models.NotificationCheck{},
	}
}
