package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"battleforge/internal/game"
)

// OpenAndMigrate opens the SQLite database at the given path and migrates
// the schema. Schema changes are applied via AutoMigrate; deleting the DB
// file is the reset path during development.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Character{}, &game.Battle{}); err != nil {
		return nil, err
	}
	return db, nil
}
