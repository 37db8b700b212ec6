package keymap

import (
	"errors"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSqliteDatabase opens the sqlite database at the viper "database-file"
// path and migrates the keymap table
func NewSqliteDatabase() (*gorm.DB, error) {
	dbFile := viper.GetString("database-file")

	if dbFile == "" {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&KeymapModel{}); err != nil {
		return nil, err
	}

	return db, nil
}
