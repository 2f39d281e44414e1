// Package sqlite implementa el journal sobre un archivo SQLite con GORM.
package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database conexión GORM al archivo del journal.
type Database struct {
	db *gorm.DB
}

// NewDatabase abre (o crea) el archivo y migra las tablas del journal.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("conectar sqlite: %w", err)
	}
	if err := db.AutoMigrate(&transactionModel{}, &itemModel{}); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return &Database{db: db}, nil
}

// Close cierra la conexión subyacente.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TxRunner runner del journal sobre esta base.
func (d *Database) TxRunner() *TxRunner { return &TxRunner{db: d.db} }

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
