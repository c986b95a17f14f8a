package infra

import (
	"fmt"

	"cupogas/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the local SQLite file through GORM and runs AutoMigrate
// to create / update all tables. SQLite keeps the whole system state in one
// local file — there is no database server and no network in this design.
func NewDatabase(ruta string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(ruta), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Vehiculo{},
		&model.Estacion{},
		&model.Surtidor{},
		&model.Carga{},
		&model.Notificacion{},
		&model.Configuracion{},
		&model.Sesion{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
