package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Carga is an immutable ledger entry for a committed fuel dispatch.
// Rows are append-only: never updated or deleted after creation.
// PrecioPorLitro is snapshotted at commit time so later price changes do not
// rewrite history; Total = Litros × PrecioPorLitro at that instant.
type Carga struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehiculoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SurtidorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OperadorID uuid.UUID       `gorm:"type:uuid;not null"`
	Litros     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioPorLitro decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Timestamp      time.Time       `gorm:"not null;index"`
	Aprobada       bool            `gorm:"not null"`
	AprobadaPor    *uuid.UUID      `gorm:"type:uuid"`

	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
	Surtidor *Surtidor `gorm:"foreignKey:SurtidorID"`
}
