package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado values for Estacion.
const (
	EstacionActiva        = "activa"
	EstacionInactiva      = "inactiva"
	EstacionMantenimiento = "mantenimiento"
)

// TipoCombustible values for Surtidor.
const (
	CombustibleGasolina = "gasolina"
	CombustibleDiesel   = "diesel"
	CombustiblePremium  = "premium"
)

// Estacion is a gas station that owns an ordered set of surtidores.
type Estacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre    string    `gorm:"not null"`
	Direccion string    `gorm:"not null"`
	Lat       float64
	Lng       float64
	Estado    string `gorm:"type:varchar(20);not null;default:'activa'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Surtidores []Surtidor `gorm:"foreignKey:EstacionID"`
}

// TableName overrides GORM's default pluralization (estacions → estaciones).
func (Estacion) TableName() string { return "estaciones" }

// Surtidor is a fuel pump. StockActual is mutated only by the dispensing
// engine (decrement) or not at all; PrecioPorLitro only by the price cascade.
// Invariant: 0 <= StockActual <= StockMaximo.
type Surtidor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EstacionID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Numero          int             `gorm:"not null"`
	TipoCombustible string          `gorm:"type:varchar(20);not null;index"`
	PrecioPorLitro  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockActual     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockMaximo     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Disponible      bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default pluralization (surtidors → surtidores).
func (Surtidor) TableName() string { return "surtidores" }
