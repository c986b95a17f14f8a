package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuracion is the single system-wide settings row (ID is always 1).
// Price changes cascade to the matching surtidores; LimiteDiario changes
// cascade to every cliente's LimiteCombustible. Both cascades are run as a
// separate reconciliation pass after the row is saved, and are idempotent.
type Configuracion struct {
	ID             uint            `gorm:"primaryKey"`
	PrecioGasolina decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioDiesel   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioPremium  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LimiteDiario   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LimiteMensual  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UpdatedAt      time.Time
}

// TableName keeps the settings table singular.
func (Configuracion) TableName() string { return "configuracion" }

// PrecioPorTipo returns the configured price for a fuel type, zero when the
// type is unknown.
func (c *Configuracion) PrecioPorTipo(tipo string) decimal.Decimal {
	switch tipo {
	case CombustibleGasolina:
		return c.PrecioGasolina
	case CombustibleDiesel:
		return c.PrecioDiesel
	case CombustiblePremium:
		return c.PrecioPremium
	}
	return decimal.Zero
}
