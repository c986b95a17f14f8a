package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rol values for Usuario.
const (
	RolCliente  = "cliente"
	RolOperador = "operador"
	RolGerente  = "gerente"
)

// Usuario stores system users with role-based access.
// Clientes carry the rationing payload (dias asignados, cupo); personal de
// estación (operador / gerente) carries the Username/Password pair instead.
// Password is stored in plain text: credential matching here is a lookup, not
// a security boundary, and the fixed demo credentials are part of the contract.
type Usuario struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre string    `gorm:"not null"`
	// CI is the identity document number and also the login key for clientes.
	CI   string `gorm:"uniqueIndex;not null"`
	Foto *string
	Rol  string `gorm:"type:varchar(20);not null"`
	// DiasAsignados are the weekday names on which the cliente may load fuel,
	// derived from the last digit of the CI.
	DiasAsignados     []string        `gorm:"serializer:json"`
	LimiteCombustible decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CombustibleUsado  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Username          *string         `gorm:"uniqueIndex"`
	Password          *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u *Usuario) EsCliente() bool { return u.Rol == RolCliente }

func (u *Usuario) EsPersonal() bool { return u.Rol == RolOperador || u.Rol == RolGerente }

// CupoDisponible is the remaining allowance for the current period.
func (u *Usuario) CupoDisponible() decimal.Decimal {
	return u.LimiteCombustible.Sub(u.CombustibleUsado)
}
